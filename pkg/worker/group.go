package worker

import (
	"context"
	"sync"
)

type (
	ContextJob func(context.Context) error

	Group interface {
		Do(ContextJob)
		Wait() error
	}
)

// group cancels its context after the first job error; Wait returns that error.
type group struct {
	ctx       context.Context
	ctxCancel context.CancelFunc
	pool      Pool

	errOnce sync.Once
	err     error
}

func NewGroup(ctx context.Context) (context.Context, Group) {
	return WithinGroup(ctx, NewPool(MaxWorkersCountUnlimited))
}

func WithinGroup(ctx context.Context, pool Pool) (context.Context, Group) {
	ctx, cancel := context.WithCancel(ctx)
	return ctx, &group{
		ctx:       ctx,
		ctxCancel: cancel,
		pool:      pool,
	}
}

func (g *group) Do(job ContextJob) {
	g.pool.Do(func() {
		err := job(g.ctx)
		if err == nil {
			return
		}

		g.errOnce.Do(func() {
			g.err = err
			g.ctxCancel()
		})
	})
}

func (g *group) Wait() error {
	g.pool.Wait()
	g.ctxCancel()
	return g.err
}
