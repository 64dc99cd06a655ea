package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/klwxsrx/repertoire-hero/pkg/log"
	"github.com/klwxsrx/repertoire-hero/pkg/worker"
)

var errJobCompleted = errors.New("job completed")

func MustRun(ctx context.Context, logger log.Logger, jobs ...worker.ContextJob) {
	if err := Run(ctx, logger, jobs...); err != nil {
		panic(fmt.Errorf("some of the jobs completed with error: %w", err))
	}
}

// Run blocks until any job returns; the rest are cancelled through the context.
func Run(ctx context.Context, logger log.Logger, jobs ...worker.ContextJob) error {
	_, group := worker.NewGroup(ctx)
	for _, job := range jobs {
		group.Do(func(ctx context.Context) error {
			err := job(ctx)
			if err == nil || errors.Is(err, context.Canceled) {
				return errJobCompleted
			}

			logger.WithError(err).Error(ctx, "running job completed with error")
			return err
		})
	}

	err := group.Wait()
	if errors.Is(err, errJobCompleted) {
		return nil
	}

	return err
}
