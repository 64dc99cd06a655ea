package cmd_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/repertoire-hero/pkg/cmd"
	"github.com/klwxsrx/repertoire-hero/pkg/log"
)

func TestRun_StopsAllJobsWhenOneCompletes(t *testing.T) {
	var listenerStopped bool
	err := cmd.Run(context.Background(), log.NewStub(),
		func(context.Context) error { return nil },
		func(ctx context.Context) error {
			<-ctx.Done()
			listenerStopped = true
			return nil
		},
	)

	assert.NoError(t, err)
	assert.True(t, listenerStopped)
}

func TestRun_ReturnsJobError(t *testing.T) {
	expectedErr := errors.New("bind: address already in use")
	err := cmd.Run(context.Background(), log.NewStub(),
		func(context.Context) error { return expectedErr },
		func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	)

	assert.ErrorIs(t, err, expectedErr)
}

func TestMustRun_PanicsOnJobError(t *testing.T) {
	assert.Panics(t, func() {
		cmd.MustRun(context.Background(), log.NewStub(), func(context.Context) error {
			return errors.New("unexpected")
		})
	})
}
