package cmd

import (
	"context"

	"github.com/klwxsrx/repertoire-hero/pkg/sig"
)

func TermSignalAwaiter(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-sig.TermSignals():
	}

	return nil
}
