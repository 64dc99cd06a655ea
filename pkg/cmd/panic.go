package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/klwxsrx/repertoire-hero/pkg/log"
)

// HandleAppPanic must be deferred directly, otherwise recover does not see the panic.
// Closers run in both cases; the process exits with code 1 after a panic.
func HandleAppPanic(ctx context.Context, logger log.Logger, closers ...func(context.Context)) {
	msg := recover()
	for _, closer := range closers {
		closer(ctx)
	}
	if msg == nil {
		return
	}

	logger.WithField("panic", log.Fields{
		"message": fmt.Sprintf("%v", msg),
		"stack":   string(debug.Stack()),
	}).Error(ctx, "app failed with panic")
	os.Exit(1)
}
