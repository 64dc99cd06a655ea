package time_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	pkgtime "github.com/klwxsrx/repertoire-hero/pkg/time"
)

func TestClock_Set_PinsNow(t *testing.T) {
	clock := pkgtime.NewClock()
	pinned := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	ctx := clock.Set(context.Background(), pinned)

	assert.Equal(t, pinned, clock.Now(ctx))
}

func TestClock_Freeze_KeepsFirstValue(t *testing.T) {
	clock := pkgtime.NewClock()

	ctx := clock.Freeze(context.Background())
	first := clock.Now(ctx)
	ctx = clock.Freeze(ctx)

	assert.Equal(t, first, clock.Now(ctx))
}
