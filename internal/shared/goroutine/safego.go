// Package goroutine runs fire-and-forget work outside the request lifecycle.
package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"marketplace/internal/shared/logger"
)

// Detached runs fn in its own goroutine. The context keeps the values of parent
// but not its cancellation, and expires after timeout. A returned error or a
// panic is logged under name.
func Detached(parent context.Context, log logger.Interface, name string, timeout time.Duration, fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), timeout)
	go func() {
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("background task panicked",
					"task", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		if err := fn(ctx); err != nil {
			log.Warnw("background task failed", "task", name, "error", err)
		}
	}()
}
