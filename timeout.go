package googleai

import (
	"context"
	"time"
)

// applyTimeout derives a per-call deadline when the options ask for one. The
// returned cancel func is always non-nil so callers can defer it blindly.
func applyTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return ctx, func() {}
}
