package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds database work in tests.
const DefaultTimeout = 5 * time.Second

// Context returns a context cancelled when the test ends or the timeout passes,
// whichever comes first. The timeout is shortened to respect the test deadline.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if withDeadline, ok := t.(interface{ Deadline() (time.Time, bool) }); ok {
		if deadline, ok := withDeadline.Deadline(); ok {
			if remaining := time.Until(deadline) - time.Second; remaining > 0 && remaining < timeout {
				timeout = remaining
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
