// Package delivery defines the contract served entry points implement.
package delivery

import "context"

// Delivery is a long-running entry point (an HTTP server, a worker loop).
// Serve blocks until the delivery stops or ctx is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
