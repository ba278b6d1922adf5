// Package delivery defines the contract every transport adapter fulfils.
package delivery

import "context"

// Delivery is a long-running transport surface (HTTP server, worker, ...)
// started by the application entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
