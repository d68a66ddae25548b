// Package delivery defines the contract every transport entrypoint implements.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...) managed by
// the application lifecycle.
type Delivery interface {
	// Serve blocks and runs the delivery until it fails or is shut down.
	Serve(ctx context.Context) error
}
