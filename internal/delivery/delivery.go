// Package delivery defines the contract every transport entry point satisfies.
package delivery

import "context"

// Delivery is a long-running transport (an HTTP server here) managed by the
// fx application. Serve blocks until the transport stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
