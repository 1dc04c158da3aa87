// Package delivery defines the contract implemented by every transport that
// exposes the application, such as the HTTP server.
package delivery

import "context"

// Delivery is a long-running transport serving the application.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
