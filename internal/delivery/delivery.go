// Package delivery defines the contract shared by every inbound adapter of the service.
package delivery

import "context"

// Delivery is a long-running inbound adapter started by the application entrypoint.
type Delivery interface {
	// Serve blocks until the delivery stops. It returns nil on a graceful stop.
	Serve(ctx context.Context) error
}
