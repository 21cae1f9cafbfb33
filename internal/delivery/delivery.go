// Package delivery defines the entry points that expose the application
// to the outside world.
package delivery

import "context"

// Delivery is a serving surface started by main. Serve blocks until the
// listener fails or the process shuts down.
type Delivery interface {
	Serve(ctx context.Context) error
}
