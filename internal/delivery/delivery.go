// Package delivery defines the entry points through which the outside
// world reaches the application.
package delivery

import "context"

// Delivery is a serving surface (an HTTP server, a worker loop). Each
// implementation blocks in Serve until the context is canceled or the
// surface fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
