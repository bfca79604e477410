// Package delivery holds the entry points that expose the usecases: the API server
// and the dataset workers.
package delivery

import "context"

// Delivery is a long-running server started by the fx application.
type Delivery interface {
	// Serve blocks until the server stops. It returns nil on a graceful shutdown.
	Serve(ctx context.Context) error
}
