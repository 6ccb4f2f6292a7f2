// Package delivery defines the contract every transport (HTTP, workers)
// fulfills so main can start them uniformly.
package delivery

import "context"

// Delivery is a server that can be started by the application entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
