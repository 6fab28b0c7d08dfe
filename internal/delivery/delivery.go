// Package delivery defines the contract implemented by transport servers.
package delivery

import "context"

// Delivery is a long-running transport that serves the application until the
// context ends or shutdown is requested.
type Delivery interface {
	Serve(ctx context.Context) error
}
