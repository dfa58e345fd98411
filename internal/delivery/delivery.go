package delivery

import "context"

// Delivery is an inbound transport started by the fx graph.
type Delivery interface {
	Serve(ctx context.Context) error
}
