package cart

import "context"

// Store persists whole carts keyed by an opaque cart token.
//
// Load must tolerate malformed persisted data: implementations log the
// problem and return an empty cart instead of failing the request.
type Store interface {
	Load(ctx context.Context, token string) (*Cart, error)
	Save(ctx context.Context, token string, c *Cart) error
}
