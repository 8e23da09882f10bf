package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"

	domcart "example.com/provisions-store/internal/domain/cart"
)

// CartStore keeps each cart as a JSON document keyed by its token, the
// server-side counterpart of a browser keeping the cart in local storage.
type CartStore struct {
	db  *sql.DB
	log zerolog.Logger
}

func NewCartStore(db *sql.DB, log zerolog.Logger) *CartStore {
	return &CartStore{db: db, log: log}
}

// Load returns the cart stored under token. A missing row or an
// unparseable document yields a fresh empty cart rather than an error.
func (s *CartStore) Load(ctx context.Context, token string) (*domcart.Cart, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM carts WHERE token = $1`, token).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domcart.New(), nil
		}
		return nil, err
	}

	var c domcart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		s.log.Warn().Err(err).Str("cart_token", token).Msg("discarding unreadable cart data")
		return domcart.New(), nil
	}
	if c.Lines == nil {
		c.Lines = []domcart.Line{}
	}
	return &c, nil
}

func (s *CartStore) Save(ctx context.Context, token string, c *domcart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
        INSERT INTO carts (token, data, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (token) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
    `, token, data)
	return err
}
