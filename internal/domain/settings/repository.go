package settings

import "context"

// Repository stores the single settings row. Load returns Defaults when
// nothing has been saved yet or the stored payload cannot be parsed.
type Repository interface {
	Load(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
}
