package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"

	domsettings "example.com/provisions-store/internal/domain/settings"
)

// SettingsRepository keeps a single JSON settings document in one row.
type SettingsRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

func NewSettingsRepository(db *sql.DB, log zerolog.Logger) *SettingsRepository {
	return &SettingsRepository{db: db, log: log}
}

func (r *SettingsRepository) Load(ctx context.Context) (*domsettings.Settings, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx, `SELECT data FROM settings WHERE id = 1`).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domsettings.Defaults(), nil
		}
		return nil, err
	}

	var s domsettings.Settings
	if err := json.Unmarshal(data, &s); err != nil {
		r.log.Warn().Err(err).Msg("stored settings unreadable, falling back to defaults")
		return domsettings.Defaults(), nil
	}
	return &s, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s *domsettings.Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
        INSERT INTO settings (id, data) VALUES (1, $1)
        ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data
    `, data)
	return err
}
