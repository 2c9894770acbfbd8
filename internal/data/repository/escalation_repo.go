package repository

import (
	"context"
	"fmt"

	"moviehub/internal/data/entity"
	"moviehub/pkg/database"

	"go.uber.org/zap"
)

type EscalationRepository interface {
	Upsert(ctx context.Context, setting *entity.EscalationSetting) error
	FindAll(ctx context.Context) ([]*entity.EscalationSetting, error)
}

type escalationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEscalationRepository(db database.PgxIface, log *zap.Logger) EscalationRepository {
	return &escalationRepository{
		db:  db,
		log: log.With(zap.String("repository", "escalation")),
	}
}

// Upsert stores the time limit for a level, replacing any previous value.
func (r *escalationRepository) Upsert(ctx context.Context, setting *entity.EscalationSetting) error {
	query := `
		INSERT INTO escalation_settings (level, time_limit, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (level) DO UPDATE
		SET time_limit = EXCLUDED.time_limit, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query, setting.Level, setting.TimeLimit, setting.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to upsert escalation setting",
			zap.Error(err),
			zap.String("level", string(setting.Level)),
			zap.Int("time_limit", setting.TimeLimit),
		)
		return fmt.Errorf("upsert escalation setting %s: %w", setting.Level, err)
	}

	return nil
}

func (r *escalationRepository) FindAll(ctx context.Context) ([]*entity.EscalationSetting, error) {
	query := `SELECT level, time_limit, updated_at FROM escalation_settings ORDER BY level`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find escalation settings", zap.Error(err))
		return nil, fmt.Errorf("find escalation settings: %w", err)
	}
	defer rows.Close()

	settings := make([]*entity.EscalationSetting, 0)
	for rows.Next() {
		var setting entity.EscalationSetting
		if err := rows.Scan(&setting.Level, &setting.TimeLimit, &setting.UpdatedAt); err != nil {
			r.log.Error("Failed to scan escalation setting row", zap.Error(err))
			return nil, fmt.Errorf("scan escalation setting row: %w", err)
		}
		settings = append(settings, &setting)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate escalation settings rows: %w", err)
	}

	return settings, nil
}
