package postgres

import (
	"context"

	"github.com/wicaksana/atelier/internal/domain"
)

// site_settings is a single-row table seeded by the initial migration.

func (s *Store) GetSettings(ctx context.Context) (domain.SiteSettings, error) {
	var settings domain.SiteSettings
	err := s.pool.QueryRow(ctx,
		`SELECT theme, particles_enabled, updated_at FROM site_settings WHERE id = 1`,
	).Scan(&settings.Theme, &settings.ParticlesEnabled, &settings.UpdatedAt)
	if err != nil {
		return domain.SiteSettings{}, domain.Internal(err, "postgres.get_settings", "failed to get settings")
	}
	return settings, nil
}

func (s *Store) UpdateSettings(ctx context.Context, settings domain.SiteSettings) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE site_settings
		SET theme = $1, particles_enabled = $2, updated_at = now()
		WHERE id = 1`,
		settings.Theme, settings.ParticlesEnabled,
	)
	if err != nil {
		return domain.Internal(err, "postgres.update_settings", "failed to update settings")
	}
	return nil
}
