package domain

import "time"

// SiteSettings is the single process-wide appearance settings row: the active
// color theme and the particle background toggle. The storefront subscribes
// to changes so an admin edit is visible without a reload.
type SiteSettings struct {
	Theme            string
	ParticlesEnabled bool
	UpdatedAt        time.Time
}

// UpdateSettingsParams contains parameters for updating site settings.
// Pointer fields indicate optional updates (nil = no change).
type UpdateSettingsParams struct {
	Theme            *string
	ParticlesEnabled *bool
}
