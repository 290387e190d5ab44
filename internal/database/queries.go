package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Tries multiple formats and returns the zero time if parsing fails.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

const profileColumns = `
	id, name,
	federal_holidays, observances, sunrise_sunset,
	full_moons, equinoxes_solstices,
	birthday_text, lat, lng,
	created_at, updated_at
`

// scanProfile scans one profile row.
func scanProfile(row *sql.Row) (*Profile, error) {
	var p Profile
	var createdAt, updatedAt string

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.FederalHolidays,
		&p.Observances,
		&p.SunriseSunset,
		&p.FullMoons,
		&p.EquinoxesSolstices,
		&p.BirthdayText,
		&p.Lat,
		&p.Lng,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}

	p.CreatedAt = parseTimestamp(createdAt)
	p.UpdatedAt = parseTimestamp(updatedAt)
	return &p, nil
}

// =============================================================================
// Profile Queries
// =============================================================================

// GetProfile retrieves a profile by name.
// Returns ErrNotFound if no profile with that name exists.
func (db *DB) GetProfile(ctx context.Context, name string) (*Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE name = ?`
	return scanProfile(db.QueryRowContext(ctx, query, name))
}

// ListProfiles returns all saved profiles ordered by name.
func (db *DB) ListProfiles(ctx context.Context) ([]Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY name`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		var createdAt, updatedAt string
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.FederalHolidays,
			&p.Observances,
			&p.SunriseSunset,
			&p.FullMoons,
			&p.EquinoxesSolstices,
			&p.BirthdayText,
			&p.Lat,
			&p.Lng,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan profile row: %w", err)
		}
		p.CreatedAt = parseTimestamp(createdAt)
		p.UpdatedAt = parseTimestamp(updatedAt)
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profile rows: %w", err)
	}

	return profiles, nil
}

// SaveProfile inserts or updates a profile by name and returns the
// stored row.
func (db *DB) SaveProfile(ctx context.Context, p *Profile) (*Profile, error) {
	if p.Name == "" {
		p.Name = DefaultProfileName
	}

	query := `
		INSERT INTO profiles (
			name, federal_holidays, observances, sunrise_sunset,
			full_moons, equinoxes_solstices, birthday_text, lat, lng
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			federal_holidays = excluded.federal_holidays,
			observances = excluded.observances,
			sunrise_sunset = excluded.sunrise_sunset,
			full_moons = excluded.full_moons,
			equinoxes_solstices = excluded.equinoxes_solstices,
			birthday_text = excluded.birthday_text,
			lat = excluded.lat,
			lng = excluded.lng,
			updated_at = datetime('now')
	`

	_, err := db.ExecContext(ctx, query,
		p.Name,
		p.FederalHolidays,
		p.Observances,
		p.SunriseSunset,
		p.FullMoons,
		p.EquinoxesSolstices,
		p.BirthdayText,
		p.Lat,
		p.Lng,
	)
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	return db.GetProfile(ctx, p.Name)
}

// DeleteProfile removes a profile by name. The default profile cannot
// be deleted.
func (db *DB) DeleteProfile(ctx context.Context, name string) error {
	if name == DefaultProfileName {
		return fmt.Errorf("the %q profile cannot be deleted", DefaultProfileName)
	}

	res, err := db.ExecContext(ctx, `DELETE FROM profiles WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete profile rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
