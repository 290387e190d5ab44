package database

// migrationsSQL contains all database migrations.
// Migrations are applied in order by version number.
// Each migration should be idempotent (safe to run multiple times).
var migrationsSQL = map[int]string{
	1: migrationV1Profiles,
}

// migrationV1Profiles creates the profile store.
//
// A profile is the persisted calendar configuration: the five category
// flags, the raw birthday text, and the location. Birthday text is
// stored verbatim and parsed at computation time, so malformed lines
// never block a save. The "default" profile is seeded here so the API
// always has a configuration to fall back on.
const migrationV1Profiles = `
-- Migration 001: profile store

CREATE TABLE IF NOT EXISTS profiles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	federal_holidays INTEGER NOT NULL DEFAULT 1,
	observances INTEGER NOT NULL DEFAULT 1,
	sunrise_sunset INTEGER NOT NULL DEFAULT 1,
	full_moons INTEGER NOT NULL DEFAULT 1,
	equinoxes_solstices INTEGER NOT NULL DEFAULT 1,
	birthday_text TEXT NOT NULL DEFAULT '',
	lat REAL NOT NULL DEFAULT 47.67,
	lng REAL NOT NULL DEFAULT -122.38,
	created_at TEXT NOT NULL DEFAULT (datetime('now')),
	updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_profiles_name ON profiles(name);

INSERT OR IGNORE INTO profiles (name) VALUES ('default');
`
