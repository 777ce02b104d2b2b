// Package sqlite provides SQLite-based persistent storage for Study Quest.
// Uses WAL mode for concurrent reads and crash-safe writes.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// querier is satisfied by both *sql.DB and *sql.Tx so repository methods
// work unchanged inside a transaction.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	sqlDB *sql.DB // nil when this handle is transaction-scoped
	q     querier
}

// Open creates or opens the SQLite database at dir/studyquest.db.
// Enables WAL mode, foreign keys, and 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "studyquest.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// Connection pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is single-writer
	db.SetMaxIdleConns(1)

	d := &DB{sqlDB: db, q: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	if d.sqlDB == nil {
		return nil
	}
	return d.sqlDB.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	if d.sqlDB == nil {
		return nil
	}
	return d.sqlDB.Ping()
}

// WithTx runs fn inside a SQL transaction. The *DB handed to fn is scoped to
// the transaction; every repository method called on it sees and produces
// uncommitted state until fn returns. Reward chains (quest completion, boss
// defeat, egg opening) run through here so either the whole chain commits or
// none of it does. Nested calls reuse the enclosing transaction.
func (d *DB) WithTx(fn func(tx *DB) error) error {
	if d.sqlDB == nil {
		return fn(d) // already inside a transaction
	}

	tx, err := d.sqlDB.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(&DB{q: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id              TEXT PRIMARY KEY,
			username        TEXT UNIQUE NOT NULL,
			level           INTEGER NOT NULL DEFAULT 1,
			xp              INTEGER NOT NULL DEFAULT 0,
			total_xp        INTEGER NOT NULL DEFAULT 0,
			streak          INTEGER NOT NULL DEFAULT 0,
			longest_streak  INTEGER NOT NULL DEFAULT 0,
			last_study_date TEXT NOT NULL DEFAULT '',
			created_at      INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS quests (
			id           TEXT PRIMARY KEY,
			user_id      TEXT NOT NULL REFERENCES users(id),
			title        TEXT NOT NULL,
			description  TEXT NOT NULL DEFAULT '',
			xp_reward    INTEGER NOT NULL DEFAULT 50,
			category     TEXT NOT NULL DEFAULT 'study',
			is_completed INTEGER NOT NULL DEFAULT 0,
			created_at   INTEGER NOT NULL,
			completed_at INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quests_user_created ON quests(user_id, created_at)`,

		`CREATE TABLE IF NOT EXISTS achievements (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT NOT NULL,
			icon        TEXT NOT NULL,
			requirement INTEGER NOT NULL,
			type        TEXT NOT NULL,
			xp_reward   INTEGER NOT NULL DEFAULT 100
		)`,

		`CREATE TABLE IF NOT EXISTS user_achievements (
			id             TEXT PRIMARY KEY,
			user_id        TEXT NOT NULL REFERENCES users(id),
			achievement_id TEXT NOT NULL REFERENCES achievements(id),
			unlocked_at    INTEGER NOT NULL,
			UNIQUE(user_id, achievement_id)
		)`,

		`CREATE TABLE IF NOT EXISTS shop_items (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT NOT NULL,
			icon        TEXT NOT NULL,
			price       INTEGER NOT NULL,
			type        TEXT NOT NULL,
			rarity      TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS user_items (
			id       TEXT PRIMARY KEY,
			user_id  TEXT NOT NULL REFERENCES users(id),
			item_id  TEXT NOT NULL REFERENCES shop_items(id),
			quantity INTEGER NOT NULL DEFAULT 1,
			UNIQUE(user_id, item_id)
		)`,

		`CREATE TABLE IF NOT EXISTS pets (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			emoji       TEXT NOT NULL,
			description TEXT NOT NULL,
			rarity      TEXT NOT NULL,
			subject     TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS user_pets (
			id               TEXT PRIMARY KEY,
			user_id          TEXT NOT NULL REFERENCES users(id),
			pet_id           TEXT NOT NULL REFERENCES pets(id),
			level            INTEGER NOT NULL DEFAULT 1,
			exp              INTEGER NOT NULL DEFAULT 0,
			happiness        INTEGER NOT NULL DEFAULT 100,
			is_hatched       INTEGER NOT NULL DEFAULT 0,
			hatch_progress   INTEGER NOT NULL DEFAULT 0,
			acquired_at      INTEGER NOT NULL,
			last_interaction INTEGER,
			UNIQUE(user_id, pet_id)
		)`,

		`CREATE TABLE IF NOT EXISTS boss_battles (
			id          TEXT PRIMARY KEY,
			user_id     TEXT NOT NULL REFERENCES users(id),
			boss_name   TEXT NOT NULL,
			boss_hp     INTEGER NOT NULL,
			current_hp  INTEGER NOT NULL,
			month       TEXT NOT NULL,
			is_defeated INTEGER NOT NULL DEFAULT 0,
			rewards     INTEGER NOT NULL DEFAULT 0,
			UNIQUE(user_id, month)
		)`,

		`CREATE TABLE IF NOT EXISTS daily_stats (
			id                  TEXT PRIMARY KEY,
			user_id             TEXT NOT NULL REFERENCES users(id),
			date                TEXT NOT NULL,
			quests_completed    INTEGER NOT NULL DEFAULT 0,
			xp_earned           INTEGER NOT NULL DEFAULT 0,
			pomodoros_completed INTEGER NOT NULL DEFAULT 0,
			UNIQUE(user_id, date)
		)`,

		`CREATE TABLE IF NOT EXISTS study_sessions (
			id               TEXT PRIMARY KEY,
			user_id          TEXT NOT NULL REFERENCES users(id),
			duration_minutes INTEGER NOT NULL,
			session_type     TEXT NOT NULL DEFAULT 'pomodoro',
			created_at       INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_user ON study_sessions(user_id)`,
	}

	for _, m := range migrations {
		if _, err := d.q.Exec(m); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}
