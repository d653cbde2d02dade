package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/jvkuechen/secguard/internal/domain"
)

// migrations holds the base schema. Statements are idempotent and re-run on
// every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS answers (
		question_id TEXT PRIMARY KEY,
		value       TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS task_marks (
		task_id   TEXT PRIMARY KEY,
		mark      TEXT NOT NULL CHECK(mark IN ('completed','dismissed')),
		marked_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS assessments (
		id         TEXT PRIMARY KEY,
		mode       TEXT NOT NULL,
		percentage INTEGER NOT NULL,
		level_key  TEXT NOT NULL,
		answered   INTEGER NOT NULL,
		taken_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assessments_taken ON assessments(taken_at)`,
}

// Migrate runs the schema migrations and, when the stored answer schema is
// at version 1, the one-time answer key/value remapping.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateAnswerSchema(db); err != nil {
		return fmt.Errorf("migrating answer schema: %w", err)
	}
	return nil
}

func migrateAnswerSchema(db *sql.DB) error {
	version := storedVersion(db)
	switch {
	case version == domain.StateVersion:
		return nil
	case version == 1:
		if err := remapV1Answers(db); err != nil {
			return err
		}
	case version == 0:
		// Fresh database, nothing to remap.
	default:
		// Unknown (future or corrupt) version: fall back to a fresh state
		// rather than misinterpreting the rows.
		if _, err := db.Exec(`DELETE FROM answers`); err != nil {
			return fmt.Errorf("clearing unreadable answers: %w", err)
		}
		if _, err := db.Exec(`DELETE FROM task_marks`); err != nil {
			return fmt.Errorf("clearing unreadable task marks: %w", err)
		}
	}
	return setStoredVersion(db, domain.StateVersion)
}

// storedVersion reads the schema version from meta. Missing or malformed
// values read as 0, which is treated as a fresh database.
func storedVersion(db *sql.DB) int {
	var raw string
	err := db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&raw)
	if err != nil {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func setStoredVersion(db *sql.DB, version int) error {
	_, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`,
		strconv.Itoa(version))
	if err != nil {
		return fmt.Errorf("storing schema version: %w", err)
	}
	return nil
}

// remapV1Answers rewrites the answers table from the v1 flat key scheme to
// the current question IDs and option values.
func remapV1Answers(db *sql.DB) error {
	rows, err := db.Query(`SELECT question_id, value FROM answers`)
	if err != nil {
		return fmt.Errorf("loading v1 answers: %w", err)
	}
	old := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			rows.Close()
			return fmt.Errorf("scanning v1 answer: %w", err)
		}
		old[k] = v
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("iterating v1 answers: %w", err)
	}
	rows.Close()

	migrated := MigrateV1AnswerSet(old)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting remap transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.Exec(`DELETE FROM answers`); err != nil {
		return fmt.Errorf("clearing v1 answers: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for k, v := range migrated {
		if _, err := tx.Exec(`INSERT INTO answers (question_id, value, updated_at) VALUES (?, ?, ?)`,
			k, v, now); err != nil {
			return fmt.Errorf("writing migrated answer %s: %w", k, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing remap: %w", err)
	}
	committed = true
	return nil
}

// MigrateV1AnswerSet maps a v1 answer map onto the current question IDs and
// option values. Keys with no mapping are dropped silently.
func MigrateV1AnswerSet(old map[string]string) map[string]string {
	out := map[string]string{}

	if v, ok := old["passwordManager"]; ok {
		switch v {
		case "yes":
			out["passwordManager"] = "dedicated"
		case "no":
			out["passwordManager"] = "memory"
		default:
			out["passwordManager"] = v
		}
	}
	if v, ok := old["twoFactorEmail"]; ok {
		out["emailTwoFactor"] = v
	}
	if v, ok := old["twoFactorBanking"]; ok {
		switch v {
		case "yes":
			out["financialTwoFactor"] = "all"
		case "no":
			out["financialTwoFactor"] = "no"
		default:
			out["financialTwoFactor"] = "unsure"
		}
	}
	if v, ok := old["updates"]; ok {
		switch v {
		case "yes-auto":
			out["softwareUpdates"] = "auto"
		case "yes-manual":
			out["softwareUpdates"] = "prompt"
		case "no":
			out["softwareUpdates"] = "delay"
		default:
			out["softwareUpdates"] = "unsure"
		}
	}

	return out
}
