package database

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

//go:embed schema/*.sql
var schemaFS embed.FS

const createMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    file_name TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Migrate applies every embedded schema file that has not been applied yet,
// in lexical order, each inside its own transaction.
func Migrate(dbURL string) error {
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return fmt.Errorf("cannot open database for migrations, %w", err)
	}
	defer db.Close()

	if _, err = db.Exec(createMigrationsTable); err != nil {
		return fmt.Errorf("cannot create schema_migrations, %w", err)
	}

	files, err := fs.Glob(schemaFS, "schema/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, file := range files {
		var exists bool
		err = db.QueryRow(
			"SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE file_name = $1)",
			file,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("cannot check migration %s, %w", file, err)
		}
		if exists {
			continue
		}

		if err = applyMigration(db, file); err != nil {
			return err
		}
		log.WithField("file", file).Info("applied migration")
	}

	return nil
}

func applyMigration(db *sql.DB, file string) error {
	content, err := schemaFS.ReadFile(file)
	if err != nil {
		return fmt.Errorf("cannot read migration %s, %w", file, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.Exec(string(content)); err != nil {
		return fmt.Errorf("migration %s failed, %w", file, err)
	}
	if _, err = tx.Exec(
		"INSERT INTO schema_migrations (file_name) VALUES ($1)",
		file,
	); err != nil {
		return fmt.Errorf("cannot record migration %s, %w", file, err)
	}

	return tx.Commit()
}
