package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed client/*.sql
var clientMigrations embed.FS

//go:embed server/*.sql
var serverMigrations embed.FS

// MigrateClient applies the SQLite schema used by the on-device record store.
func MigrateClient(db *sql.DB) error {
	goose.SetBaseFS(clientMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for client db: %w", err)
	}

	if err := goose.Up(db, "client"); err != nil {
		return fmt.Errorf("client migration error: %w", err)
	}

	return nil
}

// MigrateServer applies the PostgreSQL schema used by the warranty server.
func MigrateServer(db *sql.DB) error {
	goose.SetBaseFS(serverMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migration error setting dialect for server db: %w", err)
	}

	if err := goose.Up(db, "server"); err != nil {
		return fmt.Errorf("server migration error: %w", err)
	}

	return nil
}
