package postgres

import (
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies every pending goose migration found under dir in fsys.
func Migrate(url string, fsys fs.FS, dir string) error {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return fmt.Errorf("Postgres - Migrate - sql.Open: %w", err)
	}
	defer db.Close()

	if err = db.Ping(); err != nil {
		return fmt.Errorf("Postgres - Migrate - db.Ping: %w", err)
	}

	goose.SetBaseFS(fsys)

	if err = goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("Postgres - Migrate - goose.SetDialect: %w", err)
	}

	if err = goose.Up(db, dir); err != nil {
		return fmt.Errorf("Postgres - Migrate - goose.Up: %w", err)
	}

	return nil
}
