package db

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed migrations
var migrations embed.FS

// Migrate creates the notes and todos tables if they do not exist yet.
func (db *DB) Migrate() error {
	dir := "migrations/sqlite"
	if db.conn.DriverName() == DriverPostgres {
		dir = "migrations/postgres"
	}
	db.log.Debug("running migrations", "dir", dir)

	entries, err := fs.ReadDir(migrations, dir)
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".up.sql") {
			continue
		}
		stmt, err := fs.ReadFile(migrations, path.Join(dir, e.Name()))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", e.Name(), err)
		}
		if _, err := db.conn.Exec(string(stmt)); err != nil {
			return fmt.Errorf("apply migration %s: %w", e.Name(), err)
		}
	}

	db.log.Debug("migrations finished")
	return nil
}
