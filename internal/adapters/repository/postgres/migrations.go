package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrationNames lists the embedded migration files in apply order.
func MigrationNames() ([]string, error) {
	entries, err := fs.ReadDir(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// MigrationContent returns the SQL of the first migration whose file name
// ends with "<name>.sql", e.g. "create_polls.up".
func MigrationContent(name string) (string, []byte, error) {
	names, err := MigrationNames()
	if err != nil {
		return "", nil, err
	}

	regex := regexp.MustCompile(fmt.Sprintf(`^.*%s\.sql$`, regexp.QuoteMeta(name)))
	for _, n := range names {
		if !regex.MatchString(n) {
			continue
		}
		content, err := migrationFiles.ReadFile("migrations/" + n)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read migration file %s: %w", n, err)
		}
		return n, content, nil
	}

	return "", nil, fmt.Errorf("migration file not found: %s", name)
}

// ApplyMigrations executes every *up.sql file in order. The statements are
// idempotent, so it is safe to run on every start.
func ApplyMigrations(ctx context.Context, db *sql.DB) error {
	names, err := MigrationNames()
	if err != nil {
		return err
	}

	for _, name := range names {
		if !strings.HasSuffix(name, "up.sql") {
			continue
		}

		content, err := migrationFiles.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", name, err)
		}

		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", name, err)
		}
	}

	return nil
}
