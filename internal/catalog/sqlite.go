package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/akyairhashvil/ecoweek/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

// CatalogSchema is the table LoadSQLite reads from.
const CatalogSchema = `CREATE TABLE IF NOT EXISTS challenges (
	id INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	icon TEXT NOT NULL DEFAULT '',
	points INTEGER NOT NULL DEFAULT 0,
	description TEXT NOT NULL DEFAULT ''
);`

// LoadSQLite reads challenge templates from the sqlite file at path. The file
// is opened read-only; rows with an empty title or negative points are
// skipped.
func LoadSQLite(ctx context.Context, path string) ([]models.ChallengeTemplate, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}

	rows, err := db.QueryContext(ctx, `SELECT id, title, icon, points, description FROM challenges ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

	var out []models.ChallengeTemplate
	seen := make(map[int]bool)
	for rows.Next() {
		var t models.ChallengeTemplate
		if err := rows.Scan(&t.ID, &t.Title, &t.Icon, &t.Points, &t.Description); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		t.Title = strings.TrimSpace(t.Title)
		if t.Title == "" || t.Points < 0 || seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return out, nil
}

// WriteSQLite creates path with the catalog table and inserts templates. It
// backs the catalog export subcommand and tests.
func WriteSQLite(ctx context.Context, path string, templates []models.ChallengeTemplate) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("create catalog %s: %w", path, err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, CatalogSchema); err != nil {
		return fmt.Errorf("create catalog table: %w", err)
	}
	for _, t := range templates {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO challenges (id, title, icon, points, description) VALUES (?, ?, ?, ?, ?)`,
			t.ID, t.Title, t.Icon, t.Points, t.Description,
		); err != nil {
			return fmt.Errorf("insert challenge %d: %w", t.ID, err)
		}
	}
	return tx.Commit()
}
