package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jjenkins/resume/internal/catalog"
	"github.com/jjenkins/resume/internal/model"
	"github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS catalog_categories (
	id       TEXT PRIMARY KEY,
	name     TEXT NOT NULL,
	position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS catalog_achievements (
	category_id      TEXT NOT NULL REFERENCES catalog_categories (id) ON DELETE CASCADE,
	position         INTEGER NOT NULL,
	sort_index       BIGINT NOT NULL,
	title            TEXT NOT NULL UNIQUE,
	display_name     TEXT NOT NULL DEFAULT '',
	release_time     BIGINT NOT NULL,
	strict_deadline  BIGINT NOT NULL,
	lenient_deadline BIGINT NOT NULL,
	PRIMARY KEY (category_id, position)
);
`

// CatalogStore handles database operations for the achievement catalog
type CatalogStore struct {
	db *sql.DB
}

// NewCatalogStore creates a new CatalogStore
func NewCatalogStore(db *sql.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// EnsureSchema creates the catalog tables if they do not exist
func (s *CatalogStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create catalog schema: %w", err)
	}
	return nil
}

// Load reads and validates the stored catalog
func (s *CatalogStore) Load(ctx context.Context) (*catalog.Catalog, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.name, a.sort_index, a.title, a.display_name,
		       a.release_time, a.strict_deadline, a.lenient_deadline
		FROM catalog_categories c
		LEFT JOIN catalog_achievements a ON a.category_id = c.id
		ORDER BY c.position, a.position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	defer rows.Close()

	var categories []catalog.Category
	for rows.Next() {
		var (
			id, name    string
			sortIndex   sql.NullInt64
			title       sql.NullString
			displayName sql.NullString
			release     sql.NullInt64
			strict      sql.NullInt64
			lenient     sql.NullInt64
		)
		if err := rows.Scan(&id, &name, &sortIndex, &title, &displayName, &release, &strict, &lenient); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}

		if n := len(categories); n == 0 || categories[n-1].ID != model.CategoryID(id) {
			categories = append(categories, catalog.Category{ID: model.CategoryID(id), Name: name})
		}
		if !title.Valid {
			continue // category without achievements
		}

		cat := &categories[len(categories)-1]
		cat.Achievements = append(cat.Achievements, model.AchievementDefinition{
			SortIndex:       sortIndex.Int64,
			Title:           title.String,
			DisplayName:     displayName.String,
			ReleaseTime:     release.Int64,
			StrictDeadline:  strict.Int64,
			LenientDeadline: lenient.Int64,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog rows: %w", err)
	}

	return catalog.New(categories)
}

// Replace swaps the stored catalog for the given one in a single transaction
func (s *CatalogStore) Replace(ctx context.Context, c *catalog.Catalog) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM catalog_categories`); err != nil {
		return 0, fmt.Errorf("failed to clear catalog: %w", err)
	}

	categories := c.Categories()
	for pos, cat := range categories {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO catalog_categories (id, name, position) VALUES ($1, $2, $3)`,
			string(cat.ID), cat.Name, pos)
		if err != nil {
			return 0, fmt.Errorf("failed to insert category %s: %w", cat.ID, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("catalog_achievements",
		"category_id", "position", "sort_index", "title", "display_name",
		"release_time", "strict_deadline", "lenient_deadline"))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare copy: %w", err)
	}

	count := 0
	for _, cat := range categories {
		for pos, def := range cat.Achievements {
			_, err := stmt.ExecContext(ctx, string(cat.ID), pos, def.SortIndex, def.Title, def.DisplayName,
				def.ReleaseTime, def.StrictDeadline, def.LenientDeadline)
			if err != nil {
				stmt.Close()
				return 0, fmt.Errorf("failed to copy achievement %q: %w", def.Title, err)
			}
			count++
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return 0, fmt.Errorf("failed to flush copy: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return 0, fmt.Errorf("failed to close copy: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit catalog: %w", err)
	}

	return count, nil
}
