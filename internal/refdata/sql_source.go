// internal/refdata/sql_source.go
//
// SQL-backed Source for deployments that read the reference tables
// directly instead of going through the REST backend.
//
// Tables (MySQL/MariaDB): category, subcategory, country, city.  Optional
// localized columns may be NULL; COALESCE folds them to "" so rows scan into
// plain strings.

package refdata

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// localizedCols is the shared column list of every reference table.
const localizedCols = `
        id,
        COALESCE(name,    '') AS name,
        COALESCE(name_uk, '') AS name_uk,
        COALESCE(name_en, '') AS name_en,
        COALESCE(name_pl, '') AS name_pl,
        COALESCE(name_fr, '') AS name_fr,
        COALESCE(name_de, '') AS name_de,
        COALESCE(slug_uk, '') AS slug_uk,
        COALESCE(slug_en, '') AS slug_en,
        COALESCE(slug_pl, '') AS slug_pl,
        COALESCE(slug_fr, '') AS slug_fr,
        COALESCE(slug_de, '') AS slug_de`

// SQLSource implements Source with sqlx.
type SQLSource struct {
	db *sqlx.DB
}

// NewSQLSource wraps an open pool.  The caller owns db.
func NewSQLSource(db *sqlx.DB) *SQLSource {
	return &SQLSource{db: db}
}

func (s *SQLSource) Categories(ctx context.Context) ([]Category, error) {
	const q = `SELECT` + localizedCols + `
        FROM   category
        ORDER  BY id`
	return selectAll[Category](ctx, s.db, "categories", q)
}

func (s *SQLSource) Subcategories(ctx context.Context) ([]Subcategory, error) {
	const q = `SELECT` + localizedCols + `,
        full_category_id
        FROM   subcategory
        ORDER  BY id`
	return selectAll[Subcategory](ctx, s.db, "subcategories", q)
}

func (s *SQLSource) Countries(ctx context.Context) ([]Country, error) {
	const q = `SELECT` + localizedCols + `
        FROM   country
        ORDER  BY id`
	return selectAll[Country](ctx, s.db, "countries", q)
}

func (s *SQLSource) Cities(ctx context.Context) ([]City, error) {
	const q = `SELECT` + localizedCols + `,
        country_id
        FROM   city
        ORDER  BY id`
	return selectAll[City](ctx, s.db, "cities", q)
}

func selectAll[T any](ctx context.Context, db *sqlx.DB, what, q string) ([]T, error) {
	rows := []T{}
	if err := db.SelectContext(ctx, &rows, q); err != nil {
		return nil, fmt.Errorf("refdata: select %s: %w", what, err)
	}
	return rows, nil
}
