package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
)

// Get builds query and scans exactly one row into dst.
// The transaction stored in ctx, if any, takes precedence over db.
func Get(ctx context.Context, db Querier, dst any, query squirrel.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, QuerierFromCtx(ctx, db), dst, sql, args...)
}

// Select builds query and scans all rows into dst, which must be a pointer to a slice.
func Select(ctx context.Context, db Querier, dst any, query squirrel.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, QuerierFromCtx(ctx, db), dst, sql, args...)
}

// Exec builds and executes a statement that returns no rows.
func Exec(ctx context.Context, db Querier, query squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}
	return QuerierFromCtx(ctx, db).Exec(ctx, sql, args...)
}
