// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch data, abstracting SQL
// logic away from the service layer. Every query is read-only.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier is the part of *pgxpool.Pool the repositories use.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
