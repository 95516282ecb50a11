package store

import "github.com/jmoiron/sqlx"

// DBTX is an interface that abstracts the database access layer.
// It is implemented by both *sqlx.DB and *sqlx.Tx, allowing store
// implementations to work with either a pooled connection or a transaction
// owned by the caller.
type DBTX interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
}

// DefaultLimit is the number of rows returned by list operations when the
// caller does not ask for a positive limit.
const DefaultLimit = 10

// NormalizeLimit returns limit, or DefaultLimit when limit is not positive.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
