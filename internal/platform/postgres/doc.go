// Package postgres provides PostgreSQL implementations of the store
// interfaces, backed by database/sql with the pgx driver. Ownership
// scoping lives in the WHERE clauses: every contact lookup matches
// id AND username, every address lookup matches id AND contact_id.
package postgres
