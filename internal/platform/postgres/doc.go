// Package postgres implements store.Store on PostgreSQL through the pgx
// database/sql driver. It owns the schema (embedded goose migrations), the
// connection pool setup, and the mapping from driver errors to store error
// kinds.
package postgres
