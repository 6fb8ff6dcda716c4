//go:build integration

// Package testdb provides helpers for tests that need a real PostgreSQL
// database. Tests using it are built with the integration tag and skip when
// DATABASE_URL is not set.
package testdb
