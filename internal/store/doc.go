// Package store defines the persistence contract for the job board. Every
// backend (in-memory, relational) implements Store with identical observable
// behaviour: pagination, soft deletion, and uniqueness conflicts all surface
// the same way regardless of where the data lives.
package store
