// Package postgres provides PostgreSQL implementations of the store
// interfaces, plus the embedded schema migrations and helpers for mapping
// driver-level errors to store-level sentinel errors.
package postgres
