// Package persistence implements the domain repositories on top of GORM
// with SQLite and PostgreSQL backends.
package persistence
