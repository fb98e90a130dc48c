// Package archive snapshots the reduced graph into a SQLite database.
//
// The archive is a queryable mirror of the published documents, not a
// source of truth: every run drops and rebuilds all tables, so the
// database always reflects exactly one pipeline run and rebuilding is
// idempotent.
package archive
