// Package snapshot persists the last-known category counts per playlist in
// SQLite and exposes helpers for reading them back on the next run.
//
// The Store manages the database connection, schema initialization, and the
// per-file upsert that makes every successful run overwrite the prior
// record. Reads fail soft: a missing or malformed record is reported as
// absent (with a warning log) rather than as an error, so a corrupt stats
// database can never abort a run.
//
// Treat this package as the single source of truth for snapshot semantics;
// schema changes bump the version in schema.go and users clear the database
// to adopt the new schema.
package snapshot
