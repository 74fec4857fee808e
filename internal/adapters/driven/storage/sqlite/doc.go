// Package sqlite provides a SQLite-backed implementation of the relay store ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements every record store
// through a single database connection:
//
//   - ChannelStore: channels and direct-message threads
//   - DocumentStore: channel documents
//   - ActivityStore: the activity log
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// Applied versions are recorded in schema_migrations.
//
// # Ordering
//
// Every table carries an autoincrement seq column. Lists are returned in seq
// order, so records come back in the order they were first written; updates
// keep their position.
//
// # Data Location
//
// By default, the database is stored at ~/.relay/data/relay.db
package sqlite
