// Package badger provides a BadgerDB-backed implementation of the relay
// store ports.
//
// Records are stored as JSON under "<collection>:<id>" keys. Each value
// carries a position drawn from a per-collection sequence so lists come back
// in first-write order. An in-memory mode backs tests and throwaway sessions.
package badger
