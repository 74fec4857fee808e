// Package domain defines the core business entities for Relay.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Channel: A conversation channel or direct-message thread
//   - Document: A file attached to a channel
//   - ActivityEvent: An entry in the yard activity log
//   - Page: A fixed application destination
//   - SearchResult: A single ranked hit produced by the search engine
//
// Field tables (fields.go) declare which attributes of each entity are
// searchable and how much each contributes to a match's score.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
