// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The search engine is assembled from small pieces:
//
//   - NormalizeQuery trims and lower-cases raw input
//   - Source implementations turn one store into scored candidates
//   - isolate shields the engine from a misbehaving source
//   - Rank orders and truncates the merged candidates
//   - Filter reuses the matcher as an order-preserving predicate
//
// Services are pure Go with no CGO.
package services
