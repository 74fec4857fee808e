// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ChannelStore: Channel and direct-message thread persistence
//   - DocumentStore: Document persistence
//   - ActivityStore: Activity log persistence
//   - PageCatalog: The fixed catalogue of application destinations
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - DiagnosticsReporter: Receives failures swallowed by the search engine.
//     Without it, failures are only logged.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
