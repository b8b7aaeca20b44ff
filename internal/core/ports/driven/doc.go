// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and adapters implement them.
//
//   - Normaliser: Recovers raw text for one family of MIME types
//   - NormaliserRegistry: Selects the appropriate normaliser
//   - PostProcessor: One text rewriting stage (sanitise, filter, truncate)
//   - PostProcessorPipeline: Ordered chain of PostProcessors
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, normaliser or postprocessor package
package driven
