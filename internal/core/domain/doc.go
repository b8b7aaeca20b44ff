// Package domain defines the core entities for docsift.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawDocument: Uploaded bytes plus the declared MIME type
//   - RecoveryAttempt: The output of one recovery strategy
//   - Extraction: The outcome of one pipeline invocation
//   - ExtractionSettings: Byte windows and character budgets
//
// All entities are transient values. Nothing here is cached or shared
// between pipeline invocations.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
