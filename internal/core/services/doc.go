// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO and hold no mutable state beyond
// their registries, so they are safe for concurrent use.
package services
