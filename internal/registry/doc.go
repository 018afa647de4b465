// Package registry provides the central "glue" for the class system.
//
// The Registry maps class names (e.g., "TimeMachine") to the compiled
// property table of the class and a constructor for fresh instances. Classes
// arrive from two places: Go packages that implement Module, and HCL
// manifests that declare classes with no Go code behind them.
//
// During application startup, the registry is populated and then validated
// to ensure that every Go class shipping a manifest is perfectly in sync
// with it, preventing a wide class of runtime errors.
package registry
