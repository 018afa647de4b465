// Package app wires the application together: it configures logging,
// registers the compiled classes, validates them against their manifests,
// loads extra manifest classes and runs the introspection flow.
package app
