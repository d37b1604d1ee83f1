// Package version exposes build metadata of the appliance.
//
// Version, Commit and BuildTime are injected with -ldflags at build time.
package version
