// Package config defines the appliance settings and provides helpers to
// load, validate and save them in YAML format.
//
// Validate fills in defaults for every zero value, so a sparse file (or no
// file at all, see Default) yields a runnable configuration.
package config
