// Package config implements the run configuration and the directive parser
// of enumfrom.
package config

// Global constants for the application.
const (
	Application = "enumfrom"
	Description = "Derive string parsing and wrap/unwrap conversions for Go enum interfaces"
	WebSite     = "https://github.com/origadmin/enumfrom"
	UI          = "enumfrom"
)

// Defaults of the run configuration.
const (
	DefaultFile   = ".enumfrom.yaml"
	DefaultOutput = "enumfrom_gen.go"
	// BuildTag excludes previously generated files while loading packages.
	BuildTag = "enumfrom"
)
