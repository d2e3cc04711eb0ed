// Package config holds the sqlscan runtime configuration and its loader.
package config

// Config is the runtime configuration. Values layer in precedence order:
// built-in defaults, then a sqlscan.yaml file, then SQLSCAN_* environment
// variables, then command-line flags.
type Config struct {
	// Dialect names the tokenizer profile to use.
	Dialect string `koanf:"dialect"`

	// Terminator is the initial statement terminator.
	Terminator string `koanf:"terminator"`

	// Verbose enables debug-level logging.
	Verbose bool `koanf:"verbose"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Dialect:    "db2luw",
		Terminator: ";",
	}
}
