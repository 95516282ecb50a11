// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. It provides type-safe
// access to the database and logging settings needed by the data layer and
// the lightbnb command.
package config
