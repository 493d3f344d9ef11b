// Package config loads typed configuration structs from the process
// environment.
//
// It combines github.com/joho/godotenv, which reads an optional .env file into
// the environment, with github.com/caarlos0/env/v11, which maps environment
// variables onto struct fields through `env` and `envDefault` tags.
//
// Each configuration type is parsed once and cached, so packages can call Load
// for the same struct type independently and observe the same values:
//
//	type RelayConfig struct {
//	    Recipient string `env:"COMPANY_EMAIL,required"`
//	    Env       string `env:"NODE_ENV" envDefault:"production"`
//	}
//
//	var cfg RelayConfig
//	config.MustLoad(&cfg)
//
// Secrets such as provider API keys must be declared `required` with no
// envDefault so a missing value stops the process at startup.
//
// # Error Handling
//
// Load wraps env parsing failures with ErrParsingConfig. MustLoad panics with
// the same error and is intended for main packages.
//
// Reset drops the cache and is meant for tests that exercise several
// environments for one struct type.
package config
