// Package config loads environment-driven configuration structs.
//
// Configuration structs declare their sources via `env` tags (see
// github.com/caarlos0/env). A .env file in the working directory is loaded
// once, lazily, before the first parse; its absence is not an error.
//
// # Usage
//
//	type FlowConfig struct {
//		TTL time.Duration `env:"FLOW_SESSION_TTL" envDefault:"30m"`
//	}
//
//	var cfg FlowConfig
//	config.MustLoad(&cfg)
//
// # Error Handling
//
//   - ErrNilPointer    – Load was given a nil destination
//   - ErrParsingConfig – the environment could not be parsed into the struct
package config
