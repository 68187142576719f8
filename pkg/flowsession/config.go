package flowsession

import "time"

// DefaultKey is the well-known storage key holding the flow record.
const DefaultKey = "quickwork.preauth.email"

// Config holds flow session configuration
type Config struct {
	// Key is the storage key holding the flow record
	Key string `env:"FLOW_SESSION_KEY" envDefault:"quickwork.preauth.email"`

	// TTL is the age beyond which a record is treated as expired
	TTL time.Duration `env:"FLOW_SESSION_TTL" envDefault:"30m"`
}

// DefaultConfig returns default flow session configuration
func DefaultConfig() Config {
	return Config{
		Key: DefaultKey,
		TTL: 30 * time.Minute,
	}
}
