package appconf

import "time"

// Environment is the operating environment of the Application.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// Config holds all the configuration settings for our Application.
type Config struct {
	Port      int
	Env       Environment
	ApiKeys   []string
	RateLimit int // requests per second per API key
	DBPath    string
	SeedFile  string

	// StoreAPIURL is the base URL of the store-record service. When empty the
	// server talks to its own /api/stores endpoint.
	StoreAPIURL string
	StoreAPIKey string

	PVWattsURL         string
	PVWattsAPIKey      string
	PVWattsRatePerHour int

	HTTPClientTimeout time.Duration
}

// EnvFlagToEnvironment maps the -env flag value onto an Environment.
// Unknown values fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch env {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Production:
		return "production"
	case Test:
		return "test"
	default:
		return "development"
	}
}
