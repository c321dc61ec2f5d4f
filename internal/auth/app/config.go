package app

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is loaded from PERMITD_-prefixed environment variables. The
// signing key and issuer have no defaults on purpose; the process
// refuses to start without them.
type Config struct {
	JWTKey           string `envconfig:"JWT_KEY" required:"true"`
	JWTIssuer        string `envconfig:"JWT_ISSUER" required:"true"`
	JWTExpiryMinutes int    `envconfig:"JWT_EXPIRY_MINUTES" default:"60"`

	DatabaseFile string `envconfig:"DATABASE_FILE" default:"permitd.db"`
	PepperFile   string `envconfig:"PEPPER_FILE" default:"pepper"`

	// Seed credentials for the initial administrator. The defaults are
	// development values; override both in any real deployment.
	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@example.com"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"Admin@123"`

	Env       string `envconfig:"ENV" default:"dev"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	Port                int           `envconfig:"PORT" default:"8080"`
	ShutdownGracePeriod time.Duration `envconfig:"SHUTDOWN_GRACE_PERIOD" default:"10s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("permitd", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
