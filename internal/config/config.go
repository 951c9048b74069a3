// Package config holds the process-wide configuration. It is populated once
// in main from the environment and passed by reference into the components
// that need it; nothing reads the environment after startup.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// App is the full service configuration.
type App struct {
	Env      string `envconfig:"APP_ENV" default:"production"`
	HTTPPort string `envconfig:"APP_PORT" default:"8080"`

	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	RedisAddr   string `envconfig:"REDIS_ADDR" default:"localhost:6379"`

	// Tokens
	JWTSecret       string        `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenTTL  time.Duration `envconfig:"ACCESS_TOKEN_TTL" default:"1h"`
	RefreshTokenTTL time.Duration `envconfig:"REFRESH_TOKEN_TTL" default:"336h"`

	// Passwords. One uniform cost for every hashing site.
	BcryptCost int `envconfig:"BCRYPT_COST" default:"12"`

	// Email verification
	VerificationTTL time.Duration `envconfig:"VERIFICATION_TTL" default:"10m"`
	SMTPHost        string        `envconfig:"SMTP_HOST" default:"localhost"`
	SMTPPort        string        `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername    string        `envconfig:"SMTP_USERNAME"`
	SMTPPassword    string        `envconfig:"SMTP_PASSWORD"`
	MailFrom        string        `envconfig:"MAIL_FROM" default:"no-reply@shoply.dev"`

	// Profile image uploads
	UploadRoot    string `envconfig:"UPLOAD_ROOT" default:"public"`
	UploadMaxSize int64  `envconfig:"UPLOAD_MAX_SIZE" default:"5242880"`
}

// Load reads the configuration from the environment.
func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}

// Development reports whether the service runs with development defaults
// (human-readable logs, relaxed mail transport).
func (a App) Development() bool { return a.Env == "development" }
