package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// authentication, uploads, mail delivery and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"carmate" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT contains the RS256 key pair and token lifetime for access tokens
	JWT struct {
		// PrivateKey is the PEM-encoded RSA private key used to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM-encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// AccessTokenTTL is how long issued access tokens stay valid
		AccessTokenTTL time.Duration `env:"JWT_ACCESS_TOKEN_TTL" env-default:"24h" yaml:"accessTokenTTL"`
	} `yaml:"jwt"`

	// Auth contains password hashing and reset-token settings
	Auth struct {
		// BcryptCost is the bcrypt work factor for password hashes
		BcryptCost int `env:"AUTH_BCRYPT_COST" env-default:"12" yaml:"bcryptCost"`
		// ResetTokenTTL is how long a password reset token stays valid
		ResetTokenTTL time.Duration `env:"AUTH_RESET_TOKEN_TTL" env-default:"1h" yaml:"resetTokenTTL"`
	} `yaml:"auth"`

	// Uploads configures where request photos are written and their limits
	Uploads struct {
		// Dir is the directory request photos are stored under
		Dir string `env:"UPLOADS_DIR" env-default:"./uploads" yaml:"dir"`
		// MaxFileBytes caps the size of a single uploaded photo
		MaxFileBytes int64 `env:"UPLOADS_MAX_FILE_BYTES" env-default:"10485760" yaml:"maxFileBytes"`
		// MaxFiles caps the number of photos per upload call
		MaxFiles int `env:"UPLOADS_MAX_FILES" env-default:"10" yaml:"maxFiles"`
	} `yaml:"uploads"`

	// Mailer configures the outbound mail provider used by the workers
	Mailer struct {
		// BaseURL is the mail provider's API endpoint
		BaseURL string `env:"MAILER_BASE_URL" env-default:"https://api.mailprovider.example/v1" yaml:"baseURL"`
		// APIKey authenticates against the mail provider
		APIKey string `env:"MAILER_API_KEY" yaml:"apiKey"`
		// From is the sender address for all platform mail
		From string `env:"MAILER_FROM" env-default:"no-reply@carmate.app" yaml:"from"`
		// Timeout bounds a single delivery call
		Timeout time.Duration `env:"MAILER_TIMEOUT" env-default:"15s" yaml:"timeout"`
	} `yaml:"mailer"`

	// Notify configures the background notification jobs
	Notify struct {
		// MaxAttempts is the maximum number of attempts per notification job
		MaxAttempts int `env:"NOTIFY_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// MaxWorkers caps concurrent notification jobs
		MaxWorkers int `env:"NOTIFY_MAX_WORKERS" env-default:"20" yaml:"maxWorkers"`
		// DedupePeriod is the lookback window for job uniqueness
		DedupePeriod time.Duration `env:"NOTIFY_DEDUPE_PERIOD" env-default:"24h" yaml:"dedupePeriod"`
	} `yaml:"notify"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
