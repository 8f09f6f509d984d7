package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database and cache
// connections, authentication, background workers and graceful shutdown behavior.
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
		// URL is a full connection string; when set it overrides the fields below
		URL string `env:"DATABASE_URL" yaml:"url"`
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
		DatabaseName string `env:"DATABASE_NAME" env-default:"shortener" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis contains the resolution cache connection configurations
	Redis struct {
		// URL is a redis:// connection string; when set it overrides Addr, Password and DB
		URL string `env:"REDIS_URL" yaml:"url"`
		// Addr is the host:port of the redis server
		Addr string `env:"REDIS_ADDR" env-default:"localhost:6379" yaml:"addr"`
		// Password for redis authentication
		Password string `env:"REDIS_PASSWORD" yaml:"password"`
		// DB is the logical database index
		DB int `env:"REDIS_DB" env-default:"0" yaml:"db"`
		// PoolSize is the maximum number of socket connections
		PoolSize int `env:"REDIS_POOL_SIZE" env-default:"20" yaml:"poolSize"`
		// MinIdleConns is the minimum number of idle connections kept open
		MinIdleConns int `env:"REDIS_MIN_IDLE_CONNS" env-default:"2" yaml:"minIdleConns"`
		// MaxIdleConns is the maximum number of idle connections
		MaxIdleConns int `env:"REDIS_MAX_IDLE_CONNS" env-default:"10" yaml:"maxIdleConns"`
		// DialTimeout bounds establishing new connections
		DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT" env-default:"5s" yaml:"dialTimeout"`
		// ReadTimeout bounds socket reads
		ReadTimeout time.Duration `env:"REDIS_READ_TIMEOUT" env-default:"3s" yaml:"readTimeout"`
		// WriteTimeout bounds socket writes
		WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" env-default:"3s" yaml:"writeTimeout"`
	} `yaml:"redis"`

	// JWT contains the token signing configurations
	JWT struct {
		// PrivateKey is the PEM encoded RSA key signing tokens issued by the login endpoint
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM encoded RSA key verifying bearer tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// TTL is the lifetime of tokens issued by the login endpoint
		TTL time.Duration `env:"JWT_TTL" env-default:"168h" yaml:"ttl"`
	} `yaml:"jwt"`

	// Site contains public facing settings of the shortener
	Site struct {
		// DefaultDomain is the host serving links that do not belong to a custom domain
		DefaultDomain string `env:"SITE_DEFAULT_DOMAIN" env-default:"localhost:8080" yaml:"defaultDomain"`
		// LinkLength is the length of generated link addresses
		LinkLength int `env:"SITE_LINK_LENGTH" env-default:"6" yaml:"linkLength"`
		// DisallowRegistration turns the signup endpoint off
		DisallowRegistration bool `env:"SITE_DISALLOW_REGISTRATION" env-default:"false" yaml:"disallowRegistration"`
		// VisitTimeout bounds recording a single visit in the background
		VisitTimeout time.Duration `env:"SITE_VISIT_TIMEOUT" env-default:"5s" yaml:"visitTimeout"`
		// MaxPendingVisits caps visits recorded concurrently; extra visits are dropped
		MaxPendingVisits int `env:"SITE_MAX_PENDING_VISITS" env-default:"1024" yaml:"maxPendingVisits"`
	} `yaml:"site"`

	// Worker contains the background job processing configurations
	Worker struct {
		// MaxWorkers is the number of concurrent invalidation jobs
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// MaxAttempts is how many times a failed invalidation is retried
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"10" yaml:"maxAttempts"`
		// RecheckDelay is when invalidated keys are deleted a second time; zero disables it
		RecheckDelay time.Duration `env:"WORKER_RECHECK_DELAY" env-default:"5s" yaml:"recheckDelay"`
	} `yaml:"worker"`

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
