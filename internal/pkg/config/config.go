package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Scheduler SchedulerConfig
	Calendar  CalendarConfig
	Notify    NotifyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Los_Angeles"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-28800"` // -8*60*60
}

// SchedulerConfig covers the booking policy knobs that are not part of the
// meeting-type catalog itself.
type SchedulerConfig struct {
	// BaseURL is the public origin the capability URLs (admin review,
	// self-service cancellation) are built against.
	BaseURL string `envconfig:"BASE_URL" default:"https://meet.mike.game"`
	// TimeZone is the admin's IANA timezone; busy intervals and slot grids
	// are expressed in this zone.
	TimeZone string `envconfig:"TIME_ZONE" default:"America/Los_Angeles"`
}

type CalendarConfig struct {
	// CalendarID doubles as the admin's email address for notifications.
	CalendarID         string        `envconfig:"GOOGLE_CALENDAR_ID" default:""`
	ServiceAccountJSON string        `envconfig:"GOOGLE_SERVICE_ACCOUNT_JSON" default:""`
	Timeout            time.Duration `envconfig:"CALENDAR_TIMEOUT" default:"10s"`
}

type NotifyConfig struct {
	// EmailWorkerURL is the fire-and-forget email side-channel; empty disables
	// delivery entirely.
	EmailWorkerURL string        `envconfig:"EMAIL_WORKER_URL" default:""`
	Timeout        time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"10s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Los_Angeles",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -28800,
		},
		Scheduler: SchedulerConfig{
			BaseURL:  "https://scheduler.test",
			TimeZone: "America/Los_Angeles",
		},
	}
}
