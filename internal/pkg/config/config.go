package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (visibility horizons, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Booking BookingConfig
	Modules ModulesConfig
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
	AllowOrigins     []string `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	AllowCredentials bool     `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// BookingConfig carries the platform options consumed by the pricing
// engine and the availability window resolver. They are passed into the
// domain services at construction so pricing stays reproducible in tests.
type BookingConfig struct {
	// Group slots by calendar day before resolving rate cards.
	ExtendedPricesInSameDay bool `envconfig:"EXTENDED_PRICES_IN_SAME_DAY" default:"false"`
	// Calendar visibility horizon, in months, for yearly subscribers.
	VisibilityYearlyMonths int `envconfig:"VISIBILITY_YEARLY" default:"12"`
	// Calendar visibility horizon, in months, for everyone else.
	VisibilityOthersMonths int `envconfig:"VISIBILITY_OTHERS" default:"3"`
	// Minimum delay, in minutes, before a member can book a slot.
	ReservationDeadlineMinutes int `envconfig:"RESERVATION_DEADLINE" default:"0"`
}

// ModulesConfig gates each resource kind independently.
type ModulesConfig struct {
	Machines         bool `envconfig:"MACHINES_MODULE" default:"true"`
	Spaces           bool `envconfig:"SPACES_MODULE" default:"true"`
	Trainings        bool `envconfig:"TRAININGS_MODULE" default:"true"`
	EventsInCalendar bool `envconfig:"EVENTS_IN_CALENDAR" default:"false"`
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
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level: "error",
		},
		Booking: BookingConfig{
			VisibilityYearlyMonths:     12,
			VisibilityOthersMonths:     1,
			ReservationDeadlineMinutes: 0,
		},
		Modules: ModulesConfig{
			Machines:  true,
			Spaces:    true,
			Trainings: true,
		},
	}
}
