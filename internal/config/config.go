package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the trackcycle application
type Config struct {
	Database    DatabaseConfig
	Tracking    TrackingConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TC_DB_DIR"`
	Filename       string        `env:"TC_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TC_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TC_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TC_DB_DIR_PERMISSIONS"`
}

// TrackingConfig holds the thresholds the reconciliation engine works with
type TrackingConfig struct {
	MinGapMinutes      int           `env:"TC_TRACKING_MIN_GAP_MINUTES"`
	FullDayHours       float64       `env:"TC_TRACKING_FULL_DAY_HOURS"`
	UndoWindow         time.Duration `env:"TC_TRACKING_UNDO_WINDOW"`
	SuggestionMinCount int           `env:"TC_TRACKING_SUGGESTION_MIN_COUNT"`
	FavoriteLimit      int           `env:"TC_TRACKING_FAVORITE_LIMIT"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat string `env:"TC_DISPLAY_DATE_FORMAT"`
	TimeFormat string `env:"TC_DISPLAY_TIME_FORMAT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TC_APP_TIMEOUT"`
	Verbose bool          `env:"TC_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".trackcycle")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "trackcycle.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Tracking: TrackingConfig{
			MinGapMinutes:      15,
			FullDayHours:       8,
			UndoWindow:         4 * time.Second,
			SuggestionMinCount: 2,
			FavoriteLimit:      8,
		},
		Display: DisplayConfig{
			DateFormat: "02.01.2006",
			TimeFormat: "15:04",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("TC_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TC_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TC_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("TC_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if perms := os.Getenv("TC_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Tracking configuration
	if minGap := os.Getenv("TC_TRACKING_MIN_GAP_MINUTES"); minGap != "" {
		if n, err := strconv.Atoi(minGap); err == nil {
			c.Tracking.MinGapMinutes = n
		}
	}
	if fullDay := os.Getenv("TC_TRACKING_FULL_DAY_HOURS"); fullDay != "" {
		if f, err := strconv.ParseFloat(fullDay, 64); err == nil {
			c.Tracking.FullDayHours = f
		}
	}
	if window := os.Getenv("TC_TRACKING_UNDO_WINDOW"); window != "" {
		if d, err := time.ParseDuration(window); err == nil {
			c.Tracking.UndoWindow = d
		}
	}
	if minCount := os.Getenv("TC_TRACKING_SUGGESTION_MIN_COUNT"); minCount != "" {
		if n, err := strconv.Atoi(minCount); err == nil {
			c.Tracking.SuggestionMinCount = n
		}
	}
	if limit := os.Getenv("TC_TRACKING_FAVORITE_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			c.Tracking.FavoriteLimit = n
		}
	}

	// Display configuration
	if format := os.Getenv("TC_DISPLAY_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}
	if format := os.Getenv("TC_DISPLAY_TIME_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}

	// Application configuration
	if timeout := os.Getenv("TC_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TC_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Tracking.MinGapMinutes <= 0 {
		return &ConfigError{Field: "tracking.min_gap_minutes", Message: "minimum gap threshold must be positive"}
	}
	if c.Tracking.FullDayHours <= 0 {
		return &ConfigError{Field: "tracking.full_day_hours", Message: "full day threshold must be positive"}
	}
	if c.Tracking.UndoWindow <= 0 {
		return &ConfigError{Field: "tracking.undo_window", Message: "undo window must be positive"}
	}
	if c.Tracking.SuggestionMinCount < 1 {
		return &ConfigError{Field: "tracking.suggestion_min_count", Message: "suggestion minimum count must be at least 1"}
	}
	if c.Tracking.FavoriteLimit < 1 {
		return &ConfigError{Field: "tracking.favorite_limit", Message: "favorite limit must be at least 1"}
	}

	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}
	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
