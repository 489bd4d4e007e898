package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"trackcycle/internal/api"
	"trackcycle/internal/config"
	"trackcycle/internal/repository/sqlite"
)

// App bundles the dependencies every command handler needs.
type App struct {
	businessAPI  api.BusinessAPI
	config       *config.Config
	out          io.Writer
	errorHandler *ErrorHandler
	clock        func() time.Time
}

// GetDatabasePath returns the path to the SQLite database file,
// creating the data directory when missing. TC_DB overrides everything.
func GetDatabasePath() (string, error) {
	if dbPath := os.Getenv("TC_DB"); dbPath != "" {
		return dbPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	dataDir := filepath.Join(homeDir, ".trackcycle")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return filepath.Join(dataDir, "trackcycle.db"), nil
}

// NewApp creates a CLI application over an injected BusinessAPI.
func NewApp(businessAPI api.BusinessAPI, cfg *config.Config) *App {
	return &App{
		businessAPI:  businessAPI,
		config:       cfg,
		out:          color.Output,
		errorHandler: NewErrorHandler(),
		clock:        time.Now,
	}
}

// NewAppWithDefaultRepository wires the production stack: SQLite
// repository at the default path, service container, business API.
func NewAppWithDefaultRepository() (*App, error) {
	dbPath, err := GetDatabasePath()
	if err != nil {
		return nil, fmt.Errorf("failed to get database path: %w", err)
	}

	repo, err := sqlite.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	cfg := config.NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return NewApp(api.NewBusinessAPI(repo, cfg), cfg), nil
}

// WithOutput redirects command output, mainly for tests.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithClock injects a deterministic clock, mainly for tests.
func (a *App) WithClock(clock func() time.Time) *App {
	a.clock = clock
	return a
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...interface{}) {
	fmt.Fprintln(a.out, args...)
}
