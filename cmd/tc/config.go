package main

import (
	"fmt"
	"os"

	"trackcycle/internal/cli"
	"trackcycle/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// GetEnvironment reads TC_ENV, defaulting to production.
func GetEnvironment() Environment {
	switch os.Getenv("TC_ENV") {
	case string(Development):
		return Development
	case string(Testing):
		return Testing
	default:
		return Production
	}
}

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env Environment
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment) *RepositoryFactory {
	return &RepositoryFactory{env: env}
}

// CreateRepository creates a repository instance based on the current environment
func (rf *RepositoryFactory) CreateRepository() (sqlite.Repository, error) {
	switch rf.env {
	case Development:
		// Local database file in the working directory
		repo, err := sqlite.New("trackcycle.db")
		if err != nil {
			return nil, fmt.Errorf("failed to initialize development database: %w", err)
		}
		return repo, nil
	case Testing:
		repo, err := sqlite.New(":memory:")
		if err != nil {
			return nil, fmt.Errorf("failed to initialize testing database: %w", err)
		}
		return repo, nil
	default:
		dbPath, err := cli.GetDatabasePath()
		if err != nil {
			return nil, fmt.Errorf("failed to get database path: %w", err)
		}
		repo, err := sqlite.New(dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	}
}
