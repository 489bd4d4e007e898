package services

import (
	"trackcycle/internal/config"
	"trackcycle/internal/repository/sqlite"
)

// NewServiceContainer wires all services over one repository.
func NewServiceContainer(repo sqlite.Repository, cfg *config.Config) *ServiceContainer {
	settings := NewSettingsService(repo)
	return &ServiceContainer{
		Tracker:   NewTrackerService(repo, cfg),
		Reporting: NewReportingService(repo, settings, cfg),
		Export:    NewExportService(repo, settings),
		Settings:  settings,
	}
}
