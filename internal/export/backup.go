package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"trackcycle/internal/domain"
	"trackcycle/internal/errors"
)

// Backup is the full-dataset exchange format. All four collections
// travel together so an import can replace the dataset atomically.
type Backup struct {
	Entries   []domain.TimeEntry `json:"entries"`
	Projects  []domain.Project   `json:"projects"`
	Customers []domain.Customer  `json:"customers"`
	Settings  domain.Settings    `json:"settings"`
}

// WriteBackup writes the backup pretty-printed.
func WriteBackup(w io.Writer, backup Backup) error {
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal backup: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// BackupFilename is the conventional output name for a backup.
func BackupFilename(now time.Time) string {
	return fmt.Sprintf("TrackCycle_Backup_%s.json", now.Format("2006-01-02"))
}

// ParseBackup validates a backup payload in full before anything may be
// written. Missing collections default to empty; a malformed payload or
// an invalid record rejects the whole backup. Entries referencing
// unknown projects are retained, matching the grouped and CSV exports
// which tolerate unresolved references.
func ParseBackup(data []byte) (Backup, error) {
	var raw struct {
		Entries   []domain.TimeEntry `json:"entries"`
		Projects  []domain.Project   `json:"projects"`
		Customers []domain.Customer  `json:"customers"`
		Settings  *domain.Settings   `json:"settings"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return Backup{}, errors.NewMalformedImportError("payload is not valid JSON", err)
	}

	backup := Backup{
		Entries:   raw.Entries,
		Projects:  raw.Projects,
		Customers: raw.Customers,
	}
	if backup.Entries == nil {
		backup.Entries = []domain.TimeEntry{}
	}
	if backup.Projects == nil {
		backup.Projects = []domain.Project{}
	}
	if backup.Customers == nil {
		backup.Customers = []domain.Customer{}
	}
	if raw.Settings != nil {
		backup.Settings = *raw.Settings
	} else {
		backup.Settings = domain.DefaultSettings()
	}

	seen := make(map[string]bool)
	for i, entry := range backup.Entries {
		if !entry.IsValid() {
			return Backup{}, errors.NewMalformedImportError(fmt.Sprintf("entry %d is invalid", i), nil)
		}
		if seen[entry.ID] {
			return Backup{}, errors.NewMalformedImportError(fmt.Sprintf("duplicate entry id %s", entry.ID), nil)
		}
		seen[entry.ID] = true
	}
	for i, project := range backup.Projects {
		if !project.IsValid() {
			return Backup{}, errors.NewMalformedImportError(fmt.Sprintf("project %d is invalid", i), nil)
		}
	}
	for i, customer := range backup.Customers {
		if !customer.IsValid() {
			return Backup{}, errors.NewMalformedImportError(fmt.Sprintf("customer %d is invalid", i), nil)
		}
	}

	return backup, nil
}
