package services

import (
	"context"
	"time"

	"trackcycle/internal/config"
	"trackcycle/internal/domain"
	"trackcycle/internal/errors"
	"trackcycle/internal/gaps"
	"trackcycle/internal/logging"
	"trackcycle/internal/repository/sqlite"
	"trackcycle/internal/validation"
)

// undoRecord retains a deleted entry until its expiry passes.
type undoRecord struct {
	entry   domain.TimeEntry
	expires time.Time
}

// trackerServiceImpl implements the TrackerService interface
type trackerServiceImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.TimeEntryValidator
	cfg       *config.Config
	clock     func() time.Time

	undo *undoRecord
}

// NewTrackerService creates a new TrackerService instance
func NewTrackerService(repo sqlite.Repository, cfg *config.Config) TrackerService {
	return NewTrackerServiceWithClock(repo, cfg, time.Now)
}

// NewTrackerServiceWithClock creates a TrackerService with an explicit
// clock, used by tests to control the undo window.
func NewTrackerServiceWithClock(repo sqlite.Repository, cfg *config.Config, clock func() time.Time) TrackerService {
	return &trackerServiceImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewTimeEntryValidator(),
		cfg:       cfg,
		clock:     clock,
	}
}

// running returns the single open entry, or nil when idle.
func (t *trackerServiceImpl) running(ctx context.Context) (*domain.TimeEntry, error) {
	dbEntries, err := t.repo.SearchTimeEntries(ctx, sqlite.SearchOptions{RunningOnly: true})
	if err != nil {
		return nil, err
	}
	if len(dbEntries) == 0 {
		return nil, nil
	}
	entry := t.mapper.TimeEntry.FromDatabase(*dbEntries[0])
	return &entry, nil
}

// Start opens a new entry and transitions to running. It fails with
// InvalidState when a timer is already running, NotFound for an unknown
// project and ProjectEnded when the project's end date has passed. The
// pause sentinel is not startable; pauses only come from gap conversion.
func (t *trackerServiceImpl) Start(ctx context.Context, projectID, description, activityID string, startTime *time.Time) (*domain.TimeEntry, error) {
	now := t.clock()
	start := now
	if startTime != nil {
		start = *startTime
	}

	if err := t.validator.ValidateForStart(projectID, description, start); err != nil {
		return nil, errors.NewValidationError("invalid timer start", err)
	}
	if projectID == domain.PauseProjectID {
		return nil, errors.NewInvalidStateError("start timer", "pauses cannot be started directly")
	}

	current, err := t.running(ctx)
	if err != nil {
		return nil, err
	}
	if current != nil {
		return nil, errors.NewInvalidStateError("start timer", "a timer is already running")
	}

	dbProject, err := t.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	project := t.mapper.Project.FromDatabase(*dbProject)
	if project.Ended(now) {
		return nil, errors.NewProjectEndedError(project.ID, *project.EndDate)
	}

	entry := domain.NewTimeEntry(projectID, description, activityID, start)
	dbEntry := t.mapper.TimeEntry.ToDatabase(entry)
	if err := t.repo.CreateTimeEntry(ctx, &dbEntry); err != nil {
		return nil, err
	}

	logging.Debugf("started timer %s on project %s\n", entry.ID, projectID)
	return &entry, nil
}

// Stop closes the running entry. InvalidState when idle.
func (t *trackerServiceImpl) Stop(ctx context.Context) (*domain.TimeEntry, error) {
	current, err := t.running(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errors.NewInvalidStateError("stop timer", "no timer is running")
	}

	end := t.clock()
	if !end.After(current.Start) {
		return nil, errors.NewInvalidIntervalError(current.Start, end)
	}

	stopped := current.Stop(end)
	dbEntry := t.mapper.TimeEntry.ToDatabase(stopped)
	if err := t.repo.UpdateTimeEntry(ctx, &dbEntry); err != nil {
		return nil, err
	}

	logging.Debugf("stopped timer %s after %.2fh\n", stopped.ID, stopped.Duration())
	return &stopped, nil
}

// Current returns the running entry without mutating anything; nil when
// idle. Elapsed time is the caller's polled read via Entry.Elapsed.
func (t *trackerServiceImpl) Current(ctx context.Context) (*domain.TimeEntry, error) {
	return t.running(ctx)
}

// EditEntry applies an edit to a stored entry, re-validating the
// resulting interval.
func (t *trackerServiceImpl) EditEntry(ctx context.Context, id string, edit EntryEdit) (*domain.TimeEntry, error) {
	dbEntry, err := t.repo.GetTimeEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	entry := t.mapper.TimeEntry.FromDatabase(*dbEntry)

	applyEdit(&entry, edit)

	if err := t.validator.ValidateInterval(entry.Start, entry.End); err != nil {
		end := entry.Start
		if entry.End != nil {
			end = *entry.End
		}
		return nil, errors.NewInvalidIntervalError(entry.Start, end)
	}

	updated := t.mapper.TimeEntry.ToDatabase(entry)
	if err := t.repo.UpdateTimeEntry(ctx, &updated); err != nil {
		return nil, err
	}
	return &entry, nil
}

// EditActive edits the running entry; only valid while running, and the
// start must stay in the past.
func (t *trackerServiceImpl) EditActive(ctx context.Context, edit EntryEdit) (*domain.TimeEntry, error) {
	current, err := t.running(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errors.NewInvalidStateError("edit active entry", "no timer is running")
	}
	if edit.End != nil {
		return nil, errors.NewInvalidStateError("edit active entry", "use stop to close the running entry")
	}

	entry := *current
	applyEdit(&entry, edit)
	if !entry.Start.Before(t.clock()) {
		return nil, errors.NewInvalidIntervalError(entry.Start, t.clock())
	}

	updated := t.mapper.TimeEntry.ToDatabase(entry)
	if err := t.repo.UpdateTimeEntry(ctx, &updated); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ConvertGapToPause fills a gap with a closed pause entry. Allowed in
// any timer state.
func (t *trackerServiceImpl) ConvertGapToPause(ctx context.Context, gap gaps.Gap) (*domain.TimeEntry, error) {
	if !gap.To.After(gap.From) {
		return nil, errors.NewInvalidIntervalError(gap.From, gap.To)
	}

	pause := gaps.PauseFromGap(gap)
	dbEntry := t.mapper.TimeEntry.ToDatabase(pause)
	if err := t.repo.CreateTimeEntry(ctx, &dbEntry); err != nil {
		return nil, err
	}
	return &pause, nil
}

// Delete removes an entry immediately but retains it in the undo buffer
// until the configured window elapses.
func (t *trackerServiceImpl) Delete(ctx context.Context, id string) error {
	dbEntry, err := t.repo.GetTimeEntry(ctx, id)
	if err != nil {
		return err
	}
	entry := t.mapper.TimeEntry.FromDatabase(*dbEntry)

	if err := t.repo.DeleteTimeEntry(ctx, id); err != nil {
		return err
	}

	t.undo = &undoRecord{
		entry:   entry,
		expires: t.clock().Add(t.cfg.Tracking.UndoWindow),
	}
	return nil
}

// UndoDelete restores the most recently deleted entry while the undo
// window is open.
func (t *trackerServiceImpl) UndoDelete(ctx context.Context) (*domain.TimeEntry, error) {
	if t.undo == nil || t.clock().After(t.undo.expires) {
		t.undo = nil
		return nil, errors.NewNothingToUndoError()
	}

	entry := t.undo.entry
	dbEntry := t.mapper.TimeEntry.ToDatabase(entry)
	if err := t.repo.CreateTimeEntry(ctx, &dbEntry); err != nil {
		return nil, err
	}

	t.undo = nil
	return &entry, nil
}

func applyEdit(entry *domain.TimeEntry, edit EntryEdit) {
	if edit.ProjectID != nil {
		entry.ProjectID = *edit.ProjectID
	}
	if edit.Description != nil {
		entry.Description = *edit.Description
	}
	if edit.ActivityID != nil {
		entry.ActivityID = *edit.ActivityID
	}
	if edit.Start != nil {
		entry.Start = *edit.Start
	}
	if edit.End != nil {
		entry.End = edit.End
	}
}
