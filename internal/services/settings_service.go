package services

import (
	"context"
	"encoding/json"
	"time"

	"trackcycle/internal/domain"
	"trackcycle/internal/errors"
	"trackcycle/internal/repository/sqlite"
	"trackcycle/internal/validation"
)

// settingsServiceImpl implements the SettingsService interface
type settingsServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	nameValidator *validation.NameValidator
}

// NewSettingsService creates a new SettingsService instance
func NewSettingsService(repo sqlite.Repository) SettingsService {
	return &settingsServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		nameValidator: validation.NewNameValidator(),
	}
}

// GetSettings loads the stored settings, falling back to the defaults
// before anything has been saved.
func (s *settingsServiceImpl) GetSettings(ctx context.Context) (domain.Settings, error) {
	data, err := s.repo.GetSettings(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	if data == "" {
		return domain.DefaultSettings(), nil
	}

	var settings domain.Settings
	if err := json.Unmarshal([]byte(data), &settings); err != nil {
		return domain.Settings{}, errors.NewValidationError("stored settings are corrupt", err)
	}
	return settings, nil
}

// SaveSettings persists the settings value as a JSON document.
func (s *settingsServiceImpl) SaveSettings(ctx context.Context, settings domain.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return errors.NewValidationError("settings cannot be serialized", err)
	}
	return s.repo.SaveSettings(ctx, string(data))
}

// CreateProject creates a project after validating its name. Entries
// reference projects by id only, so later renames propagate everywhere.
func (s *settingsServiceImpl) CreateProject(ctx context.Context, name, customerID string) (*domain.Project, error) {
	cleaned, err := s.nameValidator.GetValidName("project_name", name)
	if err != nil {
		return nil, errors.NewValidationError("invalid project name", err)
	}

	project := domain.NewProject(cleaned)
	project.CustomerID = customerID

	dbProject := s.mapper.Project.ToDatabase(project)
	if err := s.repo.CreateProject(ctx, &dbProject); err != nil {
		return nil, err
	}
	return &project, nil
}

// GetProject retrieves a project by ID
func (s *settingsServiceImpl) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	dbProject, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	project := s.mapper.Project.FromDatabase(*dbProject)
	return &project, nil
}

// ListProjects returns all projects
func (s *settingsServiceImpl) ListProjects(ctx context.Context) ([]domain.Project, error) {
	dbProjects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.Project.FromDatabaseSlice(dbProjects), nil
}

// UpdateProject updates a project after validating its name
func (s *settingsServiceImpl) UpdateProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	cleaned, err := s.nameValidator.GetValidName("project_name", project.Name)
	if err != nil {
		return nil, errors.NewValidationError("invalid project name", err)
	}
	project.Name = cleaned

	dbProject := s.mapper.Project.ToDatabase(project)
	if err := s.repo.UpdateProject(ctx, &dbProject); err != nil {
		return nil, err
	}
	return &project, nil
}

// EndProject sets a project's end date; starts against it fail with
// ProjectEnded from then on.
func (s *settingsServiceImpl) EndProject(ctx context.Context, id string, endDate time.Time) (*domain.Project, error) {
	project, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	project.EndDate = &endDate
	return s.UpdateProject(ctx, *project)
}

// DeleteProject deletes a project. Entries keep their projectId and
// render it unresolved afterwards.
func (s *settingsServiceImpl) DeleteProject(ctx context.Context, id string) error {
	return s.repo.DeleteProject(ctx, id)
}

// CreateCustomer creates a customer after validating its name
func (s *settingsServiceImpl) CreateCustomer(ctx context.Context, name string) (*domain.Customer, error) {
	cleaned, err := s.nameValidator.GetValidName("customer_name", name)
	if err != nil {
		return nil, errors.NewValidationError("invalid customer name", err)
	}

	customer := domain.NewCustomer(cleaned)
	dbCustomer := s.mapper.Customer.ToDatabase(customer)
	if err := s.repo.CreateCustomer(ctx, &dbCustomer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *settingsServiceImpl) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	dbCustomer, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	customer := s.mapper.Customer.FromDatabase(*dbCustomer)
	return &customer, nil
}

// ListCustomers returns all customers
func (s *settingsServiceImpl) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	dbCustomers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.Customer.FromDatabaseSlice(dbCustomers), nil
}

// UpdateCustomer updates a customer after validating its name
func (s *settingsServiceImpl) UpdateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	cleaned, err := s.nameValidator.GetValidName("customer_name", customer.Name)
	if err != nil {
		return nil, errors.NewValidationError("invalid customer name", err)
	}
	customer.Name = cleaned

	dbCustomer := s.mapper.Customer.ToDatabase(customer)
	if err := s.repo.UpdateCustomer(ctx, &dbCustomer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// DeleteCustomer deletes a customer
func (s *settingsServiceImpl) DeleteCustomer(ctx context.Context, id string) error {
	return s.repo.DeleteCustomer(ctx, id)
}
