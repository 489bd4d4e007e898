package domain

import (
	"encoding/json"

	"trackcycle/internal/repository/sqlite"
)

// TimeEntryMapper handles conversion between domain and database TimeEntry models.
type TimeEntryMapper struct{}

// NewTimeEntryMapper creates a new TimeEntryMapper instance.
func NewTimeEntryMapper() *TimeEntryMapper {
	return &TimeEntryMapper{}
}

// ToDatabase converts a domain TimeEntry to a database TimeEntry.
func (m *TimeEntryMapper) ToDatabase(entry TimeEntry) sqlite.TimeEntry {
	return sqlite.TimeEntry{
		ID:          entry.ID,
		ProjectID:   entry.ProjectID,
		Description: entry.Description,
		ActivityID:  entry.ActivityID,
		StartTime:   entry.Start,
		EndTime:     entry.End,
	}
}

// FromDatabase converts a database TimeEntry to a domain TimeEntry.
func (m *TimeEntryMapper) FromDatabase(dbEntry sqlite.TimeEntry) TimeEntry {
	return TimeEntry{
		ID:          dbEntry.ID,
		ProjectID:   dbEntry.ProjectID,
		Description: dbEntry.Description,
		ActivityID:  dbEntry.ActivityID,
		Start:       dbEntry.StartTime,
		End:         dbEntry.EndTime,
	}
}

// FromDatabaseSlice converts a slice of database TimeEntries to domain TimeEntries.
func (m *TimeEntryMapper) FromDatabaseSlice(dbEntries []*sqlite.TimeEntry) []TimeEntry {
	entries := make([]TimeEntry, len(dbEntries))
	for i, dbEntry := range dbEntries {
		entries[i] = m.FromDatabase(*dbEntry)
	}
	return entries
}

// ProjectMapper handles conversion between domain and database Project models.
// Activities travel as a JSON column.
type ProjectMapper struct{}

// NewProjectMapper creates a new ProjectMapper instance.
func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

// ToDatabase converts a domain Project to a database Project.
func (m *ProjectMapper) ToDatabase(project Project) sqlite.Project {
	activities := "[]"
	if len(project.Activities) > 0 {
		if data, err := json.Marshal(project.Activities); err == nil {
			activities = string(data)
		}
	}
	return sqlite.Project{
		ID:         project.ID,
		Name:       project.Name,
		CustomerID: project.CustomerID,
		Activities: activities,
		EndDate:    project.EndDate,
		MaxHours:   project.MaxHours,
	}
}

// FromDatabase converts a database Project to a domain Project.
func (m *ProjectMapper) FromDatabase(dbProject sqlite.Project) Project {
	var activities []Activity
	if dbProject.Activities != "" {
		// Corrupt activity JSON degrades to an empty list rather than
		// failing the whole load.
		_ = json.Unmarshal([]byte(dbProject.Activities), &activities)
	}
	return Project{
		ID:         dbProject.ID,
		Name:       dbProject.Name,
		CustomerID: dbProject.CustomerID,
		Activities: activities,
		EndDate:    dbProject.EndDate,
		MaxHours:   dbProject.MaxHours,
	}
}

// FromDatabaseSlice converts a slice of database Projects to domain Projects.
func (m *ProjectMapper) FromDatabaseSlice(dbProjects []*sqlite.Project) []Project {
	projects := make([]Project, len(dbProjects))
	for i, dbProject := range dbProjects {
		projects[i] = m.FromDatabase(*dbProject)
	}
	return projects
}

// CustomerMapper handles conversion between domain and database Customer models.
type CustomerMapper struct{}

// NewCustomerMapper creates a new CustomerMapper instance.
func NewCustomerMapper() *CustomerMapper {
	return &CustomerMapper{}
}

// ToDatabase converts a domain Customer to a database Customer.
func (m *CustomerMapper) ToDatabase(customer Customer) sqlite.Customer {
	return sqlite.Customer{
		ID:   customer.ID,
		Name: customer.Name,
	}
}

// FromDatabase converts a database Customer to a domain Customer.
func (m *CustomerMapper) FromDatabase(dbCustomer sqlite.Customer) Customer {
	return Customer{
		ID:   dbCustomer.ID,
		Name: dbCustomer.Name,
	}
}

// FromDatabaseSlice converts a slice of database Customers to domain Customers.
func (m *CustomerMapper) FromDatabaseSlice(dbCustomers []*sqlite.Customer) []Customer {
	customers := make([]Customer, len(dbCustomers))
	for i, dbCustomer := range dbCustomers {
		customers[i] = m.FromDatabase(*dbCustomer)
	}
	return customers
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	TimeEntry *TimeEntryMapper
	Project   *ProjectMapper
	Customer  *CustomerMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		TimeEntry: NewTimeEntryMapper(),
		Project:   NewProjectMapper(),
		Customer:  NewCustomerMapper(),
	}
}
