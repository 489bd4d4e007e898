package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/gosuri/uitable"

	"trackcycle/internal/errors"
)

// ProjectsCommand manages the project catalog.
type ProjectsCommand struct {
	app *App

	// Customer optionally links a new project to a customer.
	Customer string
}

// NewProjectsCommand creates a new projects command handler
func NewProjectsCommand(app *App) *ProjectsCommand {
	return &ProjectsCommand{app: app}
}

// List prints all projects.
func (c *ProjectsCommand) List(ctx context.Context, args []string) error {
	projects, err := c.app.businessAPI.ListProjects(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("list projects", err)
	}

	if len(projects) == 0 {
		c.app.println("No projects yet, run 'tc projects add <name>'")
		return nil
	}

	customers, err := c.app.businessAPI.ListCustomers(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("list projects", err)
	}
	customerNames := make(map[string]string, len(customers))
	for _, cu := range customers {
		customerNames[cu.ID] = cu.Name
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(heading("ID"), heading("Name"), heading("Customer"), heading("Status"))
	now := c.app.clock()
	for _, p := range projects {
		status := good("active")
		if p.Ended(now) {
			status = dim("ended " + p.EndDate.Format(dateArgFormat))
		}
		tbl.AddRow(dim(shortID(p.ID)), p.Name, customerNames[p.CustomerID], status)
	}
	fmt.Fprintln(c.app.out, tbl)
	return nil
}

// Add creates a project, optionally linked to a customer.
func (c *ProjectsCommand) Add(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewValidationError("usage: tc projects add <name> [--customer <ref>]", nil)
	}
	name := strings.Join(args, " ")

	customerID := ""
	if c.Customer != "" {
		customers, err := c.app.businessAPI.ListCustomers(ctx)
		if err != nil {
			return c.app.errorHandler.Handle("add project", err)
		}
		for _, cu := range customers {
			if cu.ID == c.Customer || strings.EqualFold(cu.Name, c.Customer) {
				customerID = cu.ID
				break
			}
		}
		if customerID == "" {
			return c.app.errorHandler.Handle("add project", errors.NewNotFoundError("customer", c.Customer))
		}
	}

	project, err := c.app.businessAPI.CreateProject(ctx, name, customerID)
	if err != nil {
		return c.app.errorHandler.Handle("add project", err)
	}
	c.app.printf("Created project %s (%s)\n", accent(project.Name), shortID(project.ID))
	return nil
}

// End closes a project as of a date, today when omitted.
func (c *ProjectsCommand) End(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewValidationError("usage: tc projects end <project> [date]", nil)
	}

	project, err := c.app.resolveProject(ctx, args[0])
	if err != nil {
		return c.app.errorHandler.Handle("end project", err)
	}

	dateArg := ""
	if len(args) > 1 {
		dateArg = args[1]
	}
	endDate, err := parseDayArg(dateArg, c.app.clock())
	if err != nil {
		return c.app.errorHandler.Handle("end project", err)
	}

	ended, err := c.app.businessAPI.EndProject(ctx, project.ID, endDate)
	if err != nil {
		return c.app.errorHandler.Handle("end project", err)
	}
	c.app.printf("Project %s ended as of %s\n", ended.Name, ended.EndDate.Format(dateArgFormat))
	return nil
}

// Delete removes a project; its entries keep their project id.
func (c *ProjectsCommand) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewValidationError("usage: tc projects delete <project>", nil)
	}

	project, err := c.app.resolveProject(ctx, args[0])
	if err != nil {
		return c.app.errorHandler.Handle("delete project", err)
	}
	if err := c.app.businessAPI.DeleteProject(ctx, project.ID); err != nil {
		return c.app.errorHandler.Handle("delete project", err)
	}
	c.app.printf("Deleted project %s, its entries are kept\n", project.Name)
	return nil
}

// CustomersCommand manages the customer catalog.
type CustomersCommand struct {
	app *App
}

// NewCustomersCommand creates a new customers command handler
func NewCustomersCommand(app *App) *CustomersCommand {
	return &CustomersCommand{app: app}
}

// List prints all customers.
func (c *CustomersCommand) List(ctx context.Context, args []string) error {
	customers, err := c.app.businessAPI.ListCustomers(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("list customers", err)
	}

	if len(customers) == 0 {
		c.app.println("No customers yet")
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(heading("ID"), heading("Name"))
	for _, cu := range customers {
		tbl.AddRow(dim(shortID(cu.ID)), cu.Name)
	}
	fmt.Fprintln(c.app.out, tbl)
	return nil
}

// Add creates a customer.
func (c *CustomersCommand) Add(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewValidationError("usage: tc customers add <name>", nil)
	}

	customer, err := c.app.businessAPI.CreateCustomer(ctx, strings.Join(args, " "))
	if err != nil {
		return c.app.errorHandler.Handle("add customer", err)
	}
	c.app.printf("Created customer %s (%s)\n", accent(customer.Name), shortID(customer.ID))
	return nil
}

// Delete removes a customer.
func (c *CustomersCommand) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewValidationError("usage: tc customers delete <id>", nil)
	}

	if err := c.app.businessAPI.DeleteCustomer(ctx, args[0]); err != nil {
		return c.app.errorHandler.Handle("delete customer", err)
	}
	c.app.println("Customer deleted")
	return nil
}
