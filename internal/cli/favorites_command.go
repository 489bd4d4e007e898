package cli

import (
	"context"
	"fmt"

	"github.com/gosuri/uitable"
)

// FavoritesCommand lists the favorites bar content.
type FavoritesCommand struct {
	app *App
}

// NewFavoritesCommand creates a new favorites command handler
func NewFavoritesCommand(app *App) *FavoritesCommand {
	return &FavoritesCommand{app: app}
}

// Execute runs the favorites command
func (c *FavoritesCommand) Execute(ctx context.Context, args []string) error {
	favs, err := c.app.businessAPI.Favorites(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("list favorites", err)
	}

	if len(favs) == 0 {
		c.app.println("No favorites yet, track some time first")
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(heading("Label"), heading("Project"), heading("Used"))
	for _, f := range favs {
		name := f.ProjectName
		if name == "" {
			name = dim(f.ProjectID)
		}
		tbl.AddRow(accent(f.Label), name, fmt.Sprintf("%dx", f.Count))
	}
	fmt.Fprintln(c.app.out, tbl)
	return nil
}

// SuggestCommand lists frequent tasks worth pinning.
type SuggestCommand struct {
	app *App
}

// NewSuggestCommand creates a new suggest command handler
func NewSuggestCommand(app *App) *SuggestCommand {
	return &SuggestCommand{app: app}
}

// Execute runs the suggest command
func (c *SuggestCommand) Execute(ctx context.Context, args []string) error {
	suggestions, err := c.app.businessAPI.Suggestions(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("list suggestions", err)
	}

	if len(suggestions) == 0 {
		c.app.println("No suggestions yet")
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(heading("Project"), heading("Description"), heading("Used"))
	for _, s := range suggestions {
		name := s.ProjectName
		if name == "" {
			name = dim(s.ProjectID)
		}
		tbl.AddRow(name, s.Description, fmt.Sprintf("%dx", s.Count))
	}
	fmt.Fprintln(c.app.out, tbl)
	return nil
}
