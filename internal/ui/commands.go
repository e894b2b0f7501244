package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/kterry/ladle/internal/recipes"
)

// Messages

// recipesLoadedMsg delivers a full list result.
type recipesLoadedMsg struct {
	gen     int
	recipes []recipes.Recipe
	initial bool
}

// loadFailedMsg reports a failed list call. Initial loads degrade to an
// empty collection; manual reloads surface a banner.
type loadFailedMsg struct {
	gen     int
	err     error
	initial bool
}

// recipeSavedMsg delivers a successful create or update.
type recipeSavedMsg struct {
	gen     int
	recipe  recipes.Recipe
	created bool
}

// recipeDeletedMsg delivers a successful delete.
type recipeDeletedMsg struct {
	gen int
	id  int64
}

// requestFailedMsg reports a failed write. The op names the user action
// for the banner ("Save", "Delete").
type requestFailedMsg struct {
	gen int
	op  string
	err error
}

// Commands

func loadRecipesCmd(ctx context.Context, client recipes.Service, log zerolog.Logger, gen int, initial bool) tea.Cmd {
	return func() tea.Msg {
		list, err := client.List(ctx)
		if err != nil {
			log.Warn().Err(err).Bool("initial", initial).Msg("list recipes failed")
			return loadFailedMsg{gen: gen, err: err, initial: initial}
		}
		log.Debug().Int("count", len(list)).Msg("recipes loaded")
		return recipesLoadedMsg{gen: gen, recipes: list, initial: initial}
	}
}

// saveRecipeCmd creates when id is zero, updates otherwise.
func saveRecipeCmd(ctx context.Context, client recipes.Service, log zerolog.Logger, gen int, id int64, draft recipes.Draft) tea.Cmd {
	return func() tea.Msg {
		if id > 0 {
			updated, err := client.Update(ctx, id, draft)
			if err != nil {
				log.Warn().Err(err).Int64("id", id).Msg("update recipe failed")
				return requestFailedMsg{gen: gen, op: "Save", err: err}
			}
			return recipeSavedMsg{gen: gen, recipe: updated}
		}
		created, err := client.Create(ctx, draft)
		if err != nil {
			log.Warn().Err(err).Msg("create recipe failed")
			return requestFailedMsg{gen: gen, op: "Save", err: err}
		}
		return recipeSavedMsg{gen: gen, recipe: created, created: true}
	}
}

func deleteRecipeCmd(ctx context.Context, client recipes.Service, log zerolog.Logger, gen int, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := client.Delete(ctx, id); err != nil {
			log.Warn().Err(err).Int64("id", id).Msg("delete recipe failed")
			return requestFailedMsg{gen: gen, op: "Delete", err: err}
		}
		return recipeDeletedMsg{gen: gen, id: id}
	}
}
