package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kterry/ladle/internal/recipes"
)

// detailRecipe resolves the recipe the detail view is showing.
func (m Model) detailRecipe() *recipes.Recipe {
	if m.selectedID == 0 {
		return nil
	}
	r, ok := m.store.Get(m.selectedID)
	if !ok {
		return nil
	}
	return &r
}

// handleDetailKey processes keyboard input for the detail view.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirming {
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "esc", "b":
		m.selectedID = 0
		m.transitionTo(ViewList)
		return m, nil

	case "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.cycleTheme()
		return m, nil

	case "e":
		if r := m.detailRecipe(); r != nil {
			m.editingID = r.ID
			m.seedForm(recipes.DraftOf(*r))
			m.transitionTo(ViewForm)
			return m, m.focusFormField(0)
		}
		return m, nil

	case "d", "x":
		if m.detailRecipe() != nil {
			m.confirming = true
		}
		return m, nil
	}

	return m, nil
}

// renderDetail renders the full recipe.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()

	r := m.detailRecipe()
	if r == nil {
		return styles.MutedText.Render("Recipe no longer available.")
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(r.Title))
	b.WriteString("  ")
	b.WriteString(styles.FaintText.Render(fmt.Sprintf("#%d", r.ID)))
	b.WriteString("\n\n")

	b.WriteString(styles.Text.Bold(true).Render("Ingredients"))
	b.WriteString("\n")
	if len(r.Ingredients) == 0 {
		b.WriteString(styles.MutedText.Render("(none)"))
		b.WriteString("\n")
	}
	for _, ing := range r.Ingredients {
		b.WriteString(styles.MutedText.Render("  - "))
		b.WriteString(styles.Text.Render(ing))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.Text.Bold(true).Render("Instructions"))
	b.WriteString("\n")
	if strings.TrimSpace(r.Instructions) == "" {
		b.WriteString(styles.MutedText.Render("(none)"))
	} else {
		b.WriteString(styles.Text.Render(r.Instructions))
	}

	if m.confirming {
		b.WriteString("\n\n")
		b.WriteString(styles.DangerText.Render(fmt.Sprintf("Delete %q? (y/n)", r.Title)))
	}

	return b.String()
}
