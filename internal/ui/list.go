package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kterry/ladle/internal/recipes"
	"github.com/kterry/ladle/internal/state"
)

// searchState holds the list view's search input. The committed query is
// read straight from the input so filtering tracks each keystroke.
type searchState struct {
	input  textinput.Model
	active bool // input focused and receiving keys
}

func (m *Model) initSearch() {
	ti := textinput.New()
	ti.Placeholder = "title or ingredient..."
	ti.Prompt = "/"
	ti.CharLimit = 80
	m.search.input = ti
}

func (m Model) query() string {
	return m.search.input.Value()
}

// visibleRecipes applies the search filter to the current store snapshot.
func (m Model) visibleRecipes() []recipes.Recipe {
	return state.Filter(m.store.Recipes(), m.query())
}

// selectedRecipe returns the recipe under the cursor, if any.
func (m Model) selectedRecipe() *recipes.Recipe {
	visible := m.visibleRecipes()
	if m.selectedRow < 0 || m.selectedRow >= len(visible) {
		return nil
	}
	r := visible[m.selectedRow]
	return &r
}

// clampSelection keeps the cursor inside the visible range.
func (m *Model) clampSelection() {
	count := len(m.visibleRecipes())
	if count == 0 {
		m.selectedRow = 0
		return
	}
	if m.selectedRow >= count {
		m.selectedRow = count - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

// selectByID moves the cursor to the recipe with the given id when visible.
func (m *Model) selectByID(id int64) {
	for i, r := range m.visibleRecipes() {
		if r.ID == id {
			m.selectedRow = i
			return
		}
	}
	m.clampSelection()
}

// handleListKey processes keyboard input for the list view.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Delete confirmation gate takes precedence over everything else.
	if m.confirming {
		return m.handleConfirmKey(msg)
	}

	// Search entry mode: keys feed the input until enter/esc.
	if m.search.active {
		switch msg.String() {
		case "enter":
			m.search.active = false
			m.search.input.Blur()
			m.clampSelection()
			return m, nil
		case "esc":
			m.search.active = false
			m.search.input.Blur()
			m.search.input.SetValue("")
			m.clampSelection()
			return m, nil
		}
		var cmd tea.Cmd
		m.search.input, cmd = m.search.input.Update(msg)
		m.clampSelection()
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.cycleTheme()
		return m, nil

	case "/":
		m.search.active = true
		return m, m.search.input.Focus()

	case "esc":
		if m.query() != "" {
			m.search.input.SetValue("")
			m.clampSelection()
		}
		return m, nil

	case "r":
		m.loading = true
		m.banner = banner{}
		return m, loadRecipesCmd(m.ctx, m.client, m.log, m.gen, false)

	case "a":
		m.editingID = 0
		m.selectedID = 0
		m.resetForm()
		m.transitionTo(ViewForm)
		return m, m.focusFormField(0)

	case "e":
		if r := m.selectedRecipe(); r != nil {
			m.editingID = r.ID
			m.selectedID = r.ID
			m.seedForm(recipes.DraftOf(*r))
			m.transitionTo(ViewForm)
			return m, m.focusFormField(0)
		}
		return m, nil

	case "enter":
		if r := m.selectedRecipe(); r != nil {
			m.selectedID = r.ID
			m.transitionTo(ViewDetail)
		}
		return m, nil

	case "d", "x":
		if r := m.selectedRecipe(); r != nil {
			m.confirming = true
			m.selectedID = r.ID
		}
		return m, nil

	case "j", "down":
		if m.selectedRow < len(m.visibleRecipes())-1 {
			m.selectedRow++
		}
		return m, nil

	case "k", "up":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		return m, nil

	case "g", "home":
		m.selectedRow = 0
		return m, nil

	case "G", "end":
		if count := len(m.visibleRecipes()); count > 0 {
			m.selectedRow = count - 1
		}
		return m, nil
	}

	return m, nil
}

// handleConfirmKey processes the delete confirmation gate. Only an
// explicit "y" issues the request; anything else cancels.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "y" {
		m.confirming = false
		m.loading = true
		m.banner = banner{}
		return m, deleteRecipeCmd(m.ctx, m.client, m.log, m.gen, m.selectedID)
	}
	m.confirming = false
	return m, nil
}

// renderList renders the recipe list with the search bar and cursor.
func (m Model) renderList() string {
	styles := m.theme.Styles()
	visible := m.visibleRecipes()

	var b strings.Builder

	if m.search.active || m.query() != "" {
		b.WriteString(m.search.input.View())
		b.WriteString("\n\n")
	}

	if len(visible) == 0 {
		if m.store.Len() == 0 {
			b.WriteString(styles.MutedText.Render("No recipes yet. Press 'a' to add one."))
		} else {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("No recipes match %q.", m.query())))
		}
		return b.String()
	}

	for i, r := range visible {
		line := m.formatListRow(r, i == m.selectedRow)
		b.WriteString(line)
		if i < len(visible)-1 {
			b.WriteString("\n")
		}
	}

	if m.confirming {
		if r := m.selectedRecipe(); r != nil {
			b.WriteString("\n\n")
			b.WriteString(styles.DangerText.Render(fmt.Sprintf("Delete %q? (y/n)", r.Title)))
		}
	}

	return b.String()
}

// formatListRow formats one list entry: "#ID Title · N ingredients".
func (m Model) formatListRow(r recipes.Recipe, selected bool) string {
	styles := m.theme.Styles()

	count := "1 ingredient"
	if n := len(r.Ingredients); n != 1 {
		count = fmt.Sprintf("%d ingredients", n)
	}

	idStr := fmt.Sprintf("#%d", r.ID)
	titleWidth := max(m.width-len(idStr)-len(count)-8, 10)
	title := truncate(r.Title, titleWidth)

	if selected {
		row := fmt.Sprintf("%s %s · %s", idStr, title, count)
		return styles.Selected.Width(max(m.width-2, 0)).Render(row)
	}
	return styles.MutedText.Render(idStr) + " " +
		styles.Text.Render(title) +
		styles.FaintText.Render(" · "+count)
}

// placeContent pads view content to fill the space between header and
// command bar so the command bar stays pinned to the bottom row.
func (m Model) placeContent(content string) string {
	contentHeight := max(m.height-2, 1)
	return lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		Padding(0, 1).
		Render(content)
}
