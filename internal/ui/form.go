package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kterry/ladle/internal/recipes"
)

// formState holds the draft being edited: title, raw ingredient lines,
// and instructions. The raw text is only turned into a Draft at submit.
type formState struct {
	title        textinput.Model
	ingredients  textarea.Model
	instructions textarea.Model
	focusIdx     int // 0 = title, 1 = ingredients, 2 = instructions
}

const (
	formFieldTitle = iota
	formFieldIngredients
	formFieldInstructions
	formFieldCount
)

func (m *Model) initForm() {
	title := textinput.New()
	title.Placeholder = "Recipe title"
	title.CharLimit = 120
	title.Prompt = ""

	ingredients := textarea.New()
	ingredients.Placeholder = "One ingredient per line"
	ingredients.ShowLineNumbers = false
	ingredients.SetHeight(6)

	instructions := textarea.New()
	instructions.Placeholder = "Steps, free text"
	instructions.ShowLineNumbers = false
	instructions.SetHeight(8)

	m.form = formState{
		title:        title,
		ingredients:  ingredients,
		instructions: instructions,
	}
}

// resizeForm keeps the inputs sized to the window.
func (m *Model) resizeForm() {
	width := max(m.width-4, 20)
	m.form.title.Width = width
	m.form.ingredients.SetWidth(width)
	m.form.instructions.SetWidth(width)
}

// resetForm clears the draft.
func (m *Model) resetForm() {
	m.form.title.SetValue("")
	m.form.ingredients.SetValue("")
	m.form.instructions.SetValue("")
	m.form.focusIdx = formFieldTitle
	m.blurForm()
}

// seedForm fills the draft from an existing recipe for editing.
func (m *Model) seedForm(d recipes.Draft) {
	m.form.title.SetValue(d.Title)
	m.form.ingredients.SetValue(strings.Join(d.Ingredients, "\n"))
	m.form.instructions.SetValue(d.Instructions)
	m.form.focusIdx = formFieldTitle
	m.blurForm()
}

func (m *Model) blurForm() {
	m.form.title.Blur()
	m.form.ingredients.Blur()
	m.form.instructions.Blur()
}

// focusFormField moves focus to one of the three fields.
func (m *Model) focusFormField(idx int) tea.Cmd {
	m.blurForm()
	m.form.focusIdx = idx
	switch idx {
	case formFieldIngredients:
		return m.form.ingredients.Focus()
	case formFieldInstructions:
		return m.form.instructions.Focus()
	default:
		return m.form.title.Focus()
	}
}

// handleFormKey processes keyboard input for the form view.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Cancel: discard the draft, back to the list, store untouched.
		m.resetForm()
		m.editingID = 0
		m.selectedID = 0
		m.transitionTo(ViewList)
		return m, nil

	case "tab":
		return m, m.focusFormField((m.form.focusIdx + 1) % formFieldCount)

	case "shift+tab":
		return m, m.focusFormField((m.form.focusIdx - 1 + formFieldCount) % formFieldCount)

	case "enter":
		// Enter advances out of the single-line title; the textareas
		// consume it for line breaks.
		if m.form.focusIdx == formFieldTitle {
			return m, m.focusFormField(formFieldIngredients)
		}

	case "ctrl+s":
		return m.submitForm()
	}

	// Let the focused field handle the key.
	var cmd tea.Cmd
	switch m.form.focusIdx {
	case formFieldIngredients:
		m.form.ingredients, cmd = m.form.ingredients.Update(msg)
	case formFieldInstructions:
		m.form.instructions, cmd = m.form.instructions.Update(msg)
	default:
		m.form.title, cmd = m.form.title.Update(msg)
	}
	return m, cmd
}

// submitForm validates the draft and issues the create or update call.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	draft := recipes.Draft{
		Title:        strings.TrimSpace(m.form.title.Value()),
		Ingredients:  splitIngredients(m.form.ingredients.Value()),
		Instructions: m.form.instructions.Value(),
	}

	if draft.Title == "" {
		m.banner = errorBanner("Title is required")
		return m, nil
	}

	m.loading = true
	m.banner = banner{}
	return m, saveRecipeCmd(m.ctx, m.client, m.log, m.gen, m.editingID, draft)
}

// splitIngredients turns the raw textarea content into ordered ingredient
// lines, dropping blank and whitespace-only entries.
func splitIngredients(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// renderForm renders the add/edit form.
func (m Model) renderForm() string {
	styles := m.theme.Styles()

	heading := "Add Recipe"
	if m.editingID > 0 {
		heading = "Edit Recipe"
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(heading))
	b.WriteString("\n\n")

	b.WriteString(m.formLabel("Title", formFieldTitle))
	b.WriteString("\n")
	b.WriteString(m.form.title.View())
	b.WriteString("\n\n")

	b.WriteString(m.formLabel("Ingredients", formFieldIngredients))
	b.WriteString("\n")
	b.WriteString(m.form.ingredients.View())
	b.WriteString("\n\n")

	b.WriteString(m.formLabel("Instructions", formFieldInstructions))
	b.WriteString("\n")
	b.WriteString(m.form.instructions.View())

	return b.String()
}

func (m Model) formLabel(label string, idx int) string {
	styles := m.theme.Styles()
	if m.form.focusIdx == idx {
		return styles.AccentText.Render(label)
	}
	return styles.MutedText.Render(label)
}
