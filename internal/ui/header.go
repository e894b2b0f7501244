package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// bannerKind classifies the transient status banner.
type bannerKind int

const (
	bannerNone bannerKind = iota
	bannerSuccess
	bannerError
)

// banner is the one-line transient message shown in the header. It is
// overwritten by the next completion and cleared when a new request is
// issued.
type banner struct {
	text string
	kind bannerKind
}

func successBanner(text string) banner {
	return banner{text: text, kind: bannerSuccess}
}

func errorBanner(text string) banner {
	return banner{text: text, kind: bannerError}
}

// renderHeader renders the top status bar: logo, recipe count, loading
// indicator, and the transient banner.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	sep := "  "

	parts := []string{
		styles.Logo.Render("ladle"),
		styles.MutedText.Render("Recipes:") + " " + styles.Text.Render(fmt.Sprintf("%d", m.store.Len())),
	}

	if q := m.query(); q != "" {
		parts = append(parts, styles.MutedText.Render("Filter:")+" "+styles.Text.Render(q))
	}

	if m.loading {
		parts = append(parts, styles.WarningText.Render("Working..."))
	}

	switch m.banner.kind {
	case bannerSuccess:
		parts = append(parts, styles.SuccessText.Render(truncate(m.banner.text, 60)))
	case bannerError:
		parts = append(parts, styles.DangerText.Render(truncate(m.banner.text, 60)))
	}

	content := parts[0]
	for _, p := range parts[1:] {
		content += sep + p
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(content)
}

// renderCommandBar renders the bottom key hints for the active view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	var hints []hint
	switch {
	case m.loading:
		hints = []hint{{"ctrl+c", "quit"}}
	case m.confirming:
		hints = []hint{{"y", "confirm"}, {"any", "cancel"}}
	case m.currentView == ViewForm:
		hints = []hint{
			{"tab", "next field"},
			{"ctrl+s", "save"},
			{"esc", "cancel"},
		}
	case m.currentView == ViewDetail:
		hints = []hint{
			{"e", "edit"},
			{"d", "delete"},
			{"esc", "back"},
			{"q", "quit"},
		}
	case m.search.active:
		hints = []hint{{"enter", "apply"}, {"esc", "clear"}}
	default:
		hints = []hint{
			{"a", "add"},
			{"e", "edit"},
			{"d", "delete"},
			{"enter", "view"},
			{"/", "search"},
			{"r", "reload"},
			{"?", "help"},
			{"q", "quit"},
		}
	}

	var content string
	for i, h := range hints {
		if i > 0 {
			content += styles.FaintText.Render(" · ")
		}
		content += styles.AccentText.Render("<"+h.key+">") + styles.MutedText.Render(" "+h.desc)
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(content)
}

type hint struct {
	key  string
	desc string
}
