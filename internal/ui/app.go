package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/kterry/ladle/internal/prefs"
	"github.com/kterry/ladle/internal/recipes"
	"github.com/kterry/ladle/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewList View = iota
	ViewForm
	ViewDetail
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    recipes.Service
	Store     *state.Store
	Log       zerolog.Logger
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    recipes.Service
	store     *state.Store
	log       zerolog.Logger
	prefsPath string

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	// List state
	selectedRow int
	search      searchState

	// Selection and draft state
	selectedID int64 // recipe shown in the detail view; 0 = none
	editingID  int64 // recipe being edited in the form; 0 = new draft
	form       formState

	// Delete confirmation gate
	confirming bool

	// Transient state
	loading bool
	banner  banner

	// gen guards against late network completions: it is bumped on every
	// view transition and each command carries the value it was issued
	// under. A completion whose gen no longer matches is discarded.
	gen int

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = defaultThemeName
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		log:         opts.Log,
		prefsPath:   prefsPath,
		theme:       GetTheme(themeName),
		currentView: ViewList,
		loading:     true,
	}
	m.initForm()
	m.initSearch()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	m.log.Info().Msg("ui starting, loading recipes")
	return tea.Batch(
		tea.EnterAltScreen,
		loadRecipesCmd(m.ctx, m.client, m.log, m.gen, true),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeForm()
		return m, nil

	case recipesLoadedMsg:
		if msg.gen != m.gen {
			m.log.Debug().Int("got", msg.gen).Int("want", m.gen).Msg("dropping stale list result")
			return m, nil
		}
		m.loading = false
		m.store.ReplaceAll(msg.recipes)
		m.clampSelection()
		if !msg.initial {
			m.banner = successBanner("Reloaded")
		}
		return m, nil

	case loadFailedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.initial {
			// Best-effort initial load: the failure is already logged;
			// start with an empty collection rather than blocking on a
			// broken backend.
			m.store.ReplaceAll(nil)
			return m, nil
		}
		m.banner = errorBanner("Reload failed: " + classifyRequestError(msg.err))
		return m, nil

	case recipeSavedMsg:
		if msg.gen != m.gen {
			m.log.Debug().Int64("id", msg.recipe.ID).Msg("dropping stale save result")
			return m, nil
		}
		m.loading = false
		m.store.Upsert(msg.recipe)
		if msg.created {
			m.banner = successBanner("Added \"" + msg.recipe.Title + "\"")
		} else {
			m.banner = successBanner("Saved \"" + msg.recipe.Title + "\"")
		}
		m.resetForm()
		m.editingID = 0
		m.selectedID = 0
		m.transitionTo(ViewList)
		m.selectByID(msg.recipe.ID)
		return m, nil

	case recipeDeletedMsg:
		if msg.gen != m.gen {
			m.log.Debug().Int64("id", msg.id).Msg("dropping stale delete result")
			return m, nil
		}
		m.loading = false
		m.store.Remove(msg.id)
		m.banner = successBanner("Deleted")
		m.selectedID = 0
		m.transitionTo(ViewList)
		m.clampSelection()
		return m, nil

	case requestFailedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		// Stay on the current view; a failed save keeps the draft so the
		// user can retry without retyping.
		m.loading = false
		m.banner = errorBanner(msg.op + " failed: " + classifyRequestError(msg.err))
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var content string
	switch m.currentView {
	case ViewForm:
		content = m.renderForm()
	case ViewDetail:
		content = m.renderDetail()
	default:
		content = m.renderList()
	}

	return m.renderHeader() + "\n" + m.placeContent(content) + "\n" + m.renderCommandBar()
}

// handleKey routes keyboard input to the active view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// A request is in flight; interaction is disabled until it settles.
	if m.loading {
		return m, nil
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch m.currentView {
	case ViewForm:
		return m.handleFormKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

// transitionTo switches views and invalidates any in-flight request.
func (m *Model) transitionTo(v View) {
	m.currentView = v
	m.gen++
	m.confirming = false
}

// cycleTheme switches to the next theme and persists the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.log.Warn().Err(err).Msg("persist theme preference failed")
		}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
