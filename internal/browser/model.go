package browser

import (
	"context"
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-browser/internal/view"
)

// Focus identifies which part of the browser receives key input.
type Focus int

const (
	FocusList Focus = iota
	FocusSearch
	FocusFacets
	FocusDetail
)

// ticketsLoadedMsg carries the outcome of the initial fetch.
type ticketsLoadedMsg struct {
	err error
}

// facetEntry is one row of the facet panel.
type facetEntry struct {
	facet view.Facet
	value view.FacetValue
}

// Model is the bubbletea model of the ticket browser. It drives a
// view.Session and renders the engine's derived view.
type Model struct {
	session   *view.Session
	engine    *view.Engine
	logger    *zap.Logger
	exportDir string

	keys  KeyMap
	help  help.Model
	theme Theme

	loading bool
	err     error
	focus   Focus

	cursor      int
	facetCursor int
	status      string

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

func WithLogger(logger *zap.Logger) Option {
	return func(model *Model) {
		if logger != nil {
			model.logger = logger
		}
	}
}

// WithExportDir sets the directory CSV exports are written to.
func WithExportDir(dir string) Option {
	return func(model *Model) {
		model.exportDir = dir
	}
}

func WithTheme(theme Theme) Option {
	return func(model *Model) {
		model.theme = theme
	}
}

// NewModel creates a browser for the given session. The session is loaded
// by the command returned from Init.
func NewModel(session *view.Session, opts ...Option) Model {
	model := Model{
		session:   session,
		logger:    zap.NewNop(),
		exportDir: ".",
		keys:      DefaultKeyMap,
		help:      help.New(),
		theme:     DefaultTheme,
		loading:   true,
		width:     100,
		height:    30,
	}
	for _, opt := range opts {
		opt(&model)
	}
	return model
}

// Init implements tea.Model by starting the single ticket fetch.
func (model Model) Init() tea.Cmd {
	session := model.session
	logger := model.logger
	return func() tea.Msg {
		err := session.Load(context.Background())
		if err != nil {
			logger.Error("failed to load tickets", zap.Error(err))
		}
		return ticketsLoadedMsg{err: err}
	}
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.help.Width = message.Width
		return model, nil

	case ticketsLoadedMsg:
		model.loading = false
		if message.err != nil {
			model.err = message.err
			return model, nil
		}
		model.engine = model.session.Engine()
		model.logger.Info("tickets loaded", zap.Int("count", model.engine.Len()))
		return model, nil

	case tea.KeyMsg:
		if message.Type == tea.KeyCtrlC {
			return model, tea.Quit
		}
		if model.engine == nil {
			if key.Matches(message, model.keys.Quit) {
				return model, tea.Quit
			}
			return model, nil
		}
		switch model.focus {
		case FocusSearch:
			model.handleSearchKeys(message)
			return model, nil
		case FocusFacets:
			model.handleFacetKeys(message)
			return model, nil
		case FocusDetail:
			model.handleDetailKeys(message)
			return model, nil
		}
		return model.handleListKeys(message)
	}
	return model, nil
}

func (model Model) handleListKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	engine := model.engine
	model.status = ""

	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit
	case key.Matches(message, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}
	case key.Matches(message, model.keys.Down):
		if model.cursor < len(engine.View().Items)-1 {
			model.cursor++
		}
	case key.Matches(message, model.keys.NextPage):
		engine.NextPage()
		model.cursor = 0
	case key.Matches(message, model.keys.PrevPage):
		engine.PrevPage()
		model.cursor = 0
	case key.Matches(message, model.keys.Search):
		model.focus = FocusSearch
	case key.Matches(message, model.keys.Facets):
		model.focus = FocusFacets
	case key.Matches(message, model.keys.ClearFilter):
		engine.ClearFilters()
		model.cursor = 0
	case key.Matches(message, model.keys.CycleSort):
		order := engine.Order()
		next := view.SortKeys[(slices.Index(view.SortKeys, order.Key)+1)%len(view.SortKeys)]
		engine.SetSort(next, order.Direction)
	case key.Matches(message, model.keys.ToggleOrder):
		engine.ToggleDirection()
	case key.Matches(message, model.keys.PageSizeUp):
		model.stepPageSize(1)
	case key.Matches(message, model.keys.PageSizeDown):
		model.stepPageSize(-1)
	case key.Matches(message, model.keys.Open):
		items := engine.View().Items
		if model.cursor < len(items) {
			if err := engine.Select(items[model.cursor].ID); err == nil {
				model.focus = FocusDetail
			}
		}
	case key.Matches(message, model.keys.Export):
		model.export()
	}
	model.clampCursor()
	return model, nil
}

func (model *Model) stepPageSize(delta int) {
	sizes := view.PageSizes
	idx := slices.Index(sizes, model.engine.View().PageSize) + delta
	if idx < 0 || idx >= len(sizes) {
		return
	}
	if err := model.engine.SetPageSize(sizes[idx]); err != nil {
		model.status = err.Error()
	}
}

func (model *Model) export() {
	path, err := model.engine.Export(model.exportDir)
	if err != nil {
		model.logger.Error("csv export failed", zap.Error(err))
		model.status = "Export failed: " + err.Error()
		return
	}
	count := len(model.engine.Filtered())
	model.logger.Info("csv export written", zap.String("path", path), zap.Int("tickets", count))
	model.status = fmt.Sprintf("Exported %d tickets to %s", count, path)
}

// handleSearchKeys edits the search text. Every keystroke re-filters.
func (model *Model) handleSearchKeys(message tea.KeyMsg) {
	query := model.engine.Query()
	switch message.Type {
	case tea.KeyEnter:
		model.focus = FocusList
	case tea.KeyEsc:
		model.engine.SetQuery("")
		model.focus = FocusList
	case tea.KeyBackspace:
		if query == "" {
			return
		}
		runes := []rune(query)
		model.engine.SetQuery(string(runes[:len(runes)-1]))
	case tea.KeySpace:
		model.engine.SetQuery(query + " ")
	case tea.KeyRunes:
		model.engine.SetQuery(query + string(message.Runes))
	default:
		return
	}
	model.cursor = 0
}

func (model Model) facetEntries() []facetEntry {
	facets := model.engine.Facets()
	var entries []facetEntry
	for _, f := range view.Facets {
		for _, value := range facets.Values(f) {
			entries = append(entries, facetEntry{facet: f, value: value})
		}
	}
	return entries
}

func (model *Model) handleFacetKeys(message tea.KeyMsg) {
	entries := model.facetEntries()
	switch {
	case key.Matches(message, model.keys.Close), key.Matches(message, model.keys.Facets), key.Matches(message, model.keys.Quit):
		model.focus = FocusList
	case key.Matches(message, model.keys.Up):
		if model.facetCursor > 0 {
			model.facetCursor--
		}
	case key.Matches(message, model.keys.Down):
		if model.facetCursor < len(entries)-1 {
			model.facetCursor++
		}
	case key.Matches(message, model.keys.ToggleFacet), key.Matches(message, model.keys.Open):
		if model.facetCursor < len(entries) {
			entry := entries[model.facetCursor]
			model.engine.ToggleFacet(entry.facet, entry.value.Value)
			model.cursor = 0
		}
	case key.Matches(message, model.keys.ClearFilter):
		model.engine.ClearFilters()
		model.cursor = 0
	}
}

func (model *Model) handleDetailKeys(message tea.KeyMsg) {
	if key.Matches(message, model.keys.Close) || key.Matches(message, model.keys.Open) || key.Matches(message, model.keys.Quit) {
		model.engine.CloseDetail()
		model.focus = FocusList
	}
}

func (model *Model) clampCursor() {
	n := len(model.engine.View().Items)
	if model.cursor >= n {
		model.cursor = n - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
}

// Focus returns the region that currently receives key input.
func (model Model) Focus() Focus {
	return model.focus
}

// Engine is nil until the tickets have loaded.
func (model Model) Engine() *view.Engine {
	return model.engine
}

// Err is the load failure shown on the error screen.
func (model Model) Err() error {
	return model.err
}
