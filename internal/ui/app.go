package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/roster/internal/directory"
	"github.com/five82/roster/internal/export"
	"github.com/five82/roster/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Fetcher   directory.Fetcher
	Logger    *zap.Logger
	ThemeName string
	PrefsPath string
	ExportDir string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	fetcher   directory.Fetcher
	log       *zap.Logger
	prefsPath string
	exportDir string
	keys      keyMap

	theme  Theme
	width  int
	height int
	ready  bool

	ctrl   *directory.Controller
	screen *screen

	search    textinput.Model
	searching bool
	highlight int

	showHelp  bool
	status    string
	statusErr bool
}

// New creates the model and puts the controller in its loading state.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	exportDir := opts.ExportDir
	if exportDir == "" {
		exportDir = "."
	}

	search := textinput.New()
	search.Placeholder = "Search employees..."
	search.Prompt = "/ "
	search.CharLimit = 64

	sc := &screen{}
	ctrl := directory.NewController(sc, directory.WithLogger(log.Named("directory")))
	ctrl.ShowLoading()

	return Model{
		ctx:       ctx,
		fetcher:   opts.Fetcher,
		log:       log,
		prefsPath: prefsPath,
		exportDir: exportDir,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(opts.ThemeName),
		ctrl:      ctrl,
		screen:    sc,
		search:    search,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return fetchRecordsCmd(m.ctx, m.fetcher)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(msg.Width-8, 10)
		m.ready = true
		return m, nil

	case recordsLoadedMsg:
		m.ctrl.OnDataLoaded(directory.RecordSet(msg))
		m.search.SetValue("")
		m.highlight = 0
		return m, nil

	case loadFailedMsg:
		m.ctrl.OnLoadFailed(msg.err)
		return m, nil

	case savedMsg:
		m.log.Info("saved vcard", zap.String("path", msg.path))
		m.setStatus("Saved "+msg.path, false)
		return m, nil

	case saveFailedMsg:
		m.log.Warn("save vcard failed", zap.Error(msg.err))
		m.setStatus("Save failed: "+msg.err.Error(), true)
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
	if m.screen.detailOpen() {
		return m.renderDetail()
	}
	return m.renderMain()
}

// handleKey routes a key press to the layer that currently owns input:
// help overlay, search box, detail modal, then the gallery.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	if m.screen.detailOpen() {
		return m.handleDetailKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		if m.screen.phase != phaseLoaded {
			return m, nil
		}
		m.searching = true
		m.status = ""
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Clear):
		if m.ctrl.Query() != "" {
			m.search.SetValue("")
			m.applyQuery("")
		}
		return m, nil
	}

	return m.handleGalleryKey(msg)
}

// handleSearchKey feeds the search box and re-filters on every edit.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.LeaveBox) {
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != m.ctrl.Query() {
		m.applyQuery(value)
	}
	return m, cmd
}

// handleDetailKey maps modal keys onto cursor operations.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Prev):
		m.ctrl.OnPrev()
		m.syncHighlight()
	case key.Matches(msg, m.keys.Next):
		m.ctrl.OnNext()
		m.syncHighlight()
	case key.Matches(msg, m.keys.Close):
		m.syncHighlight()
		m.ctrl.OnDetailClosed()
	case key.Matches(msg, m.keys.Save):
		rec, ok := m.ctrl.Current()
		if !ok {
			return m, nil
		}
		return m, saveRecordCmd(m.exportDir, rec)
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
	}
	return m, nil
}

func (m *Model) applyQuery(query string) {
	m.ctrl.OnQueryChanged(query)
	m.clampHighlight()
}

func (m *Model) syncHighlight() {
	if pos, ok := m.ctrl.Cursor(); ok {
		m.highlight = pos
	}
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.log.Warn("save prefs failed", zap.Error(err))
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// Messages

type recordsLoadedMsg directory.RecordSet

type loadFailedMsg struct{ err error }

type savedMsg struct{ path string }

type saveFailedMsg struct{ err error }

// Commands

func fetchRecordsCmd(ctx context.Context, fetcher directory.Fetcher) tea.Cmd {
	if fetcher == nil {
		return nil
	}
	return func() tea.Msg {
		records, err := fetcher.FetchRecords(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return recordsLoadedMsg(records)
	}
}

func saveRecordCmd(dir string, rec directory.Record) tea.Cmd {
	return func() tea.Msg {
		path, err := export.SaveRecord(dir, rec)
		if err != nil {
			return saveFailedMsg{err: err}
		}
		return savedMsg{path: path}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
