package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui/views/board"
	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui/views/help"
	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui/views/setup"
	"github.com/custodia-labs/crossword-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// updates delivers messages produced outside the program, such as
	// settings reloads.
	updates <-chan tea.Msg

	styles *styles.Styles
	keymap *keymap.KeyMap

	setupView *setup.View
	boardView *board.View
	helpView  *help.View
	statusBar *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports. The app opens
// on the board if the editor already holds a grid, otherwise on setup.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	settings := domain.DefaultAppSettings()
	if ports.Settings != nil {
		if loaded, err := ports.Settings.Get(); err == nil && loaded != nil {
			settings = *loaded
		}
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		setupView:   setup.NewView(s, km, ports.Editor, settings.Grid),
		boardView:   board.NewView(s, km, ports.Editor, settings.Editor.Advance),
		helpView:    help.NewView(s, km),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewSetup,
	}
	a.statusBar.SetAdvance(a.boardView.Advance())

	if snap, err := ports.Editor.Snapshot(); err == nil {
		a.showBoard(snap)
	}
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithUpdates makes the app listen for messages on ch while it runs.
func (a *App) WithUpdates(ch <-chan tea.Msg) *App {
	a.updates = ch
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle("crossword")}
	if a.currentView == messages.ViewSetup {
		cmds = append(cmds, a.setupView.Init())
	}
	cmds = append(cmds, a.listen())
	return tea.Batch(cmds...)
}

// listen waits for the next external update.
func (a *App) listen() tea.Cmd {
	if a.updates == nil {
		return nil
	}
	ch := a.updates
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case tea.MouseMsg:
		if a.currentView == messages.ViewBoard {
			var cmd tea.Cmd
			a.boardView, cmd = a.boardView.Update(msg)
			a.syncSelection()
			return a, cmd
		}
		return a, nil

	case messages.GridCreated:
		a.showBoard(msg.Snapshot)
		return a, nil

	case messages.GridChanged:
		a.err = nil
		a.statusBar.Clear()
		return a, nil

	case messages.AdvanceChanged:
		a.statusBar.SetAdvance(msg.Advance)
		if a.ports.Settings != nil {
			if err := a.ports.Settings.SetAdvance(msg.Advance); err != nil {
				return a, reportError(err)
			}
		}
		return a, nil

	case messages.SettingsChanged:
		if msg.Settings != nil {
			a.boardView.SetAdvance(msg.Settings.Editor.Advance)
			a.statusBar.SetAdvance(a.boardView.Advance())
			a.setupView.SetDefaults(msg.Settings.Grid)
		}
		return a, a.listen()

	case messages.ViewChanged:
		a.switchTo(msg.View)
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		if msg.Err != nil {
			a.statusBar.SetError(msg.Err.Error())
		}
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := msg.String()
	if k == "ctrl+c" {
		return tea.Quit
	}

	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewSetup:
		if k == "esc" {
			if a.boardView.Snapshot() != nil {
				a.switchTo(messages.ViewBoard)
				return nil
			}
			return tea.Quit
		}
		a.setupView, cmd = a.setupView.Update(msg)

	case messages.ViewHelp:
		a.helpView, cmd = a.helpView.Update(msg)

	case messages.ViewBoard:
		switch {
		case keymap.Matches(k, a.keymap.Quit):
			return tea.Quit
		case keymap.Matches(k, a.keymap.Help):
			a.switchTo(messages.ViewHelp)
			return nil
		case keymap.Matches(k, a.keymap.NewGrid):
			a.switchTo(messages.ViewSetup)
			return a.setupView.Init()
		}
		a.boardView, cmd = a.boardView.Update(msg)
		a.syncSelection()
	}
	return cmd
}

func (a *App) showBoard(snap *domain.GridSnapshot) {
	a.boardView.SetSnapshot(snap)
	a.switchTo(messages.ViewBoard)
	a.syncSelection()
}

func (a *App) switchTo(view messages.ViewType) {
	a.currentView = view
	switch view {
	case messages.ViewSetup:
		a.statusBar.SetState(status.StateSetup)
	case messages.ViewHelp:
		a.statusBar.SetState(status.StateHelp)
	case messages.ViewBoard:
		a.statusBar.Clear()
	}
}

func (a *App) syncSelection() {
	row, col := a.boardView.Selection()
	a.statusBar.SetSelection(row, col)
}

func reportError(err error) tea.Cmd {
	return func() tea.Msg {
		return messages.ErrorOccurred{Err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewSetup:
		body = a.setupView.View()
	case messages.ViewHelp:
		body = a.helpView.View()
	default:
		body = a.boardView.View()
	}
	return body + "\n\n" + a.statusBar.View()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(a.ctx),
	)
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its first window size.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.setupView.SetDimensions(width, height)
	a.boardView.SetDimensions(width, height)
	a.helpView.SetDimensions(width, height)
	a.statusBar.SetWidth(width)
}
