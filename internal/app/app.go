// Package app is the bubbletea program that ties the panes together: it
// routes keys to the focused pane, recomputes the layout on resize, and
// draws the assembled screen.
package app

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	"triptych/internal/config"
	"triptych/internal/item"
	"triptych/internal/layout"
	"triptych/internal/render"
	"triptych/internal/views"
)

// Mode selects which screen the program runs.
type Mode int

const (
	// ModeStore is the three-column editing screen: pick commits and
	// messages, attach them with enter.
	ModeStore Mode = iota
	// ModeView is the read-only screen: commits, details, and the attached
	// chat.
	ModeView
)

// Sources supplies the data the browser shows.
type Sources struct {
	Commits  item.CommitSource
	Messages item.MessageSource
	Logs     item.LogSource
	Details  item.DetailSource
	Notes    item.NoteSource
}

// AttachFunc persists a selection: the chosen messages become the chat of
// the chosen commits.
type AttachFunc func(shas []string, msgs []item.Message) error

// App is the top-level bubbletea model.
type App struct {
	cfg      config.Config
	mode     Mode
	keys     keyMap
	sources  Sources
	onAttach AttachFunc

	width  int
	height int
	focus  int

	commits  *views.Commits
	messages *views.Messages
	logs     *views.Logs
	details  *views.Details
	chat     *views.Chat

	engine *layout.Engine

	status    string
	statusErr bool
	loadedSHA string
	loadedLog uuid.UUID
}

// New loads the initial data and builds the model.
func New(cfg config.Config, mode Mode, sources Sources, onAttach AttachFunc) (*App, error) {
	commits, err := sources.Commits.Commits(cfg.UI.CommitLimit)
	if err != nil {
		return nil, fmt.Errorf("load commits: %w", err)
	}

	a := &App{
		cfg:      cfg,
		mode:     mode,
		keys:     defaultKeyMap(),
		sources:  sources,
		onAttach: onAttach,
		commits:  views.NewCommits(commits, mode == ModeStore, cfg.UI.DateFormat),
	}

	switch mode {
	case ModeStore:
		logs, err := sources.Logs.Logs()
		if err != nil {
			slog.Warn("log discovery failed", "err", err)
			logs = nil
		}
		a.logs = views.NewLogs(logs, cfg.UI.DateFormat)
		a.messages = views.NewMessages(true, cfg.UI.DateFormat)
		a.engine = layout.NewEngine(
			layout.Pane{Name: "commits", Min: 27, Max: 48, Frac: 0.4},
			layout.Pane{Name: "messages", Min: 25, Frac: 0.6, Overflow: true},
			layout.Pane{Name: "logs", Fixed: 18},
		)
		a.engine.SetFixedPresent(len(logs) > 0)
		a.loadSelectedLog()
	case ModeView:
		a.details = views.NewDetails()
		a.chat = views.NewChat(cfg.UI.DateFormat)
		a.engine = layout.NewEngine(
			layout.Pane{Name: "commits", Min: 27, Max: 48, Frac: 0.34},
			layout.Pane{Name: "details", Min: 20, Frac: 0.33},
			layout.Pane{Name: "chat", Min: 20, Frac: 0.33, Overflow: true},
		)
		a.loadCurrentCommit()
	}
	return a, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(m, a.keys.Quit) {
		return a, tea.Quit
	}
	if a.tooSmall() {
		return a, nil
	}

	a.status = ""
	a.statusErr = false

	switch {
	case key.Matches(m, a.keys.NextPane):
		a.cycleFocus(1)
	case key.Matches(m, a.keys.PrevPane):
		a.cycleFocus(-1)
	default:
		if a.mode == ModeStore {
			a.handleStoreKey(m)
		} else {
			a.handleViewKey(m)
		}
	}
	return a, nil
}

func (a *App) handleStoreKey(m tea.KeyMsg) {
	switch a.focus {
	case 0: // commits
		switch {
		case key.Matches(m, a.keys.Up):
			a.commits.MoveCursor(-1)
		case key.Matches(m, a.keys.Down):
			a.commits.MoveCursor(1)
		case key.Matches(m, a.keys.Top):
			a.commits.JumpStart()
		case key.Matches(m, a.keys.Bottom):
			a.commits.JumpEnd()
		case key.Matches(m, a.keys.Toggle):
			a.commits.Toggle()
		case key.Matches(m, a.keys.Visual):
			a.commits.ToggleVisual()
		case key.Matches(m, a.keys.Cancel):
			a.commits.CancelVisual()
		case key.Matches(m, a.keys.SelectAll):
			a.commits.SelectAll()
		case key.Matches(m, a.keys.Clear):
			a.commits.ClearSelection()
		case key.Matches(m, a.keys.Confirm):
			a.attach()
		}
	case 1: // messages
		switch {
		case key.Matches(m, a.keys.Up):
			a.messages.MoveCursor(-1)
		case key.Matches(m, a.keys.Down):
			a.messages.MoveCursor(1)
		case key.Matches(m, a.keys.Top):
			a.messages.JumpStart()
		case key.Matches(m, a.keys.Bottom):
			a.messages.JumpEnd()
		case key.Matches(m, a.keys.Toggle):
			a.messages.Toggle()
		case key.Matches(m, a.keys.Visual):
			a.messages.ToggleVisual()
		case key.Matches(m, a.keys.Cancel):
			a.messages.CancelVisual()
		case key.Matches(m, a.keys.SelectAll):
			a.messages.SelectAll()
		case key.Matches(m, a.keys.Clear):
			a.messages.ClearSelection()
		case key.Matches(m, a.keys.Confirm):
			a.attach()
		}
	case 2: // logs
		switch {
		case key.Matches(m, a.keys.Up):
			a.logs.MoveCursor(-1)
			a.loadSelectedLog()
		case key.Matches(m, a.keys.Down):
			a.logs.MoveCursor(1)
			a.loadSelectedLog()
		case key.Matches(m, a.keys.Top):
			a.logs.JumpStart()
			a.loadSelectedLog()
		case key.Matches(m, a.keys.Bottom):
			a.logs.JumpEnd()
			a.loadSelectedLog()
		}
	}
}

func (a *App) handleViewKey(m tea.KeyMsg) {
	if a.focus == 0 {
		switch {
		case key.Matches(m, a.keys.Up):
			a.commits.MoveCursor(-1)
		case key.Matches(m, a.keys.Down):
			a.commits.MoveCursor(1)
		case key.Matches(m, a.keys.Top):
			a.commits.JumpStart()
		case key.Matches(m, a.keys.Bottom):
			a.commits.JumpEnd()
		}
		a.loadCurrentCommit()
		return
	}

	// Details and chat scroll by lines; the pane content height is the
	// pane height minus its borders.
	h := a.paneContentHeight()
	up := key.Matches(m, a.keys.Up)
	down := key.Matches(m, a.keys.Down)
	if a.focus == 1 {
		if up {
			a.details.ScrollUp(1)
		}
		if down {
			a.details.ScrollDown(1, h)
		}
		return
	}
	if a.chat.Empty() {
		return
	}
	if up {
		a.chat.ScrollUp(1)
	}
	if down {
		a.chat.ScrollDown(1, h)
	}
}

// attach runs the confirm callback over the current selection. With no
// commits selected the cursor commit is used.
func (a *App) attach() {
	if a.onAttach == nil {
		return
	}
	shas := a.commits.SelectedSHAs()
	if len(shas) == 0 {
		if cur, ok := a.commits.Current(); ok {
			shas = []string{cur.FullSHA}
		}
	}
	msgs := a.messages.Selected()
	if len(shas) == 0 || len(msgs) == 0 {
		a.setError("nothing selected")
		return
	}

	if err := a.onAttach(shas, msgs); err != nil {
		slog.Error("attach failed", "err", err)
		a.setError(err.Error())
		return
	}
	a.status = fmt.Sprintf("attached %d messages to %d commits", len(msgs), len(shas))
	a.commits.ClearSelection()
	a.messages.ClearSelection()
}

// loadSelectedLog fills the messages pane from the log under the cursor.
func (a *App) loadSelectedLog() {
	entry, ok := a.logs.Current()
	if !ok {
		a.messages.SetMessages(nil)
		return
	}
	if entry.ID == a.loadedLog {
		return
	}
	a.loadedLog = entry.ID

	msgs, err := a.sources.Messages.Messages(entry.ID)
	if err != nil {
		slog.Warn("load messages failed", "log", entry.URI, "err", err)
		msgs = []item.Message{item.ErrorMessage(err)}
	}
	a.messages.SetMessages(msgs)
}

// loadCurrentCommit fills the details and chat panes for the commit under
// the cursor.
func (a *App) loadCurrentCommit() {
	cur, ok := a.commits.Current()
	if !ok || cur.FullSHA == a.loadedSHA {
		return
	}
	a.loadedSHA = cur.FullSHA

	lines, err := a.sources.Details.Details(cur.FullSHA)
	if err != nil {
		slog.Warn("load details failed", "sha", cur.SHA, "err", err)
		lines = []string{"error: " + err.Error()}
	}
	a.details.SetDetails(lines)

	msgs, err := a.sources.Notes.Note(cur.FullSHA)
	if err != nil {
		slog.Warn("load note failed", "sha", cur.SHA, "err", err)
		msgs = []item.Message{item.ErrorMessage(err)}
	}
	a.chat.SetMessages(msgs)
}

func (a *App) paneCount() int {
	if a.mode == ModeStore && !a.engine.FixedPresent() {
		return 2
	}
	return 3
}

func (a *App) cycleFocus(dir int) {
	n := a.paneCount()
	a.focus = (a.focus + dir + n) % n
}

func (a *App) tooSmall() bool {
	return a.width < config.MinWidth || a.height < config.MinHeight
}

func (a *App) paneContentHeight() int {
	return a.height - 3 // borders plus the status bar
}

func (a *App) setError(msg string) {
	a.status = msg
	a.statusErr = true
}

// View implements tea.Model.
func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	if a.tooSmall() {
		return fmt.Sprintf("Terminal too small: %dx%d, need at least %dx%d. Press q to quit.",
			a.width, a.height, config.MinWidth, config.MinHeight)
	}

	buf := render.NewBuffer(a.width, a.height)
	widths := a.engine.Calculate(a.width)
	paneHeight := a.height - 1
	contentHeight := paneHeight - 2

	x := 0
	for i, w := range widths {
		if w == 0 {
			continue
		}
		p := render.Pane{
			X:       x,
			Y:       0,
			Width:   w,
			Height:  paneHeight,
			Title:   a.paneTitle(i),
			Focused: i == a.focus,
		}
		p.Draw(buf, a.paneLines(i, w-4, contentHeight))
		x += w
	}

	render.DrawStatusBar(buf, buf.Height()-1, ansi.Truncate(a.statusText(), a.width, "…"))
	return buf.String(a.cfg.UI.Colors)
}

func (a *App) paneTitle(i int) string {
	if a.mode == ModeStore {
		switch i {
		case 0:
			return fmt.Sprintf("Commits (%d)", a.commits.Count())
		case 1:
			return "Messages"
		default:
			return "Logs"
		}
	}
	switch i {
	case 0:
		return fmt.Sprintf("Commits (%d)", a.commits.Count())
	case 1:
		return "Commit Details"
	default:
		return "Chat"
	}
}

func (a *App) paneLines(i, width, height int) []render.Line {
	if a.mode == ModeStore {
		switch i {
		case 0:
			return a.commits.Render(width, height)
		case 1:
			return a.messages.Render(width, height)
		default:
			return a.logs.Render(width, height)
		}
	}
	switch i {
	case 0:
		return a.commits.Render(width, height)
	case 1:
		return a.details.Render(width, height)
	default:
		return a.chat.Render(width, height)
	}
}

func (a *App) statusText() string {
	if a.status != "" {
		if a.statusErr {
			return "error: " + a.status
		}
		return a.status
	}
	if cur, ok := a.commits.Current(); ok {
		return cur.SHA + " " + cur.Subject + "  |  " + a.keys.helpLine(a.mode == ModeStore)
	}
	return a.keys.helpLine(a.mode == ModeStore)
}
