package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hrtools/noticedesk/internal/cli/formatter"
	"github.com/hrtools/noticedesk/internal/contract"
)

// statusChangeMsg carries a broadcast status change from the feed into
// the bubbletea loop.
type statusChangeMsg struct {
	change contract.StatusChange
}

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack and bridges the status feed into the loop.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// Transient one-line message shown above the status bar.
	flashText string

	feedCh     <-chan contract.StatusChange
	cancelFeed func()
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}

	m := appModel{state: state}
	if app.Feed != nil {
		m.feedCh, m.cancelFeed = app.Feed.Subscribe()
	}

	// Start with the notice board as the home view.
	m.viewStack = []View{newNoticeBoardView(state)}

	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// waitStatusChange blocks on the feed and resurfaces the next change
// as a message. Re-armed after every receipt.
func waitStatusChange(ch <-chan contract.StatusChange) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		change, ok := <-ch
		if !ok {
			return nil
		}
		return statusChangeMsg{change: change}
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if v := m.activeView(); v != nil {
		cmds = append(cmds, v.Init())
	}
	if cmd := waitStatusChange(m.feedCh); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	// Navigation messages from views
	case pushViewMsg:
		m.flashText = ""
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case replaceViewMsg:
		m.flashText = ""
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, msg.view.Init()

	case refreshViewMsg:
		// Broadcast to ALL views in the stack so underlying views (e.g. the
		// board) reload data after mutations made in views above them.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case statusChangeMsg:
		m.flashText = formatter.StyleGreen.Render("✔ ") +
			formatter.Dim("Status of ") + formatter.TruncID(msg.change.ID) +
			formatter.Dim(" set to ") + formatter.StatusPill(msg.change.Status)
		return m, tea.Batch(refreshViews(), waitStatusChange(m.feedCh))

	case flashMsg:
		m.flashText = msg.text
		return m, nil

	case wizardCompleteMsg:
		// Atomically pop the wizard view and execute the follow-up command.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, tea.Batch(msg.nextCmd, refreshViews())
	}

	// Forward other messages to the active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.shutdown()
		return m, tea.Quit
	}

	if m.flashText != "" {
		m.flashText = ""
	}

	// Views with their own text input or commit gating receive all key
	// events, bypassing global keybindings.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.shutdown()
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		// Pop view stack (go back)
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
			return m, nil
		}
		return m, nil
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m *appModel) shutdown() {
	m.quitting = true
	if m.cancelFeed != nil {
		m.cancelFeed()
	}
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("noticedesk")

	// Breadcrumb from view stack
	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return title + breadcrumb + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.Dim("esc: back"))
	}
	hints = append(hints, formatter.Dim("q: quit"))

	bar := strings.Join(hints, "  ")
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))

	if m.flashText != "" {
		return m.flashText + "\n" + sep + "\n" + bar
	}
	return sep + "\n" + bar
}

// viewCapturesInput returns true if the active view has its own text input
// or commit gating and should receive all key events (bypassing global
// keybindings like q and Esc).
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	switch v.ID() {
	case ViewForm, ViewStatusDialog:
		return true
	}
	return false
}
