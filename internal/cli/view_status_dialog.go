package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hrtools/noticedesk/internal/cli/formatter"
	"github.com/hrtools/noticedesk/internal/domain"
	"github.com/hrtools/noticedesk/internal/service"
)

// statusCommitMsg signals that the dialog's commit settled.
type statusCommitMsg struct {
	err error
}

// statusDialogCloseMsg closes the dialog after the success pause.
type statusDialogCloseMsg struct{}

// statusDialogDelay is how long the success state stays visible before
// the dialog closes itself.
const statusDialogDelay = 800 * time.Millisecond

// statusLabels are the selectable choices, in display order.
var statusLabels = []domain.UIStatus{domain.UIPublished, domain.UIDraft, domain.UIUnpublished}

// statusDialogView is a radio-style dialog for changing one notice's
// status. The reconciler owns the workflow state; the view only renders
// it and forwards key presses.
type statusDialogView struct {
	state       *SharedState
	rec         *service.StatusReconciler
	noticeTitle string
	cursor      int
}

func newStatusDialogView(state *SharedState, id, title string, current domain.UIStatus) *statusDialogView {
	app := state.App
	rec := service.NewStatusReconciler(app.API, app.Feed, app.Observer)
	rec.Open(id, current)

	v := &statusDialogView{
		state:       state,
		rec:         rec,
		noticeTitle: title,
	}
	for i, label := range statusLabels {
		if label == rec.Snapshot().Selected {
			v.cursor = i
		}
	}
	return v
}

func (v *statusDialogView) ID() ViewID    { return ViewStatusDialog }
func (v *statusDialogView) Title() string { return "Status" }

func (v *statusDialogView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *statusDialogView) Init() tea.Cmd { return nil }

func (v *statusDialogView) commitCmd() tea.Cmd {
	rec := v.rec
	return func() tea.Msg {
		return statusCommitMsg{err: rec.Commit(context.Background())}
	}
}

func (v *statusDialogView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusCommitMsg:
		if v.rec.Snapshot().Success {
			return v, tea.Tick(statusDialogDelay, func(time.Time) tea.Msg {
				return statusDialogCloseMsg{}
			})
		}
		return v, nil

	case statusDialogCloseMsg:
		if v.rec.Close() {
			return v, popView()
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *statusDialogView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := v.rec.Snapshot()

	// While a commit is in flight only the commit result moves the
	// dialog forward; escape must not discard a pending outcome.
	if snap.Loading {
		return v, nil
	}

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
			v.rec.Select(statusLabels[v.cursor])
		}
	case "down", "j":
		if v.cursor < len(statusLabels)-1 {
			v.cursor++
			v.rec.Select(statusLabels[v.cursor])
		}
	case "enter":
		if snap.Success {
			// Enter during the success pause closes immediately.
			if v.rec.Close() {
				return v, popView()
			}
			return v, nil
		}
		return v, v.commitCmd()
	case "esc":
		if v.rec.Close() {
			return v, popView()
		}
	}
	return v, nil
}

func (v *statusDialogView) View() string {
	snap := v.rec.Snapshot()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + formatter.StyleHeader.Render("CHANGE STATUS") + "\n")
	b.WriteString("  " + formatter.Dim("for ") + formatter.Bold(v.noticeTitle) + "\n\n")

	for i, label := range statusLabels {
		cursor := "  "
		marker := formatter.Dim("○")
		if label == snap.Selected {
			marker = formatter.StyleGreen.Render("●")
		}
		style := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, marker, style.Render(string(label))))
	}

	b.WriteString("\n")
	switch {
	case snap.Loading:
		b.WriteString("  " + formatter.Dim("Updating...") + "\n")
	case snap.Success:
		b.WriteString("  " + formatter.StyleGreen.Render("✔ Updated") + "\n")
	case snap.Err != "":
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+snap.Err) + "\n")
	}

	return b.String()
}
