package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hrtools/noticedesk/internal/cli/formatter"
	"github.com/hrtools/noticedesk/internal/domain"
	"github.com/hrtools/noticedesk/internal/service"
)

// noticesLoadedMsg signals that the board's controller finished a fetch.
type noticesLoadedMsg struct{}

// noticeBoardView is the home view: a filterable, paginated notice list.
type noticeBoardView struct {
	state    *SharedState
	ctrl     *service.ListQueryController
	cursor   int
	fetching bool
}

func newNoticeBoardView(state *SharedState) *noticeBoardView {
	app := state.App
	return &noticeBoardView{
		state: state,
		ctrl:  service.NewListQueryController(app.API, app.PageSize, app.Observer),
	}
}

func (v *noticeBoardView) ID() ViewID    { return ViewNoticeBoard }
func (v *noticeBoardView) Title() string { return "Board" }

func (v *noticeBoardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		key.NewBinding(key.WithKeys("←/→"), key.WithHelp("←/→", "page")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *noticeBoardView) Init() tea.Cmd {
	return v.fetchCmd()
}

// fetchCmd runs the controller's fetch off the update loop. The
// controller discards superseded responses itself, so overlapping
// fetches are safe.
func (v *noticeBoardView) fetchCmd() tea.Cmd {
	v.fetching = true
	ctrl := v.ctrl
	return func() tea.Msg {
		_ = ctrl.Fetch(context.Background())
		return noticesLoadedMsg{}
	}
}

func (v *noticeBoardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticesLoadedMsg:
		v.fetching = false
		snap := v.ctrl.Snapshot()
		if v.cursor >= len(snap.Items) {
			v.cursor = len(snap.Items) - 1
		}
		if v.cursor < 0 {
			v.cursor = 0
		}
		return v, nil

	case refreshViewMsg:
		return v, v.fetchCmd()

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *noticeBoardView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := v.ctrl.Snapshot()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(snap.Items)-1 {
			v.cursor++
		}
	case "left", "h":
		if snap.Page > 1 {
			v.ctrl.SetPage(snap.Page - 1)
			v.cursor = 0
			return v, v.fetchCmd()
		}
	case "right", "l":
		if snap.Page < snap.TotalPages {
			v.ctrl.SetPage(snap.Page + 1)
			v.cursor = 0
			return v, v.fetchCmd()
		}
	case "f", "tab":
		v.ctrl.SetFilter(nextFilter(snap.Filter))
		v.cursor = 0
		return v, v.fetchCmd()
	case "r":
		return v, v.fetchCmd()
	case "enter":
		if n := v.selected(snap.Items); n != nil {
			return v, pushView(newNoticeDetailView(v.state, n.ID))
		}
	case "s":
		if n := v.selected(snap.Items); n != nil {
			return v, pushView(newStatusDialogView(v.state, n.ID, n.Title, n.DisplayStatus()))
		}
	case "n":
		return v, pushView(newCreateFormView(v.state))
	}
	return v, nil
}

func (v *noticeBoardView) selected(items []*domain.Notice) *domain.Notice {
	if v.cursor < 0 || v.cursor >= len(items) {
		return nil
	}
	return items[v.cursor]
}

// nextFilter cycles through the filter choices in display order.
func nextFilter(f domain.StatusFilter) domain.StatusFilter {
	for i, cur := range domain.Filters {
		if cur == f {
			return domain.Filters[(i+1)%len(domain.Filters)]
		}
	}
	return domain.FilterAll
}

func (v *noticeBoardView) View() string {
	snap := v.ctrl.Snapshot()

	var b strings.Builder
	b.WriteString("\n  " + formatter.FilterBadge(snap.Filter))
	b.WriteString("  " + formatter.Dim(fmt.Sprintf("page %d/%d · %d notices", snap.Page, snap.TotalPages, snap.Total)))
	b.WriteString("\n\n")

	if v.fetching || snap.Loading {
		b.WriteString("  " + formatter.Dim("Loading notices...") + "\n")
		return b.String()
	}

	if snap.Err != "" {
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+snap.Err) + "\n")
		b.WriteString("  " + formatter.Dim("r: retry") + "\n")
		return b.String()
	}

	if len(snap.Items) == 0 {
		b.WriteString("  " + formatter.Dim("No notices found.") + "\n")
		return b.String()
	}

	for i, n := range snap.Items {
		cursor := "  "
		titleStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			titleStyle = formatter.StyleBold
		}

		b.WriteString(fmt.Sprintf("%s%s  %s  %s  %s\n",
			cursor,
			titleStyle.Render(formatter.PadRight(n.Title, 34)),
			formatter.StylePurple.Render(formatter.PadRight(n.Type, 12)),
			formatter.StatusPill(n.DisplayStatus()),
			formatter.Dim(formatter.HumanDate(n.PublishDate)),
		))
	}

	return b.String()
}
