package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hrtools/noticedesk/internal/cli/formatter"
	"github.com/hrtools/noticedesk/internal/domain"
)

// noticeLoadedMsg carries the result of a single-notice fetch.
type noticeLoadedMsg struct {
	notice *domain.Notice
	err    error
}

// noticeDetailView shows one notice in full, scrollable when the body
// exceeds the terminal height.
type noticeDetailView struct {
	state    *SharedState
	noticeID string
	notice   *domain.Notice
	loading  bool
	errMsg   string
	vp       viewport.Model
}

func newNoticeDetailView(state *SharedState, id string) *noticeDetailView {
	vp := viewport.New(state.Width, state.ContentHeight())
	return &noticeDetailView{
		state:    state,
		noticeID: id,
		loading:  true,
		vp:       vp,
	}
}

func (v *noticeDetailView) ID() ViewID    { return ViewNoticeDetail }
func (v *noticeDetailView) Title() string { return "Notice" }

func (v *noticeDetailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
		key.NewBinding(key.WithKeys("↑/↓"), key.WithHelp("↑/↓", "scroll")),
	}
}

func (v *noticeDetailView) Init() tea.Cmd {
	return v.load()
}

func (v *noticeDetailView) load() tea.Cmd {
	app := v.state.App
	id := v.noticeID
	return func() tea.Msg {
		n, err := app.API.GetNotice(context.Background(), id)
		return noticeLoadedMsg{notice: n, err: err}
	}
}

func (v *noticeDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.errMsg = userFacing(msg.err)
			return v, nil
		}
		v.errMsg = ""
		v.notice = msg.notice
		v.vp.SetContent(formatter.FormatNoticeDetail(v.notice))
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			v.loading = true
			return v, v.load()
		case "s":
			if v.notice != nil {
				return v, pushView(newStatusDialogView(v.state, v.notice.ID, v.notice.Title, v.notice.DisplayStatus()))
			}
		default:
			var cmd tea.Cmd
			v.vp, cmd = v.vp.Update(msg)
			return v, cmd
		}
	}
	return v, nil
}

func (v *noticeDetailView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading notice...")
	}
	if v.errMsg != "" {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.errMsg) + "\n  " + formatter.Dim("r: retry")
	}
	return "\n" + v.vp.View()
}
