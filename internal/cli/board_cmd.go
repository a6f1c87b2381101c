package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hrtools/noticedesk/internal/cli/formatter"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive notice board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(app)
		},
	}
}

func runBoard(app *App) error {
	m := newAppModel(app)
	if !app.API.Available(context.Background()) {
		m.flashText = formatter.Dim("Notice service is unreachable. Check NOTICEDESK_BASE_URL.")
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running notice board: %w", err)
	}
	return nil
}
