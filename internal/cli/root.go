package cli

import (
	"github.com/hrtools/noticedesk/internal/api"
	"github.com/hrtools/noticedesk/internal/service"
	"github.com/spf13/cobra"
)

// App holds the wired dependencies used by CLI commands and TUI views.
type App struct {
	API      api.Client
	Feed     *service.StatusFeed
	Observer service.UseCaseObserver

	// Default page size for notice listings.
	PageSize int

	// IsInteractive reports whether stdin is a terminal. Set by main;
	// nil means non-interactive.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "noticedesk" command and registers all
// subcommands against the provided App. Running it bare in a terminal
// opens the notice board TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "noticedesk",
		Short: "Notice board administration from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runBoard(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newBoardCmd(app),
		newListCmd(app),
		newViewCmd(app),
		newCreateCmd(app),
		newStatusCmd(app),
	)

	return root
}
