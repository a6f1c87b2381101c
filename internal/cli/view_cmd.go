package cli

import (
	"context"
	"fmt"

	"github.com/hrtools/noticedesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newViewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view <notice-id>",
		Short: "Show a single notice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.API.GetNotice(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("%s", userFacing(err))
			}
			fmt.Print(formatter.FormatNoticeDetail(n))
			return nil
		},
	}
}
