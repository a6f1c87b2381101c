package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrtools/noticedesk/internal/cli/formatter"
	"github.com/hrtools/noticedesk/internal/domain"
	"github.com/hrtools/noticedesk/internal/service"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <notice-id> <Published|Draft|Unpublished>",
		Short: "Change the status of a notice",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			label, err := domain.ParseUIStatus(args[1])
			if err != nil {
				return err
			}

			rec := service.NewStatusReconciler(app.API, app.Feed, app.Observer)
			rec.Open(args[0], label)
			rec.Select(label)

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner("Updating status...")
			}
			err = rec.Commit(context.Background())
			stop()
			if err != nil {
				var vErr *service.ValidationError
				if errors.As(err, &vErr) {
					return errors.New(vErr.Msg)
				}
				return fmt.Errorf("%s", userFacing(err))
			}

			fmt.Print(formatter.FormatStatusUpdated(args[0], label))
			return nil
		},
	}
}
