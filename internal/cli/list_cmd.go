package cli

import (
	"context"
	"fmt"

	"github.com/hrtools/noticedesk/internal/cli/formatter"
	"github.com/hrtools/noticedesk/internal/contract"
	"github.com/hrtools/noticedesk/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var status string
	var page int
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notices",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := domain.FilterAll
			if status != "" {
				f, err := domain.ParseStatusFilter(status)
				if err != nil {
					return err
				}
				filter = f
			}

			req := contract.NewListRequest()
			req.Filter = filter
			if page > 0 {
				req.Page = page
			}
			if limit > 0 {
				req.PageSize = limit
			} else if app.PageSize > 0 {
				req.PageSize = app.PageSize
			}

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner("Fetching notices...")
			}
			res, err := app.API.ListNotices(context.Background(), req)
			stop()
			if err != nil {
				return fmt.Errorf("%s", userFacing(err))
			}

			fmt.Print(formatter.FormatNoticeList(res.Notices, res.Pagination, filter))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (Published, Draft, Unpublished)")
	cmd.Flags().IntVar(&page, "page", 0, "Page number (1-based)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Notices per page")

	return cmd
}
