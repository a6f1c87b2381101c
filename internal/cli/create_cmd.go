package cli

import (
	"context"
	"fmt"

	"github.com/hrtools/noticedesk/internal/cli/formatter"
	"github.com/hrtools/noticedesk/internal/contract"
	"github.com/hrtools/noticedesk/internal/domain"
	"github.com/spf13/cobra"
)

func newCreateCmd(app *App) *cobra.Command {
	var (
		title       string
		noticeType  string
		recipient   string
		employeeID  string
		employee    string
		position    string
		body        string
		publishDate string
		attachments []string
		publish     bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a notice",
		RunE: func(cmd *cobra.Command, args []string) error {
			// One attachment slot on the wire; refusing extras beats
			// silently dropping them.
			if len(attachments) > 1 {
				return fmt.Errorf("only one attachment is supported, got %d", len(attachments))
			}

			req := contract.NewCreateRequest()
			req.Title = title
			req.Type = noticeType
			req.TargetRecipient = recipient
			req.EmployeeID = employeeID
			req.EmployeeName = employee
			req.Position = position
			req.Body = body
			req.PublishDate = domain.NormalizeDate(publishDate)
			if len(attachments) == 1 {
				req.AttachmentPath = attachments[0]
			}
			if publish {
				req.Status = domain.StatusPublished
			}

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner("Creating notice...")
			}
			res, err := createNotice(context.Background(), app, req)
			stop()
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatCreateResult(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Notice title (required)")
	cmd.Flags().StringVar(&noticeType, "type", "", "Notice type, e.g. General or Meeting (required)")
	cmd.Flags().StringVar(&recipient, "recipient", "", "Target recipient: Individual or Department (required)")
	cmd.Flags().StringVar(&employeeID, "employee-id", "", "Employee ID (defaults to N/A)")
	cmd.Flags().StringVar(&employee, "employee", "", "Employee name (defaults to All Staff)")
	cmd.Flags().StringVar(&position, "position", "", "Employee position (defaults to N/A)")
	cmd.Flags().StringVar(&body, "body", "", "Notice body text")
	cmd.Flags().StringVar(&publishDate, "date", "", "Publish date, YYYY-MM-DD (required)")
	cmd.Flags().StringArrayVar(&attachments, "attachment", nil, "Path to an attachment file (at most one)")
	cmd.Flags().BoolVar(&publish, "publish", false, "Publish immediately instead of saving as draft")

	for _, f := range []string{"title", "type", "recipient", "date"} {
		_ = cmd.MarkFlagRequired(f)
	}

	return cmd
}
