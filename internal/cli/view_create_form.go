package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/hrtools/noticedesk/internal/cli/formatter"
	"github.com/hrtools/noticedesk/internal/contract"
	"github.com/hrtools/noticedesk/internal/domain"
)

// newCreateFormView builds the wizard for creating a notice. Blank
// employee fields stay blank here; the create use case substitutes the
// fallback identity and records that it did.
func newCreateFormView(state *SharedState) View {
	var (
		title       string
		noticeType  string
		recipient   string
		employeeID  string
		employee    string
		position    string
		body        string
		publishDate string
		attachment  string
		publish     bool
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Office closure on Friday").
				Value(&title).
				Validate(validateRequired("title")),
			noticeTypeSelect(&noticeType),
			targetKindSelect(&recipient),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Employee ID (blank for N/A)").
				Value(&employeeID),
			huh.NewInput().
				Title("Employee Name (blank for All Staff)").
				Value(&employee),
			huh.NewInput().
				Title("Position (blank for N/A)").
				Value(&position),
		),
		huh.NewGroup(
			dateInput("Publish Date", &publishDate),
			huh.NewText().
				Title("Body (optional)").
				Value(&body),
			huh.NewInput().
				Title("Attachment path (optional)").
				Value(&attachment).
				Validate(validateOptionalFile),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Publish immediately?").
				Affirmative("Publish").
				Negative("Save as Draft").
				Value(&publish),
		),
	).WithTheme(noticeHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		app := state.App
		return func() tea.Msg {
			req := contract.NewCreateRequest()
			req.Title = title
			req.Type = noticeType
			req.TargetRecipient = recipient
			req.EmployeeID = employeeID
			req.EmployeeName = employee
			req.Position = position
			req.Body = body
			req.PublishDate = domain.NormalizeDate(publishDate)
			req.AttachmentPath = attachment
			if publish {
				req.Status = domain.StatusPublished
			}

			res, err := createNotice(context.Background(), app, req)
			if err != nil {
				return flashMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
			}
			msg := res.Message
			if msg == "" {
				msg = "Notice created"
			}
			return flashMsg{text: formatter.StyleGreen.Render("✔ ") + formatter.Bold(msg)}
		}
	}

	return newWizardView(state, "New Notice", form, done)
}
