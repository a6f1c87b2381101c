package formatter

import (
	"fmt"
	"strings"

	"github.com/hrtools/noticedesk/internal/contract"
	"github.com/hrtools/noticedesk/internal/domain"
)

// StatusPill returns a colored indicator for a notice status label.
func StatusPill(status domain.UIStatus) string {
	switch status {
	case domain.UIPublished:
		return StyleGreen.Render("● Published")
	case domain.UIDraft:
		return StyleYellow.Render("○ Draft")
	case domain.UIUnpublished:
		return StyleDim.Render("⊘ Unpublished")
	default:
		return StyleDim.Render(string(status))
	}
}

// FilterBadge returns a styled label for the active status filter.
func FilterBadge(f domain.StatusFilter) string {
	if f == domain.FilterAll {
		return StyleBlue.Render("All statuses")
	}
	return StyleBlue.Render(string(f))
}

// FormatNoticeList renders a page of notices as an aligned table with a
// pagination footer.
func FormatNoticeList(notices []*domain.Notice, p contract.Pagination, filter domain.StatusFilter) string {
	var b strings.Builder

	b.WriteString(Header("Notices") + "\n")
	b.WriteString(FilterBadge(filter) + "\n\n")

	if len(notices) == 0 {
		b.WriteString(Dim("No notices found.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(notices))
	for _, n := range notices {
		rows = append(rows, []string{
			TruncID(n.ID),
			StyleFg.Render(PadRight(n.Title, 34)),
			StylePurple.Render(n.Type),
			StatusPill(n.DisplayStatus()),
			Dim(HumanDate(n.PublishDate)),
		})
	}
	b.WriteString(RenderTable(
		[]string{"ID", "Title", "Type", "Status", "Publish Date"},
		rows,
	))

	b.WriteString("\n" + Dim(fmt.Sprintf("Page %d of %d · %d notices",
		p.CurrentPage, p.TotalPages, p.TotalItems)) + "\n")

	return b.String()
}

// FormatNoticeDetail renders a single notice with all its fields.
func FormatNoticeDetail(n *domain.Notice) string {
	var b strings.Builder

	b.WriteString(Bold(n.Title) + "  " + StatusPill(n.DisplayStatus()) + "\n\n")

	rows := [][]string{
		{"Type", StylePurple.Render(n.Type)},
		{"Recipient", StyleFg.Render(n.TargetRecipient)},
		{"Employee", StyleFg.Render(n.EmployeeName) + " " + Dim("("+n.EmployeeID+")")},
		{"Position", StyleFg.Render(n.Position)},
		{"Publish Date", StyleFg.Render(HumanDate(n.PublishDate))},
		{"Updated", Dim(HumanTimestamp(n.UpdatedAt))},
	}
	if n.AttachmentURL != "" {
		rows = append(rows, []string{"Attachment", StyleBlue.Render(n.AttachmentURL)})
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim(PadRight(row[0], 12)), row[1]))
	}

	if n.Body != "" {
		b.WriteString("\n" + StyleFg.Render(n.Body) + "\n")
	}

	b.WriteString("\n" + Dim("id: "+n.ID) + "\n")

	return b.String()
}

// FormatCreateResult renders the outcome of a successful create.
func FormatCreateResult(res *contract.CreateResult) string {
	msg := res.Message
	if msg == "" {
		msg = "Notice created"
	}
	out := StyleGreen.Render("✔ ") + Bold(msg)
	if res.Notice != nil {
		out += "\n" + Dim("id: "+res.Notice.ID) + "  " + StatusPill(res.Notice.DisplayStatus())
	}
	return out + "\n"
}

// FormatStatusUpdated renders the outcome of a status change.
func FormatStatusUpdated(id string, status domain.UIStatus) string {
	return fmt.Sprintf("%s Status of %s set to %s\n",
		StyleGreen.Render("✔"), TruncID(id), StatusPill(status))
}
