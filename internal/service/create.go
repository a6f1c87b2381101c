package service

import (
	"context"
	"strings"
	"time"

	"github.com/hrtools/noticedesk/internal/contract"
	"github.com/hrtools/noticedesk/internal/domain"
)

// Creator is the slice of the notice client used for creating notices.
type Creator interface {
	CreateNotice(ctx context.Context, req contract.CreateRequest) (*contract.CreateResult, error)
}

// CreateNotice validates a create request, applies the fallback
// identity to blank employee fields, and submits it. Fallback
// application is an explicit step recorded through the observer so
// misattributed records can be traced, never a silent substitution.
func CreateNotice(ctx context.Context, client Creator, observer UseCaseObserver, req contract.CreateRequest) (*contract.CreateResult, error) {
	observer = observerOrNoop(observer)

	if err := validateCreate(req); err != nil {
		return nil, err
	}

	substituted := applyFallbackIdentity(&req)

	start := time.Now()
	res, err := client.CreateNotice(ctx, req)

	observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "create_notice",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		StartedAt: start,
		Fields: map[string]any{
			"status":            string(req.Status),
			"notice_type":       req.Type,
			"fallback_identity": strings.Join(substituted, ","),
			"has_attachment":    req.AttachmentPath != "",
		},
	})

	return res, err
}

func validateCreate(req contract.CreateRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return &ValidationError{Msg: "notice title is required"}
	}
	if strings.TrimSpace(req.TargetRecipient) == "" {
		return &ValidationError{Msg: "target recipient is required"}
	}
	if strings.TrimSpace(req.Type) == "" {
		return &ValidationError{Msg: "notice type is required"}
	}
	if !domain.ValidDate(req.PublishDate) {
		return &ValidationError{Msg: "publish date must be YYYY-MM-DD"}
	}
	if req.Status != domain.StatusPublished && req.Status != domain.StatusDraft {
		return &ValidationError{Msg: "status must be Published or Draft"}
	}
	return nil
}

// applyFallbackIdentity fills blank employee fields with the documented
// defaults and returns the names of the fields that were substituted.
func applyFallbackIdentity(req *contract.CreateRequest) []string {
	var substituted []string
	if strings.TrimSpace(req.EmployeeID) == "" {
		req.EmployeeID = domain.FallbackEmployeeID
		substituted = append(substituted, "employeeId")
	}
	if strings.TrimSpace(req.EmployeeName) == "" {
		req.EmployeeName = domain.FallbackEmployeeName
		substituted = append(substituted, "employeeName")
	}
	if strings.TrimSpace(req.Position) == "" {
		req.Position = domain.FallbackPosition
		substituted = append(substituted, "position")
	}
	return substituted
}
