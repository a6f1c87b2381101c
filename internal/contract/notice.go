package contract

import "github.com/hrtools/noticedesk/internal/domain"

// DefaultPageSize is the page size used when a request does not set one.
const DefaultPageSize = 10

// ListRequest describes one page of the notice collection.
type ListRequest struct {
	Filter   domain.StatusFilter
	Page     int
	PageSize int
}

// NewListRequest returns a ListRequest with defaults: all statuses,
// first page, DefaultPageSize items.
func NewListRequest() ListRequest {
	return ListRequest{
		Filter:   domain.FilterAll,
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// Pagination mirrors the service's pagination envelope.
type Pagination struct {
	TotalItems  int
	CurrentPage int
	TotalPages  int
	PageSize    int
}

// ListResult is one fetched page of notices plus the service's counts.
type ListResult struct {
	Notices    []*domain.Notice
	Pagination Pagination
}

// StatusChange is the broadcast payload emitted after a successful
// status commit. Status carries the operator's chosen label, which may
// be Unpublished even though the wire only ever saw Draft.
type StatusChange struct {
	ID     string
	Status domain.UIStatus
}

// CreateRequest holds the fields submitted to create a notice.
// AttachmentPath is a local file path; only a single attachment is
// supported end to end.
type CreateRequest struct {
	TargetRecipient string
	Title           string
	EmployeeID      string
	EmployeeName    string
	Position        string
	Type            string
	Body            string
	PublishDate     string
	Status          domain.BackendStatus
	AttachmentPath  string
}

// NewCreateRequest returns a CreateRequest that submits as a draft.
func NewCreateRequest() CreateRequest {
	return CreateRequest{Status: domain.StatusDraft}
}

// CreateResult is the service's acknowledgement of a create.
type CreateResult struct {
	Message string
	Notice  *domain.Notice
}
