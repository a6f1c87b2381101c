package service

import (
	"context"
	"sync"
	"time"

	"github.com/hrtools/noticedesk/internal/api"
	"github.com/hrtools/noticedesk/internal/contract"
	"github.com/hrtools/noticedesk/internal/domain"
)

// Lister is the slice of the notice client the list controller needs.
type Lister interface {
	ListNotices(ctx context.Context, req contract.ListRequest) (*contract.ListResult, error)
}

// ListSnapshot is the renderable state of a ListQueryController.
type ListSnapshot struct {
	Items      []*domain.Notice
	Total      int
	TotalPages int
	Page       int
	PageSize   int
	Filter     domain.StatusFilter
	Loading    bool
	Err        string // operator-facing message, empty when none
}

// ListQueryController owns the query parameters for one paginated list
// view and reconciles its state with the notice service. It guarantees
// that the most recently initiated fetch is the one reflected in final
// state: an in-flight fetch is cancelled when superseded, and a stale
// response that arrives late is discarded by generation check.
type ListQueryController struct {
	client   Lister
	observer UseCaseObserver

	mu         sync.Mutex
	filter     domain.StatusFilter
	page       int
	pageSize   int
	items      []*domain.Notice
	total      int
	totalPages int
	loading    bool
	errMsg     string

	gen    int // fetch generation; a response commits only if still current
	cancel context.CancelFunc
}

// NewListQueryController creates a controller showing all statuses from
// page 1. pageSize is fixed for the controller's lifetime.
func NewListQueryController(client Lister, pageSize int, observer UseCaseObserver) *ListQueryController {
	if pageSize <= 0 {
		pageSize = contract.DefaultPageSize
	}
	return &ListQueryController{
		client:     client,
		observer:   observerOrNoop(observer),
		filter:     domain.FilterAll,
		page:       1,
		pageSize:   pageSize,
		totalPages: 1,
	}
}

// SetFilter replaces the status filter and resets the page to 1. A
// filter change never preserves an out-of-range page against the new
// result set.
func (c *ListQueryController) SetFilter(f domain.StatusFilter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = f
	c.page = 1
}

// SetPage replaces the page, floored at 1. The next fetch response is
// authoritative for clamping against the real page count.
func (c *ListQueryController) SetPage(p int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p < 1 {
		p = 1
	}
	c.page = p
}

// Refresh re-issues the fetch with current parameters. Used to
// resynchronize after a mutation performed elsewhere.
func (c *ListQueryController) Refresh(ctx context.Context) error {
	return c.Fetch(ctx)
}

// Fetch loads the current page from the service and commits the result,
// unless a newer fetch has been initiated in the meantime. When the
// response reports fewer pages than the current page number, the page
// is clamped down and refetched so the visible rows match.
func (c *ListQueryController) Fetch(ctx context.Context) error {
	for {
		refetch, err := c.fetchOnce(ctx)
		if !refetch {
			return err
		}
	}
}

func (c *ListQueryController) fetchOnce(ctx context.Context) (refetch bool, err error) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	if c.cancel != nil {
		c.cancel() // supersede the in-flight fetch
	}
	fctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.loading = true
	c.errMsg = ""
	req := contract.ListRequest{Filter: c.filter, Page: c.page, PageSize: c.pageSize}
	c.mu.Unlock()

	start := time.Now()
	res, fetchErr := c.client.ListNotices(fctx, req)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		// A newer fetch was initiated; this response is stale.
		return false, nil
	}
	c.loading = false
	c.cancel = nil

	c.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "list_notices",
		Duration:  time.Since(start),
		Success:   fetchErr == nil,
		Err:       fetchErr,
		StartedAt: start,
		Fields: map[string]any{
			"filter": string(req.Filter),
			"page":   req.Page,
		},
	})

	if fetchErr != nil {
		c.errMsg = api.UserMessage(fetchErr)
		c.items = nil
		c.total = 0
		c.totalPages = 1
		return false, fetchErr
	}

	c.items = res.Notices
	c.total = res.Pagination.TotalItems
	c.totalPages = res.Pagination.TotalPages
	if c.totalPages < 1 {
		c.totalPages = 1
	}
	if c.page > c.totalPages {
		c.page = c.totalPages
		return true, nil
	}
	return false, nil
}

// Snapshot returns a copy of the controller's renderable state.
func (c *ListQueryController) Snapshot() ListSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]*domain.Notice, len(c.items))
	copy(items, c.items)

	return ListSnapshot{
		Items:      items,
		Total:      c.total,
		TotalPages: c.totalPages,
		Page:       c.page,
		PageSize:   c.pageSize,
		Filter:     c.filter,
		Loading:    c.loading,
		Err:        c.errMsg,
	}
}

// Close cancels any in-flight fetch. Call when the owning view is torn
// down.
func (c *ListQueryController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++ // ensure a late response is treated as stale
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.loading = false
}
