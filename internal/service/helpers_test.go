package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/hrtools/noticedesk/internal/contract"
	"github.com/hrtools/noticedesk/internal/domain"
)

// fakeLister serves canned pages and records every request it sees.
type fakeLister struct {
	mu       sync.Mutex
	requests []contract.ListRequest
	respond  func(req contract.ListRequest) (*contract.ListResult, error)
}

func (f *fakeLister) ListNotices(ctx context.Context, req contract.ListRequest) (*contract.ListResult, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.respond(req)
}

func (f *fakeLister) recorded() []contract.ListRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]contract.ListRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// resultPage builds a ListResult with count generated notices.
func resultPage(count, totalItems, totalPages, currentPage, pageSize int) *contract.ListResult {
	notices := make([]*domain.Notice, count)
	for i := range notices {
		notices[i] = &domain.Notice{
			ID:     fmt.Sprintf("n%d", i+1),
			Title:  fmt.Sprintf("Notice %d", i+1),
			Status: domain.StatusPublished,
		}
	}
	return &contract.ListResult{
		Notices: notices,
		Pagination: contract.Pagination{
			TotalItems:  totalItems,
			CurrentPage: currentPage,
			TotalPages:  totalPages,
			PageSize:    pageSize,
		},
	}
}

// blockingLister parks each call until the test responds, exposing the
// call's request and context.
type blockingLister struct {
	calls chan *listCall
}

type listCall struct {
	req     contract.ListRequest
	respond chan listReply
}

type listReply struct {
	res *contract.ListResult
	err error
}

func newBlockingLister() *blockingLister {
	return &blockingLister{calls: make(chan *listCall, 4)}
}

func (b *blockingLister) ListNotices(ctx context.Context, req contract.ListRequest) (*contract.ListResult, error) {
	call := &listCall{req: req, respond: make(chan listReply, 1)}
	b.calls <- call
	select {
	case r := <-call.respond:
		return r.res, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// fakeUpdater records status updates and fails when err is set.
type fakeUpdater struct {
	mu    sync.Mutex
	calls []updateCall
	err   error
}

type updateCall struct {
	id     string
	status domain.BackendStatus
}

func (f *fakeUpdater) UpdateStatus(ctx context.Context, id string, status domain.BackendStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, updateCall{id: id, status: status})
	return f.err
}

func (f *fakeUpdater) recorded() []updateCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]updateCall, len(f.calls))
	copy(out, f.calls)
	return out
}

// blockingUpdater parks each update until the test releases it.
type blockingUpdater struct {
	started chan struct{}
	release chan error
}

func newBlockingUpdater() *blockingUpdater {
	return &blockingUpdater{
		started: make(chan struct{}, 1),
		release: make(chan error, 1),
	}
}

func (b *blockingUpdater) UpdateStatus(ctx context.Context, id string, status domain.BackendStatus) error {
	b.started <- struct{}{}
	return <-b.release
}

// fakeCreator records create requests.
type fakeCreator struct {
	mu   sync.Mutex
	reqs []contract.CreateRequest
	res  *contract.CreateResult
	err  error
}

func (f *fakeCreator) CreateNotice(ctx context.Context, req contract.CreateRequest) (*contract.CreateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	if f.res != nil {
		return f.res, f.err
	}
	return &contract.CreateResult{Message: "ok"}, f.err
}

func (f *fakeCreator) recorded() []contract.CreateRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]contract.CreateRequest, len(f.reqs))
	copy(out, f.reqs)
	return out
}

// captureObserver records use-case events for assertions.
type captureObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (c *captureObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *captureObserver) recorded() []UseCaseEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]UseCaseEvent, len(c.events))
	copy(out, c.events)
	return out
}
