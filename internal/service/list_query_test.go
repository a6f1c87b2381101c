package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hrtools/noticedesk/internal/api"
	"github.com/hrtools/noticedesk/internal/contract"
	"github.com/hrtools/noticedesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_SinglePage(t *testing.T) {
	lister := &fakeLister{respond: func(req contract.ListRequest) (*contract.ListResult, error) {
		return resultPage(6, 6, 1, 1, 10), nil
	}}
	ctrl := NewListQueryController(lister, 10, nil)

	err := ctrl.Fetch(context.Background())
	require.NoError(t, err)

	snap := ctrl.Snapshot()
	assert.Len(t, snap.Items, 6)
	assert.Equal(t, 6, snap.Total)
	assert.Equal(t, 1, snap.TotalPages)
	assert.Equal(t, 1, snap.Page)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Err)
}

func TestSetFilter_ResetsPage(t *testing.T) {
	lister := &fakeLister{respond: func(req contract.ListRequest) (*contract.ListResult, error) {
		return resultPage(0, 0, 1, req.Page, 10), nil
	}}
	ctrl := NewListQueryController(lister, 10, nil)

	ctrl.SetPage(5)
	assert.Equal(t, 5, ctrl.Snapshot().Page)

	ctrl.SetFilter(domain.FilterPublished)
	snap := ctrl.Snapshot()
	assert.Equal(t, 1, snap.Page)
	assert.Equal(t, domain.FilterPublished, snap.Filter)
}

func TestSetPage_FlooredAtOne(t *testing.T) {
	ctrl := NewListQueryController(&fakeLister{}, 10, nil)
	ctrl.SetPage(0)
	assert.Equal(t, 1, ctrl.Snapshot().Page)
	ctrl.SetPage(-4)
	assert.Equal(t, 1, ctrl.Snapshot().Page)
}

func TestFetch_ClampsPageAndRefetches(t *testing.T) {
	// The service now reports a single page; a controller sitting on
	// page 3 must clamp down and refetch so its rows match.
	lister := &fakeLister{respond: func(req contract.ListRequest) (*contract.ListResult, error) {
		if req.Page > 1 {
			return resultPage(0, 2, 1, req.Page, 10), nil
		}
		return resultPage(2, 2, 1, 1, 10), nil
	}}
	ctrl := NewListQueryController(lister, 10, nil)
	ctrl.SetPage(3)

	err := ctrl.Fetch(context.Background())
	require.NoError(t, err)

	reqs := lister.recorded()
	require.Len(t, reqs, 2)
	assert.Equal(t, 3, reqs[0].Page)
	assert.Equal(t, 1, reqs[1].Page)

	snap := ctrl.Snapshot()
	assert.Equal(t, 1, snap.Page)
	assert.Len(t, snap.Items, 2)
}

func TestFetch_PageNeverExceedsTotalPages(t *testing.T) {
	lister := &fakeLister{respond: func(req contract.ListRequest) (*contract.ListResult, error) {
		return resultPage(0, 0, 1, req.Page, 10), nil
	}}
	ctrl := NewListQueryController(lister, 10, nil)

	for _, p := range []int{1, 2, 7, 50} {
		ctrl.SetPage(p)
		require.NoError(t, ctrl.Fetch(context.Background()))
		snap := ctrl.Snapshot()
		assert.LessOrEqual(t, snap.Page, snap.TotalPages)
		assert.GreaterOrEqual(t, snap.TotalPages, 1)
	}
}

func TestFetch_ErrorResetsItems(t *testing.T) {
	failing := true
	lister := &fakeLister{respond: func(req contract.ListRequest) (*contract.ListResult, error) {
		if failing {
			return nil, api.ErrTimeout
		}
		return resultPage(3, 3, 1, 1, 10), nil
	}}
	ctrl := NewListQueryController(lister, 10, nil)

	// Load data, then fail: the error wipes items and total.
	failing = false
	require.NoError(t, ctrl.Fetch(context.Background()))
	failing = true
	err := ctrl.Fetch(context.Background())
	require.Error(t, err)

	snap := ctrl.Snapshot()
	assert.Empty(t, snap.Items)
	assert.Zero(t, snap.Total)
	assert.NotEmpty(t, snap.Err)
	assert.False(t, snap.Loading)

	// A successful refresh clears the error.
	failing = false
	require.NoError(t, ctrl.Refresh(context.Background()))
	snap = ctrl.Snapshot()
	assert.Empty(t, snap.Err)
	assert.Len(t, snap.Items, 3)
}

func TestFetch_StaleResponseDiscarded(t *testing.T) {
	lister := newBlockingLister()
	ctrl := NewListQueryController(lister, 10, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ctrl.Fetch(context.Background())
	}()
	first := <-lister.calls

	// A second fetch is initiated before the first resolves.
	ctrl.SetFilter(domain.FilterDraft)
	wg.Add(1)
	go func() {
		defer wg.Done()
		ctrl.Fetch(context.Background())
	}()
	second := <-lister.calls

	// The second (later-initiated) fetch resolves first.
	second.respond <- listReply{res: resultPage(1, 1, 1, 1, 10)}
	// The first response arrives late and must not overwrite state.
	first.respond <- listReply{res: resultPage(9, 9, 1, 1, 10)}
	wg.Wait()

	snap := ctrl.Snapshot()
	assert.Len(t, snap.Items, 1)
	assert.Equal(t, 1, snap.Total)
	assert.Equal(t, domain.FilterDraft, snap.Filter)
	assert.False(t, snap.Loading)
}

func TestFetch_SupersededFetchIsCancelled(t *testing.T) {
	lister := newBlockingLister()
	ctrl := NewListQueryController(lister, 10, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ctrl.Fetch(context.Background())
	}()
	<-lister.calls // first fetch is now in flight; leave it parked

	wg.Add(1)
	go func() {
		defer wg.Done()
		ctrl.Fetch(context.Background())
	}()
	second := <-lister.calls
	second.respond <- listReply{res: resultPage(2, 2, 1, 1, 10)}

	// The first call's context was cancelled by the second fetch, so
	// both goroutines finish without the test touching the first call.
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("superseded fetch was not cancelled")
	}

	assert.Len(t, ctrl.Snapshot().Items, 2)
}

func TestClose_CancelsInFlightFetch(t *testing.T) {
	lister := newBlockingLister()
	ctrl := NewListQueryController(lister, 10, nil)

	done := make(chan struct{})
	go func() {
		ctrl.Fetch(context.Background())
		close(done)
	}()
	<-lister.calls

	ctrl.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not cancel the in-flight fetch")
	}
	assert.False(t, ctrl.Snapshot().Loading)
}

func TestFetch_RecordsUseCaseEvents(t *testing.T) {
	obs := &captureObserver{}
	lister := &fakeLister{respond: func(req contract.ListRequest) (*contract.ListResult, error) {
		return resultPage(1, 1, 1, 1, 10), nil
	}}
	ctrl := NewListQueryController(lister, 10, obs)

	require.NoError(t, ctrl.Fetch(context.Background()))

	events := obs.recorded()
	require.Len(t, events, 1)
	assert.Equal(t, "list_notices", events[0].Name)
	assert.True(t, events[0].Success)
	assert.Equal(t, "all", events[0].Fields["filter"])
}
