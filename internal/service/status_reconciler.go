package service

import (
	"context"
	"sync"
	"time"

	"github.com/hrtools/noticedesk/internal/api"
	"github.com/hrtools/noticedesk/internal/contract"
	"github.com/hrtools/noticedesk/internal/domain"
)

// StatusUpdater is the slice of the notice client the reconciler needs.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, id string, status domain.BackendStatus) error
}

// ReconcilerSnapshot is the renderable state of one status-change
// workflow.
type ReconcilerSnapshot struct {
	Open     bool
	TargetID string
	Current  domain.UIStatus
	Selected domain.UIStatus
	Loading  bool
	Err      string
	Success  bool
}

// StatusReconciler owns the transient state of a single status-change
// operation. The operator picks one of the three UI labels; Commit
// translates it to the service's two-value vocabulary, performs the
// update, and on success broadcasts the change (carrying the UI label,
// not the wire value) through the feed exactly once.
type StatusReconciler struct {
	client   StatusUpdater
	feed     *StatusFeed
	observer UseCaseObserver

	mu       sync.Mutex
	open     bool
	targetID string
	current  domain.UIStatus
	selected domain.UIStatus
	loading  bool
	errMsg   string
	success  bool
}

// NewStatusReconciler creates a reconciler that publishes successful
// commits to feed. feed may be nil, in which case nothing is broadcast.
func NewStatusReconciler(client StatusUpdater, feed *StatusFeed, observer UseCaseObserver) *StatusReconciler {
	return &StatusReconciler{
		client:   client,
		feed:     feed,
		observer: observerOrNoop(observer),
	}
}

// Open resets all transient state and seeds the selection from the
// row's current status label. An unrecognized label seeds Published.
func (r *StatusReconciler) Open(id string, current domain.UIStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.open = true
	r.targetID = id
	r.current = current
	r.loading = false
	r.errMsg = ""
	r.success = false

	if current.Valid() {
		r.selected = current
	} else {
		r.selected = domain.UIPublished
	}
}

// Select records the operator's choice. Pure state update; nothing is
// submitted until Commit.
func (r *StatusReconciler) Select(label domain.UIStatus) {
	if !label.Valid() {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selected = label
}

// Commit submits the selected label. A missing id fails locally without
// any network call. A selection identical to the current status is
// still submitted; the update is idempotent on the service side. On
// success the change is broadcast with the operator's chosen label and
// the target id.
func (r *StatusReconciler) Commit(ctx context.Context) error {
	r.mu.Lock()
	if r.loading {
		r.mu.Unlock()
		return nil // commit already in flight
	}
	if r.targetID == "" {
		r.errMsg = "Missing notice id"
		r.mu.Unlock()
		return &ValidationError{Msg: "missing notice id"}
	}
	r.loading = true
	r.errMsg = ""
	id := r.targetID
	selected := r.selected
	r.mu.Unlock()

	start := time.Now()
	err := r.client.UpdateStatus(ctx, id, selected.Backend())

	r.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "update_notice_status",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		StartedAt: start,
		Fields: map[string]any{
			"notice_id":  id,
			"ui_status":  string(selected),
			"api_status": string(selected.Backend()),
		},
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false

	if err != nil {
		r.errMsg = api.UserMessage(err)
		return err
	}

	r.success = true
	if r.feed != nil {
		r.feed.Publish(contract.StatusChange{ID: id, Status: selected})
	}
	return nil
}

// Close clears all transient state. It is refused while a commit is in
// flight so a pending result is never silently discarded; the caller
// should retry once the commit settles.
func (r *StatusReconciler) Close() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loading {
		return false
	}
	r.open = false
	r.targetID = ""
	r.current = ""
	r.selected = ""
	r.errMsg = ""
	r.success = false
	return true
}

// Snapshot returns a copy of the reconciler's renderable state.
func (r *StatusReconciler) Snapshot() ReconcilerSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return ReconcilerSnapshot{
		Open:     r.open,
		TargetID: r.targetID,
		Current:  r.current,
		Selected: r.selected,
		Loading:  r.loading,
		Err:      r.errMsg,
		Success:  r.success,
	}
}
