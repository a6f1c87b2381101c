package domain

import "fmt"

// BackendStatus is the status vocabulary the notice service accepts and
// returns. The service knows exactly two values; there is no third state
// on the wire.
type BackendStatus string

const (
	StatusPublished BackendStatus = "Published"
	StatusDraft     BackendStatus = "Draft"
)

// UIStatus is the label vocabulary shown to the operator. It adds
// "Unpublished" as an operator-facing alias that collapses to Draft on
// the wire. Display is a pure passthrough of the backend value: a
// backend Draft always renders as "Draft". Unpublished only appears
// when the operator explicitly chooses it (filter or status change).
type UIStatus string

const (
	UIPublished   UIStatus = "Published"
	UIDraft       UIStatus = "Draft"
	UIUnpublished UIStatus = "Unpublished"
)

// Backend translates a UI label into the two-value backend vocabulary.
func (s UIStatus) Backend() BackendStatus {
	if s == UIUnpublished {
		return StatusDraft
	}
	if s == UIDraft {
		return StatusDraft
	}
	return StatusPublished
}

// Valid reports whether s is one of the three operator labels.
func (s UIStatus) Valid() bool {
	switch s {
	case UIPublished, UIDraft, UIUnpublished:
		return true
	}
	return false
}

// DisplayStatus projects a backend value into the operator label set.
// Draft and Published pass through unchanged.
func DisplayStatus(s BackendStatus) UIStatus {
	if s == StatusDraft {
		return UIDraft
	}
	return UIPublished
}

// ParseUIStatus parses an operator-supplied status label.
func ParseUIStatus(s string) (UIStatus, error) {
	v := UIStatus(s)
	if !v.Valid() {
		return "", fmt.Errorf("invalid status %q (expected Published, Draft, or Unpublished)", s)
	}
	return v, nil
}

// StatusFilter is the list-view filter vocabulary: "all" plus the three
// operator labels.
type StatusFilter string

const (
	FilterAll         StatusFilter = "all"
	FilterPublished   StatusFilter = StatusFilter(UIPublished)
	FilterDraft       StatusFilter = StatusFilter(UIDraft)
	FilterUnpublished StatusFilter = StatusFilter(UIUnpublished)
)

// Filters lists the filter choices in display order.
var Filters = []StatusFilter{FilterAll, FilterPublished, FilterUnpublished, FilterDraft}

// BackendParam returns the backend status to send as the list query's
// status parameter. ok is false for FilterAll, meaning the parameter is
// omitted entirely. Unpublished collapses to Draft.
func (f StatusFilter) BackendParam() (BackendStatus, bool) {
	switch f {
	case FilterPublished:
		return StatusPublished, true
	case FilterDraft, FilterUnpublished:
		return StatusDraft, true
	}
	return "", false
}

// Valid reports whether f is a recognized filter value.
func (f StatusFilter) Valid() bool {
	switch f {
	case FilterAll, FilterPublished, FilterDraft, FilterUnpublished:
		return true
	}
	return false
}

// ParseStatusFilter parses an operator-supplied filter value.
func ParseStatusFilter(s string) (StatusFilter, error) {
	f := StatusFilter(s)
	if !f.Valid() {
		return "", fmt.Errorf("invalid status filter %q (expected all, Published, Draft, or Unpublished)", s)
	}
	return f, nil
}
