package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUIStatus_Backend_CollapsesToTwoValues(t *testing.T) {
	// The backend only ever sees Published or Draft.
	assert.Equal(t, StatusPublished, UIPublished.Backend())
	assert.Equal(t, StatusDraft, UIDraft.Backend())
	assert.Equal(t, StatusDraft, UIUnpublished.Backend())
}

func TestDisplayStatus_Passthrough(t *testing.T) {
	// Display never invents Unpublished; Draft stays Draft.
	assert.Equal(t, UIPublished, DisplayStatus(StatusPublished))
	assert.Equal(t, UIDraft, DisplayStatus(StatusDraft))
}

func TestDisplayStatus_RoundTrip(t *testing.T) {
	for _, s := range []BackendStatus{StatusPublished, StatusDraft} {
		assert.Equal(t, s, DisplayStatus(s).Backend())
	}
}

func TestParseUIStatus(t *testing.T) {
	for _, valid := range []string{"Published", "Draft", "Unpublished"} {
		s, err := ParseUIStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, UIStatus(valid), s)
	}

	_, err := ParseUIStatus("published")
	assert.Error(t, err)
	_, err = ParseUIStatus("Archived")
	assert.Error(t, err)
}

func TestStatusFilter_BackendParam(t *testing.T) {
	s, ok := FilterPublished.BackendParam()
	assert.True(t, ok)
	assert.Equal(t, StatusPublished, s)

	s, ok = FilterDraft.BackendParam()
	assert.True(t, ok)
	assert.Equal(t, StatusDraft, s)

	// Unpublished maps to Draft on the wire; the service has no third value.
	s, ok = FilterUnpublished.BackendParam()
	assert.True(t, ok)
	assert.Equal(t, StatusDraft, s)

	_, ok = FilterAll.BackendParam()
	assert.False(t, ok)
}

func TestParseStatusFilter(t *testing.T) {
	f, err := ParseStatusFilter("all")
	assert.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	_, err = ParseStatusFilter("All")
	assert.Error(t, err)
}
