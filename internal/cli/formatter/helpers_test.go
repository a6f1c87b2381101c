package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "30 Sep 2022", HumanDate("2022-09-30"))
	assert.Equal(t, "01 Jan 2026", HumanDate("2026-01-01"))

	// Non-dates pass through untouched.
	assert.Equal(t, "not-a-date", HumanDate("not-a-date"))
	assert.Equal(t, "", HumanDate(""))
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "Just now", HumanTimestamp(now))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute)))
	assert.Equal(t, "2h ago", HumanTimestamp(now.Add(-2*time.Hour)))
	assert.Equal(t, "—", HumanTimestamp(time.Time{}))

	// More than 24h falls back to an absolute date.
	assert.NotEmpty(t, HumanTimestamp(now.Add(-48*time.Hour)))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "abc   ", PadRight("abc", 6))
	assert.Equal(t, "abcde…", PadRight("abcdefgh", 6))
	assert.Equal(t, "héllo ", PadRight("héllo", 6))
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "Title"},
		[][]string{{"a1", "First"}, {"b2", "Second"}},
	)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "First")
	assert.Contains(t, out, "Second")
	assert.Contains(t, out, "─")

	assert.Empty(t, RenderTable(nil, nil))
}
