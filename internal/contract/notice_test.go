package contract

import (
	"testing"

	"github.com/hrtools/noticedesk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewListRequest_SetsDefaults(t *testing.T) {
	req := NewListRequest()

	assert.Equal(t, domain.FilterAll, req.Filter)
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, DefaultPageSize, req.PageSize)
}

func TestNewCreateRequest_DefaultsToDraft(t *testing.T) {
	req := NewCreateRequest()

	assert.Equal(t, domain.StatusDraft, req.Status)
	assert.Empty(t, req.Title)
	assert.Empty(t, req.AttachmentPath)
}
