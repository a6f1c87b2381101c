// Package testutil provides an in-memory notice service for tests that
// exercise the HTTP client and the CLI commands end to end.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

// Notice is the server's wire-shaped record.
type Notice struct {
	ID              string `json:"_id"`
	TargetRecipient string `json:"targetRecipient"`
	NoticeTitle     string `json:"noticeTitle"`
	EmployeeID      string `json:"employeeId"`
	EmployeeName    string `json:"employeeName"`
	Position        string `json:"position"`
	NoticeType      string `json:"noticeType"`
	NoticeBody      string `json:"noticeBody"`
	PublishDate     string `json:"publishDate"`
	AttachmentURL   string `json:"attachmentUrl"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

type pagination struct {
	TotalItems  int `json:"totalItems"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
}

// NoticeServer is a minimal in-memory stand-in for the notice service.
// It implements the list, get, create, and status endpoints with real
// pagination and status filtering.
type NoticeServer struct {
	mu      sync.Mutex
	notices []*Notice
	srv     *httptest.Server

	// Requests counts handled requests per "METHOD path".
	Requests map[string]int
}

// NewNoticeServer starts a server seeded with the given notices. It is
// shut down automatically when the test ends.
func NewNoticeServer(t *testing.T, seed ...*Notice) *NoticeServer {
	t.Helper()
	s := &NoticeServer{Requests: map[string]int{}}
	for _, n := range seed {
		if n.ID == "" {
			n.ID = uuid.NewString()
		}
		if n.Status == "" {
			n.Status = "Draft"
		}
		s.notices = append(s.notices, n)
	}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.srv.Close)
	return s
}

// URL returns the server's base URL.
func (s *NoticeServer) URL() string { return s.srv.URL }

// Get returns the stored notice with the given id, or nil.
func (s *NoticeServer) Get(id string) *Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notices {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// SeedNotice returns a plausible notice for list fixtures.
func SeedNotice(title, noticeType, status, publishDate string) *Notice {
	return &Notice{
		ID:              uuid.NewString(),
		TargetRecipient: "Department",
		NoticeTitle:     title,
		EmployeeID:      "N/A",
		EmployeeName:    "All Staff",
		Position:        "N/A",
		NoticeType:      noticeType,
		PublishDate:     publishDate,
		Status:          status,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
		UpdatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
}

func (s *NoticeServer) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.Requests[r.Method+" "+r.URL.Path]++
	s.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/api/v1/notice")
	switch {
	case path == "" || path == "/":
		switch r.Method {
		case http.MethodGet:
			s.handleList(w, r)
		case http.MethodPost:
			s.handleCreate(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	case strings.HasSuffix(path, "/status") && r.Method == http.MethodPatch:
		s.handleStatus(w, r, strings.TrimSuffix(strings.TrimPrefix(path, "/"), "/status"))
	case r.Method == http.MethodGet:
		s.handleGet(w, strings.TrimPrefix(path, "/"))
	default:
		http.Error(w, "not found", http.StatusNotFound)
	}
}

func (s *NoticeServer) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	status := q.Get("status")

	s.mu.Lock()
	var matched []*Notice
	for _, n := range s.notices {
		if status == "" || n.Status == status {
			matched = append(matched, n)
		}
	}
	s.mu.Unlock()

	total := len(matched)
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	pageItems := make([]Notice, 0, end-start)
	for _, n := range matched[start:end] {
		pageItems = append(pageItems, *n)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Notices retrieved successfully",
		"data":    pageItems,
		"pagination": pagination{
			TotalItems:  total,
			CurrentPage: page,
			TotalPages:  totalPages,
			PageSize:    limit,
		},
	})
}

func (s *NoticeServer) handleGet(w http.ResponseWriter, id string) {
	n := s.Get(id)
	if n == nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "Notice not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Notice retrieved successfully", "data": n})
}

func (s *NoticeServer) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid form"})
		return
	}

	n := &Notice{
		ID:              uuid.NewString(),
		TargetRecipient: r.FormValue("targetRecipient"),
		NoticeTitle:     r.FormValue("noticeTitle"),
		EmployeeID:      r.FormValue("employeeId"),
		EmployeeName:    r.FormValue("employeeName"),
		Position:        r.FormValue("position"),
		NoticeType:      r.FormValue("noticeType"),
		NoticeBody:      r.FormValue("noticeBody"),
		PublishDate:     r.FormValue("publishDate"),
		Status:          r.FormValue("status"),
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
		UpdatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	if _, header, err := r.FormFile("attachment"); err == nil {
		n.AttachmentURL = "https://files.example.com/" + header.Filename
	}

	s.mu.Lock()
	s.notices = append(s.notices, n)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]any{"message": "Notice created successfully", "data": n})
}

func (s *NoticeServer) handleStatus(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid body"})
		return
	}
	if body.Status != "Published" && body.Status != "Draft" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid status " + body.Status})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notices {
		if n.ID == id {
			n.Status = body.Status
			n.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
			writeJSON(w, http.StatusOK, map[string]any{"message": "Notice status updated successfully", "data": n})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]any{"message": "Notice not found"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
