package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hrtools/noticedesk/internal/contract"
	"github.com/hrtools/noticedesk/internal/domain"
)

const noticePath = "/api/v1/notice"

// Client provides access to the notice collection service.
type Client interface {
	// ListNotices fetches one page of notices matching the request filter.
	ListNotices(ctx context.Context, req contract.ListRequest) (*contract.ListResult, error)

	// GetNotice fetches a single notice with all optional fields.
	GetNotice(ctx context.Context, id string) (*domain.Notice, error)

	// CreateNotice submits a new notice as a multipart form, including
	// at most one attachment file.
	CreateNotice(ctx context.Context, req contract.CreateRequest) (*contract.CreateResult, error)

	// UpdateStatus sets the backend status of a notice.
	UpdateStatus(ctx context.Context, id string, status domain.BackendStatus) error

	// Available checks whether the notice service is reachable.
	Available(ctx context.Context) bool
}

// httpClient implements Client against the REST API.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client that talks to the notice service over HTTP.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// apiNotice is the wire shape of a notice record.
type apiNotice struct {
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

type apiPagination struct {
	TotalItems  int `json:"totalItems"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
}

// listEnvelope is the JSON body returned by GET /api/v1/notice.
type listEnvelope struct {
	Message    string         `json:"message"`
	Data       []apiNotice    `json:"data"`
	Pagination *apiPagination `json:"pagination"`
}

// recordEnvelope is the JSON body returned by single-record endpoints.
type recordEnvelope struct {
	Message string     `json:"message"`
	Data    *apiNotice `json:"data"`
}

type errorEnvelope struct {
	Message string `json:"message"`
}

type statusBody struct {
	Status string `json:"status"`
}

func (c *httpClient) ListNotices(ctx context.Context, req contract.ListRequest) (*contract.ListResult, error) {
	q := url.Values{}
	// "all" omits the status parameter entirely; Unpublished collapses
	// to Draft because the service has no third value.
	if s, ok := req.Filter.BackendParam(); ok {
		q.Set("status", string(s))
	}
	q.Set("page", strconv.Itoa(req.Page))
	q.Set("limit", strconv.Itoa(req.PageSize))

	var env listEnvelope
	if err := c.getJSON(ctx, "list", c.cfg.BaseURL+noticePath+"?"+q.Encode(), &env); err != nil {
		return nil, err
	}

	notices := make([]*domain.Notice, 0, len(env.Data))
	for i := range env.Data {
		notices = append(notices, mapNotice(&env.Data[i]))
	}

	// The reported count is authoritative; fall back to the returned
	// page's length when the envelope omits pagination.
	page := contract.Pagination{
		TotalItems:  len(notices),
		CurrentPage: req.Page,
		PageSize:    req.PageSize,
	}
	if env.Pagination != nil {
		page = contract.Pagination{
			TotalItems:  env.Pagination.TotalItems,
			CurrentPage: env.Pagination.CurrentPage,
			TotalPages:  env.Pagination.TotalPages,
			PageSize:    env.Pagination.PageSize,
		}
		if page.PageSize <= 0 {
			page.PageSize = req.PageSize
		}
	}
	if page.TotalPages < 1 {
		page.TotalPages = ceilPages(page.TotalItems, page.PageSize)
	}

	return &contract.ListResult{Notices: notices, Pagination: page}, nil
}

func (c *httpClient) GetNotice(ctx context.Context, id string) (*domain.Notice, error) {
	var env recordEnvelope
	if err := c.getJSON(ctx, "get", c.cfg.BaseURL+noticePath+"/"+url.PathEscape(id), &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, &ServerError{StatusCode: http.StatusOK, Message: "empty response for notice " + id}
	}
	return mapNotice(env.Data), nil
}

func (c *httpClient) CreateNotice(ctx context.Context, req contract.CreateRequest) (*contract.CreateResult, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	body, contentType, err := encodeCreateForm(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+noticePath, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	// Creates are not retried: the POST is not idempotent.
	var env recordEnvelope
	status, err := c.do(httpReq, &env)
	if err != nil {
		err = c.classify(ctx, err)
		c.observe("create", status, start, err)
		return nil, err
	}
	c.observe("create", status, start, nil)

	res := &contract.CreateResult{Message: env.Message}
	if env.Data != nil {
		res.Notice = mapNotice(env.Data)
	}
	return res, nil
}

func (c *httpClient) UpdateStatus(ctx context.Context, id string, status domain.BackendStatus) error {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	data, err := json.Marshal(statusBody{Status: string(status)})
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	target := c.cfg.BaseURL + noticePath + "/" + url.PathEscape(id) + "/status"

	// Setting a status is idempotent, so transient failures are retried
	// like reads.
	attempts := 1 + c.cfg.MaxRetries
	var lastErr error
	var lastStatus int
	for i := 0; i < attempts; i++ {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPatch, target, bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")

		httpStatus, err := c.do(httpReq, nil)
		lastStatus = httpStatus
		if err == nil {
			c.observe("update_status", httpStatus, start, nil)
			return nil
		}
		lastErr = err
		if !c.retryable(ctx, err) {
			break
		}
	}

	final := c.classify(ctx, lastErr)
	c.observe("update_status", lastStatus, start, final)
	return final
}

func (c *httpClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+noticePath+"?page=1&limit=1", nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// getJSON issues a GET with retry on transient failures and decodes the
// 2xx response body into out.
func (c *httpClient) getJSON(ctx context.Context, op, target string, out any) error {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	attempts := 1 + c.cfg.MaxRetries
	var lastErr error
	var lastStatus int
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}

		status, err := c.do(req, out)
		lastStatus = status
		if err == nil {
			c.observe(op, status, start, nil)
			return nil
		}
		lastErr = err
		if !c.retryable(ctx, err) {
			break
		}
	}

	final := c.classify(ctx, lastErr)
	c.observe(op, lastStatus, start, final)
	return final
}

// do executes one HTTP request and decodes the response into out.
// Non-2xx responses become *ServerError carrying the service's message
// payload when one is present.
func (c *httpClient) do(req *http.Request, out any) (int, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		srvErr := &ServerError{StatusCode: resp.StatusCode}
		var env errorEnvelope
		if json.Unmarshal(body, &env) == nil {
			srvErr.Message = env.Message
		}
		return resp.StatusCode, srvErr
	}

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decoding response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// retryable reports whether a failed attempt should be retried.
// Context expiry and non-5xx server responses are final.
func (c *httpClient) retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		return srvErr.StatusCode >= 500
	}
	return true
}

// classify maps a transport-level failure onto the client's error
// taxonomy. Server errors pass through so callers can surface the
// service's own message.
func (c *httpClient) classify(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ErrTimeout
	}
	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		return srvErr
	}
	if isConnectionError(err) {
		return ErrServiceUnavailable
	}
	return fmt.Errorf("%w: %v", ErrRetryExhausted, err)
}

func (c *httpClient) observe(op string, httpStatus int, start time.Time, err error) {
	c.observer.OnCallComplete(CallEvent{
		Op:         op,
		StatusCode: httpStatus,
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    err == nil,
		ErrorCode:  errorCode(err),
	})
}

// encodeCreateForm builds the multipart body for a create request.
func encodeCreateForm(req contract.CreateRequest) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := [][2]string{
		{"targetRecipient", req.TargetRecipient},
		{"noticeTitle", req.Title},
		{"employeeId", req.EmployeeID},
		{"employeeName", req.EmployeeName},
		{"position", req.Position},
		{"noticeType", req.Type},
		{"publishDate", req.PublishDate},
		{"status", string(req.Status)},
	}
	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return nil, "", fmt.Errorf("encoding form field %s: %w", f[0], err)
		}
	}
	if req.Body != "" {
		if err := mw.WriteField("noticeBody", req.Body); err != nil {
			return nil, "", fmt.Errorf("encoding form field noticeBody: %w", err)
		}
	}

	if req.AttachmentPath != "" {
		f, err := os.Open(req.AttachmentPath)
		if err != nil {
			return nil, "", fmt.Errorf("opening attachment: %w", err)
		}
		defer f.Close()

		part, err := mw.CreateFormFile("attachment", filepath.Base(req.AttachmentPath))
		if err != nil {
			return nil, "", fmt.Errorf("encoding attachment: %w", err)
		}
		if _, err := io.Copy(part, f); err != nil {
			return nil, "", fmt.Errorf("encoding attachment: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("finalizing form: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}

// mapNotice converts a wire record into the client projection.
// Unknown status strings are treated as Draft so a malformed record
// never renders as published.
func mapNotice(w *apiNotice) *domain.Notice {
	status := domain.StatusDraft
	if w.Status == string(domain.StatusPublished) {
		status = domain.StatusPublished
	}

	n := &domain.Notice{
		ID:              w.ID,
		Title:           w.NoticeTitle,
		Type:            w.NoticeType,
		TargetRecipient: w.TargetRecipient,
		EmployeeID:      w.EmployeeID,
		EmployeeName:    w.EmployeeName,
		Position:        w.Position,
		Body:            w.NoticeBody,
		PublishDate:     domain.NormalizeDate(w.PublishDate),
		AttachmentURL:   w.AttachmentURL,
		Status:          status,
	}
	if t, err := time.Parse(time.RFC3339, w.CreatedAt); err == nil {
		n.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, w.UpdatedAt); err == nil {
		n.UpdatedAt = t
	}
	return n
}

func ceilPages(totalItems, pageSize int) int {
	if pageSize <= 0 || totalItems <= 0 {
		return 1
	}
	pages := (totalItems + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
