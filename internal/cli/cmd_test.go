package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrtools/noticedesk/internal/api"
	"github.com/hrtools/noticedesk/internal/contract"
	"github.com/hrtools/noticedesk/internal/domain"
	"github.com/hrtools/noticedesk/internal/service"
	"github.com/hrtools/noticedesk/internal/testutil"
)

// newTestApp wires an App against the in-memory notice server.
func newTestApp(t *testing.T, srv *testutil.NoticeServer) *App {
	t.Helper()
	cfg := api.DefaultConfig()
	cfg.BaseURL = srv.URL()
	cfg.TimeoutMs = 2000
	return &App{
		API:      api.NewClient(cfg, api.NoopObserver{}),
		Feed:     service.NewStatusFeed(),
		Observer: service.NoopUseCaseObserver{},
		PageSize: contract.DefaultPageSize,
	}
}

// runCmd executes a subcommand through the cobra tree, capturing stdout.
func runCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = pw

	root := NewRootCmd(app)
	root.SetOut(pw)
	root.SetErr(pw)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true

	var buf strings.Builder
	done := make(chan struct{})
	go func() {
		io.Copy(&buf, pr)
		close(done)
	}()

	execErr := root.Execute()

	pw.Close()
	os.Stdout = origStdout
	<-done

	return buf.String(), execErr
}

func TestListCmd(t *testing.T) {
	srv := testutil.NewNoticeServer(t,
		testutil.SeedNotice("Office closure", "General", "Published", "2026-08-15"),
		testutil.SeedNotice("Policy update", "HR", "Draft", "2026-09-01"),
	)
	app := newTestApp(t, srv)

	out, err := runCmd(t, app, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Office closure")
	assert.Contains(t, out, "Policy update")
	assert.Contains(t, out, "Page 1 of 1")
	assert.Contains(t, out, "15 Aug 2026")
}

func TestListCmd_UnpublishedFilterMapsToDraft(t *testing.T) {
	srv := testutil.NewNoticeServer(t,
		testutil.SeedNotice("Published one", "General", "Published", "2026-08-15"),
		testutil.SeedNotice("Draft one", "General", "Draft", "2026-08-16"),
	)
	app := newTestApp(t, srv)

	out, err := runCmd(t, app, "list", "--status", "Unpublished")
	require.NoError(t, err)

	assert.Contains(t, out, "Draft one")
	assert.NotContains(t, out, "Published one")
}

func TestListCmd_RejectsUnknownStatus(t *testing.T) {
	srv := testutil.NewNoticeServer(t)
	app := newTestApp(t, srv)

	_, err := runCmd(t, app, "list", "--status", "Archived")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Archived")
}

func TestViewCmd(t *testing.T) {
	seed := testutil.SeedNotice("Quarterly review", "Meeting", "Published", "2026-09-20")
	seed.NoticeBody = "Reviews run through September."
	srv := testutil.NewNoticeServer(t, seed)
	app := newTestApp(t, srv)

	out, err := runCmd(t, app, "view", seed.ID)
	require.NoError(t, err)

	assert.Contains(t, out, "Quarterly review")
	assert.Contains(t, out, "Reviews run through September.")
	assert.Contains(t, out, "20 Sep 2026")
}

func TestViewCmd_NotFound(t *testing.T) {
	srv := testutil.NewNoticeServer(t)
	app := newTestApp(t, srv)

	_, err := runCmd(t, app, "view", "missing-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Notice not found")
}

func TestCreateCmd_AppliesFallbackIdentity(t *testing.T) {
	srv := testutil.NewNoticeServer(t)
	app := newTestApp(t, srv)

	out, err := runCmd(t, app, "create",
		"--title", "Town hall",
		"--type", "General",
		"--recipient", "Department",
		"--date", "2026-09-10",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Notice created successfully")

	created := srv.Get(onlyNoticeID(t, srv))
	require.NotNil(t, created)
	assert.Equal(t, "N/A", created.EmployeeID)
	assert.Equal(t, "All Staff", created.EmployeeName)
	assert.Equal(t, "N/A", created.Position)
	assert.Equal(t, "Draft", created.Status, "default is a draft")
}

func TestCreateCmd_PublishWithAttachment(t *testing.T) {
	srv := testutil.NewNoticeServer(t)
	app := newTestApp(t, srv)

	path := filepath.Join(t.TempDir(), "memo.pdf")
	require.NoError(t, os.WriteFile(path, []byte("memo"), 0o644))

	out, err := runCmd(t, app, "create",
		"--title", "With attachment",
		"--type", "HR",
		"--recipient", "Individual",
		"--employee-id", "EMP-7",
		"--employee", "Priya Shah",
		"--position", "Payroll Officer",
		"--date", "2026-09-10",
		"--attachment", path,
		"--publish",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Notice created successfully")

	created := srv.Get(onlyNoticeID(t, srv))
	require.NotNil(t, created)
	assert.Equal(t, "Published", created.Status)
	assert.Equal(t, "Priya Shah", created.EmployeeName)
	assert.Contains(t, created.AttachmentURL, "memo.pdf")
}

func TestCreateCmd_RefusesMultipleAttachments(t *testing.T) {
	srv := testutil.NewNoticeServer(t)
	app := newTestApp(t, srv)

	_, err := runCmd(t, app, "create",
		"--title", "x", "--type", "General", "--recipient", "Department", "--date", "2026-09-10",
		"--attachment", "a.pdf", "--attachment", "b.pdf",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only one attachment")
	assert.Zero(t, srv.Requests["POST /api/v1/notice"], "rejected before any request")
}

func TestStatusCmd_UnpublishedCollapsesToDraft(t *testing.T) {
	seed := testutil.SeedNotice("To unpublish", "General", "Published", "2026-08-15")
	srv := testutil.NewNoticeServer(t, seed)
	app := newTestApp(t, srv)

	events, cancel := app.Feed.Subscribe()
	defer cancel()

	out, err := runCmd(t, app, "status", seed.ID, "Unpublished")
	require.NoError(t, err)
	assert.Contains(t, out, "Unpublished")

	assert.Equal(t, "Draft", srv.Get(seed.ID).Status, "wire value is Draft")

	change := <-events
	assert.Equal(t, seed.ID, change.ID)
	assert.Equal(t, domain.UIUnpublished, change.Status, "broadcast keeps the UI label")
}

func TestStatusCmd_MissingIDFailsLocally(t *testing.T) {
	srv := testutil.NewNoticeServer(t)
	app := newTestApp(t, srv)

	_, err := runCmd(t, app, "status", "", "Published")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing notice id")
	assert.Empty(t, srv.Requests, "no network call for a missing id")
}

func TestStatusCmd_RejectsUnknownLabel(t *testing.T) {
	srv := testutil.NewNoticeServer(t)
	app := newTestApp(t, srv)

	_, err := runCmd(t, app, "status", "abc", "Archived")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Archived")
}

// onlyNoticeID fetches the single notice the test created and returns its id.
func onlyNoticeID(t *testing.T, srv *testutil.NoticeServer) string {
	t.Helper()
	app := newTestApp(t, srv)
	res, err := app.API.ListNotices(t.Context(), contract.NewListRequest())
	require.NoError(t, err)
	require.Len(t, res.Notices, 1)
	return res.Notices[0].ID
}
