package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internhub/internal/client"
	"internhub/internal/form"
	"internhub/internal/listing"
	"internhub/internal/portal"
	"internhub/internal/stubapi"
	"internhub/internal/view"
)

type harness struct {
	configPath string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := stubapi.NewHandler(stubapi.NewMemoryStore(), stubapi.NewTokens("cli-secret", time.Hour))
	require.NoError(t, stubapi.Seed(context.Background(), h))
	srv := httptest.NewServer(stubapi.NewRouter(h))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	cfg := fmt.Sprintf(`env: test
api:
  base_url: %s
  timeout: 2s
session:
  driver: file
  path: %s
listing:
  page_size: 5
`, srv.URL, filepath.Join(dir, "session.json"))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))
	return &harness{configPath: path}
}

func (h *harness) run(stdin string, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	a := newApp(strings.NewReader(stdin), &out, &errOut)
	root := newRootCmd(a)
	root.SetArgs(append([]string{"--config", h.configPath, "--plain"}, args...))
	err := root.ExecuteContext(context.Background())
	if closeErr := a.close(); err == nil {
		err = closeErr
	}
	return out.String(), errOut.String(), err
}

func (h *harness) login(t *testing.T, email string) {
	t.Helper()
	out, _, err := h.run("", "login", "--email", email, "--password", stubapi.SeedPassword)
	require.NoError(t, err)
	require.Contains(t, out, "logged in as")
}

func TestLoginWhoamiLogout(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run("", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "not logged in")

	_, _, err = h.run("", "login", "--email", "student@example.com", "--password", "bad")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid email or password", apiErr.Message)

	out, _, err = h.run("student@example.com\nsecret\n", "login")
	require.NoError(t, err)
	assert.Contains(t, out, "logged in as Alya Pratiwi (student)")

	out, _, err = h.run("", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "student@example.com")
	assert.Contains(t, out, "u-student")

	_, _, err = h.run("", "logout")
	require.NoError(t, err)
	_, _, err = h.run("", "programs", "list")
	assert.ErrorIs(t, err, client.ErrNoSession)
}

func TestProgramsListPagesAndCaches(t *testing.T) {
	h := newHarness(t)
	h.login(t, "student@example.com")

	out, _, err := h.run("", "programs", "list", "--page", "2", "-o", "json")
	require.NoError(t, err)
	var page portal.Page[portal.Program]
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, 12, page.Pagination.Total)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	require.Len(t, page.Items, 5)
	assert.Equal(t, "p-6", page.Items[0].ID)

	out, _, err = h.run("", "programs", "list", "--cached", "--search", "machine", "-o", "json")
	require.NoError(t, err)
	var cached portal.Page[portal.Program]
	require.NoError(t, json.Unmarshal([]byte(out), &cached))
	require.Len(t, cached.Items, 1)
	assert.Equal(t, "Machine Learning", cached.Items[0].Title)
	assert.Equal(t, 2, cached.Pagination.Page)

	out, _, err = h.run("", "programs", "list", "--search", "machine")
	require.NoError(t, err)
	assert.Contains(t, out, "no records")
	assert.Contains(t, out, "page 1 of 3 (12 total)")
	assert.Contains(t, out, "search covers this page only")

	out, _, err = h.run("", "programs", "list", "--status", "draft", "--sort", "title", "--desc")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "UX Research"), strings.Index(out, "Security Operations"))

	_, _, err = h.run("", "programs", "list", "--sort", "salary")
	assert.ErrorIs(t, err, listing.ErrUnknownSortField)
}

func TestCompanyCreatesProgram(t *testing.T) {
	h := newHarness(t)
	h.login(t, "company@example.com")

	_, _, err := h.run("", "programs", "create", "--title", "Platform Engineering")
	var verr *form.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Missing, "location")

	args := []string{"programs", "create",
		"--title", "Platform Engineering", "--company", "Nusantara Tech", "--location", "Remote",
		"--category", "Engineering", "--duration", "6 months", "--quota", "3",
		"--start", "2026-09-01", "--end", "2027-03-01", "--status", "open", "--mentor", "m-1"}

	out, _, err := h.run("n\n", args...)
	require.NoError(t, err)
	assert.Contains(t, out, "cancelled, nothing was sent")

	out, _, err = h.run("", append(args, "--yes")...)
	require.NoError(t, err)
	assert.Contains(t, out, "saved, view it with: internhub programs show ")

	out, _, err = h.run("", "programs", "list", "--limit", "20", "--search", "platform", "-o", "json")
	require.NoError(t, err)
	var page portal.Page[portal.Program]
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Budi Santoso", page.Items[0].MentorName)
	assert.Equal(t, 13, page.Pagination.Total)

	out, _, err = h.run("", "programs", "edit", page.Items[0].ID, "--quota", "4", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "saved")

	out, _, err = h.run("", "programs", "show", page.Items[0].ID, "-o", "json")
	require.NoError(t, err)
	var program portal.Program
	require.NoError(t, json.Unmarshal([]byte(out), &program))
	assert.Equal(t, 4, program.Quota)
	assert.Equal(t, "Platform Engineering", program.Title)

	out, _, err = h.run("y\n", "programs", "delete", program.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "deleted")
	_, _, err = h.run("", "programs", "show", program.ID)
	assert.True(t, client.IsNotFound(err))
}

func TestStudentCannotCreateProgram(t *testing.T) {
	h := newHarness(t)
	h.login(t, "student@example.com")

	_, _, err := h.run("", "mentors", "create", "--yes",
		"--name", "Eka", "--email", "eka@example.com", "--position", "Lead", "--department", "Design", "--phone", "1")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.StatusCode)
	assert.Equal(t, "insufficient role", client.UserMessage(err))
}

func TestApplicationToCertificateFlow(t *testing.T) {
	h := newHarness(t)
	h.login(t, "student@example.com")

	out, _, err := h.run("", "applications", "apply", "--yes", "--program", "p-3", "--cv", "https://files.example/cv.pdf")
	require.NoError(t, err)
	assert.Contains(t, out, "applications show ")

	out, _, err = h.run("", "applications", "list", "--program", "p-3", "-o", "json")
	require.NoError(t, err)
	var apps portal.Page[portal.Application]
	require.NoError(t, json.Unmarshal([]byte(out), &apps))
	require.Len(t, apps.Items, 1)
	appID := apps.Items[0].ID

	h.login(t, "company@example.com")
	_, _, err = h.run("", "applications", "review", appID, "--status", "rejected", "--yes")
	var verr *form.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"feedback"}, verr.Missing)

	_, _, err = h.run("", "applications", "review", appID, "--status", "accepted", "--yes")
	require.NoError(t, err)

	out, _, err = h.run("", "assessments", "list", "--program", "p-3", "-o", "json")
	require.NoError(t, err)
	var assessments portal.Page[portal.Assessment]
	require.NoError(t, json.Unmarshal([]byte(out), &assessments))
	require.Len(t, assessments.Items, 1)
	assessmentID := assessments.Items[0].ID

	_, _, err = h.run("", "assessments", "grade", assessmentID, "--status", "finished", "--grade", "A", "--feedback", "excellent", "--yes")
	require.NoError(t, err)

	out, _, err = h.run("", "certificates", "issue", "--assessment", assessmentID, "--url", "https://files.example/cert.pdf", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "certificates show ")

	out, _, err = h.run("", "dashboard", "-o", "json")
	require.NoError(t, err)
	var counts map[string]int
	require.NoError(t, json.Unmarshal([]byte(out), &counts))
	assert.Equal(t, 12, counts["Programs"])
	assert.Equal(t, 3, counts["Applicants"])
	assert.Equal(t, 3, counts["Mentors"])

	h.login(t, "student@example.com")
	out, _, err = h.run("", "dashboard", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "My certificates: 1")
	assert.Contains(t, out, "My assessments: 2")
	assert.Contains(t, out, "My applications: 3")
}

func TestAlertShowsServerMessage(t *testing.T) {
	var errOut bytes.Buffer
	a := newApp(strings.NewReader(""), &bytes.Buffer{}, &errOut)
	a.styles = view.PlainStyles()
	a.fail(&client.APIError{StatusCode: 409, Message: "already applied to this program"})
	assert.Contains(t, errOut.String(), "already applied to this program")
}
