package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internhub/internal/portal"
)

type staticToken string

func (s staticToken) Token(context.Context) (string, error) {
	return string(s), nil
}

type failingToken struct{ err error }

func (f failingToken) Token(context.Context) (string, error) {
	return "", f.err
}

func newTestServer(t *testing.T, routes func(r chi.Router)) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	routes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestListProgramsSendsTokenAndQuery(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/programs", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			assert.Equal(t, "open", r.URL.Query().Get("status"))
			render.JSON(w, r, portal.Envelope[[]portal.Program]{
				Status:     portal.StatusSuccess,
				Data:       []portal.Program{{ID: "p1", Title: "Backend intern"}, {ID: "p2", Title: "QA intern"}},
				Pagination: &portal.Pagination{Page: 2, Limit: 5, Total: 42, TotalPages: 9},
			})
		})
	})

	c := New(srv.URL+"/", staticToken("tok-1"))
	page, err := c.ListPrograms(context.Background(), portal.ListQuery{Page: 2, Limit: 5, Status: "open"})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Backend intern", page.Items[0].Title)
	assert.Equal(t, 42, page.Pagination.Total)
	assert.Equal(t, 9, page.Pagination.TotalPages)
}

func TestListWithoutPaginationFallsBackToItemCount(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/mentors", func(w http.ResponseWriter, r *http.Request) {
			render.JSON(w, r, portal.Envelope[[]portal.Mentor]{Status: portal.StatusSuccess, Data: []portal.Mentor{{ID: "m1"}}})
		})
	})

	page, err := New(srv.URL, staticToken("t")).ListMentors(context.Background(), portal.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Pagination.Total)
}

func TestServerErrorMessageIsSurfaced(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/programs/{id}", func(w http.ResponseWriter, r *http.Request) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, map[string]string{"status": "error", "message": "program not found"})
		})
	})

	_, err := New(srv.URL, staticToken("t")).GetProgram(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "program not found", apiErr.Message)
	assert.Equal(t, "program not found", UserMessage(err))
	assert.True(t, IsNotFound(err))
}

func TestErrorFieldUsedWhenMessageMissing(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Post("/applications", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error":"already_applied"}`))
		})
	})

	_, err := New(srv.URL, staticToken("t")).Apply(context.Background(), portal.ApplyInput{ProgramID: "p1"})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "already_applied", apiErr.Message)
	assert.Equal(t, "already_applied", apiErr.Code)
}

func TestNonJSONErrorGetsGenericMessage(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/assessments", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "<html>bad gateway</html>", http.StatusBadGateway)
		})
	})

	_, err := New(srv.URL, staticToken("t")).ListAssessments(context.Background(), portal.ListQuery{})
	assert.Equal(t, "request failed with status 502", UserMessage(err))
}

func TestTimeoutHasFixedMessage(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/certificates", func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		})
	})

	c := New(srv.URL, staticToken("t"), WithTimeout(50*time.Millisecond))
	_, err := c.ListCertificates(context.Background(), portal.ListQuery{})
	require.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, "request timed out, please try again", UserMessage(err))
}

func TestMissingTokenSkipsRequest(t *testing.T) {
	called := false
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/programs", func(w http.ResponseWriter, r *http.Request) {
			called = true
		})
	})

	_, err := New(srv.URL, staticToken("")).ListPrograms(context.Background(), portal.ListQuery{})
	require.ErrorIs(t, err, ErrNoSession)

	_, err = New(srv.URL, nil).ListPrograms(context.Background(), portal.ListQuery{})
	require.ErrorIs(t, err, ErrNoSession)

	sentinel := errors.New("token expired")
	_, err = New(srv.URL, failingToken{err: sentinel}).ListPrograms(context.Background(), portal.ListQuery{})
	require.ErrorIs(t, err, sentinel)
	assert.False(t, called)
}

func TestLoginIsPublic(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			var req portal.LoginRequest
			assert.NoError(t, render.DecodeJSON(r.Body, &req))
			assert.Equal(t, "ana@example.com", req.Email)
			render.JSON(w, r, portal.Envelope[portal.LoginResult]{
				Status: portal.StatusSuccess,
				Data:   portal.LoginResult{Token: "jwt", Role: portal.RoleStudent, UserID: "u1"},
			})
		})
	})

	res, err := New(srv.URL, nil).Login(context.Background(), " ana@example.com ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt", res.Token)
	assert.Equal(t, portal.RoleStudent, res.Role)

	_, err = New(srv.URL, nil).Login(context.Background(), "", "secret")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateApplicationStatus(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Patch("/applications/{id}/status", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "a 1", chi.URLParam(r, "id"))
			var review portal.ApplicationReview
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&review))
			render.JSON(w, r, portal.Envelope[portal.Application]{
				Status: portal.StatusSuccess,
				Data:   portal.Application{ID: "a 1", Status: review.Status, Feedback: review.Feedback},
			})
		})
	})

	app, err := New(srv.URL, staticToken("t")).UpdateApplicationStatus(context.Background(), "a 1", portal.ApplicationReview{
		Status:   portal.ApplicationAccepted,
		Feedback: "welcome aboard",
	})
	require.NoError(t, err)
	assert.Equal(t, portal.ApplicationAccepted, app.Status)
	assert.Equal(t, "welcome aboard", app.Feedback)
}

func TestDeleteWithEmptyBody(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Delete("/programs/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})

	c := New(srv.URL, staticToken("t"))
	require.NoError(t, c.DeleteProgram(context.Background(), "p1"))
	assert.ErrorIs(t, c.DeleteProgram(context.Background(), " "), ErrInvalidInput)
}

func TestEnvelopeErrorStatusOn200(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Put("/assessments/{id}", func(w http.ResponseWriter, r *http.Request) {
			render.JSON(w, r, map[string]string{"status": "error", "message": "grade is locked"})
		})
	})

	_, err := New(srv.URL, staticToken("t")).UpdateAssessment(context.Background(), "s1", portal.AssessmentInput{Grade: "A"})
	assert.Equal(t, "grade is locked", UserMessage(err))
}
