package stubapi

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"internhub/internal/portal"
)

type Handler struct {
	// mu serialises handlers that check for an existing record before
	// writing a new one.
	mu           sync.Mutex
	tokens       *Tokens
	users        collection[user]
	programs     collection[portal.Program]
	mentors      collection[portal.Mentor]
	applications collection[portal.Application]
	assessments  collection[portal.Assessment]
	certificates collection[portal.Certificate]
	now          func() time.Time
	newID        func() string
}

func NewHandler(store Store, tokens *Tokens) *Handler {
	return &Handler{
		tokens:       tokens,
		users:        collection[user]{store: store, kind: kindUsers},
		programs:     collection[portal.Program]{store: store, kind: kindPrograms},
		mentors:      collection[portal.Mentor]{store: store, kind: kindMentors},
		applications: collection[portal.Application]{store: store, kind: kindApplications},
		assessments:  collection[portal.Assessment]{store: store, kind: kindAssessments},
		certificates: collection[portal.Certificate]{store: store, kind: kindCertificates},
		now:          func() time.Time { return time.Now().UTC() },
		newID:        uuid.NewString,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req portal.LoginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		slog.Error("failed to decode login request", "err", err)
		fail(w, r, http.StatusBadRequest, "invalid request")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		fail(w, r, http.StatusBadRequest, "email and password are required")
		return
	}
	found, err := h.users.all(r.Context(), Filter{"email": email})
	if err != nil {
		failStore(w, r, err, "user")
		return
	}
	if len(found) == 0 || !found[0].checkPassword(req.Password) {
		fail(w, r, http.StatusUnauthorized, "invalid email or password")
		return
	}
	u := found[0]
	token, err := h.tokens.Issue(u)
	if err != nil {
		slog.Error("failed to issue token", "err", err)
		fail(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	respond(w, r, http.StatusOK, "logged in", portal.LoginResult{Token: token, Role: u.Role, UserID: u.ID, Name: u.Name}, nil)
}

// scoped narrows student callers to their own records.
func scoped(r *http.Request, filter Filter) Filter {
	if identity, ok := IdentityFromContext(r.Context()); ok && identity.Role == portal.RoleStudent {
		filter["student_id"] = identity.UserID
	}
	return filter
}

// owns reports whether a student caller may see a record of studentID.
func owns(r *http.Request, studentID string) bool {
	identity, ok := IdentityFromContext(r.Context())
	return !ok || identity.Role != portal.RoleStudent || identity.UserID == studentID
}

func idParam(r *http.Request) string {
	return chi.URLParam(r, "id")
}
