package stubapi

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"internhub/internal/portal"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

func respond(w http.ResponseWriter, r *http.Request, status int, message string, data any, p *portal.Pagination) {
	render.Status(r, status)
	render.JSON(w, r, portal.Envelope[any]{
		Status:     portal.StatusSuccess,
		Message:    message,
		Data:       data,
		Pagination: p,
	})
}

func fail(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, portal.Envelope[any]{Status: portal.StatusError, Message: message})
}

func failStore(w http.ResponseWriter, r *http.Request, err error, what string) {
	if errors.Is(err, ErrNotFound) {
		fail(w, r, http.StatusNotFound, what+" not found")
		return
	}
	if errors.Is(err, ErrConflict) {
		fail(w, r, http.StatusConflict, what+" already exists")
		return
	}
	slog.Error("store failure", "what", what, "err", err)
	fail(w, r, http.StatusInternalServerError, "internal server error")
}

// pageParams reads page and limit, answering 400 itself on bad input.
func pageParams(w http.ResponseWriter, r *http.Request) (page, limit int, ok bool) {
	page, limit = 1, defaultLimit
	if value := r.URL.Query().Get("page"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 1 {
			fail(w, r, http.StatusBadRequest, "page must be a positive number")
			return 0, 0, false
		}
		page = parsed
	}
	if value := r.URL.Query().Get("limit"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 1 {
			fail(w, r, http.StatusBadRequest, "limit must be a positive number")
			return 0, 0, false
		}
		limit = min(parsed, maxLimit)
	}
	if page-1 > math.MaxInt/limit {
		fail(w, r, http.StatusBadRequest, "page is out of range")
		return 0, 0, false
	}
	return page, limit, true
}

func listFilter(r *http.Request, keys ...string) Filter {
	filter := Filter{}
	for _, key := range keys {
		if value := r.URL.Query().Get(key); value != "" {
			filter[key] = value
		}
	}
	return filter
}
