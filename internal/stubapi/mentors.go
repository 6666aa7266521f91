package stubapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"internhub/internal/portal"
)

func (h *Handler) ListMentors(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := pageParams(w, r)
	if !ok {
		return
	}
	p := portal.NewPagination(page, limit, 0)
	items, total, err := h.mentors.list(r.Context(), listFilter(r, "department"), p.Offset(), limit)
	if err != nil {
		failStore(w, r, err, "mentors")
		return
	}
	p = portal.NewPagination(page, limit, total)
	respond(w, r, http.StatusOK, "", items, &p)
}

func (h *Handler) GetMentor(w http.ResponseWriter, r *http.Request) {
	mentor, err := h.mentors.get(r.Context(), idParam(r))
	if err != nil {
		failStore(w, r, err, "mentor")
		return
	}
	respond(w, r, http.StatusOK, "", mentor, nil)
}

func (h *Handler) CreateMentor(w http.ResponseWriter, r *http.Request) {
	mentor, ok := decodeMentor(w, r)
	if !ok {
		return
	}
	mentor.ID = h.newID()
	if identity, ok := IdentityFromContext(r.Context()); ok {
		mentor.Company = identity.Name
	}
	if err := h.mentors.put(r.Context(), mentor.ID, mentor); err != nil {
		failStore(w, r, err, "mentor")
		return
	}
	respond(w, r, http.StatusCreated, "mentor created", mentor, nil)
}

func (h *Handler) UpdateMentor(w http.ResponseWriter, r *http.Request) {
	existing, err := h.mentors.get(r.Context(), idParam(r))
	if err != nil {
		failStore(w, r, err, "mentor")
		return
	}
	mentor, ok := decodeMentor(w, r)
	if !ok {
		return
	}
	mentor.ID = existing.ID
	mentor.Company = existing.Company
	if err := h.mentors.put(r.Context(), mentor.ID, mentor); err != nil {
		failStore(w, r, err, "mentor")
		return
	}
	respond(w, r, http.StatusOK, "mentor updated", mentor, nil)
}

func (h *Handler) DeleteMentor(w http.ResponseWriter, r *http.Request) {
	if err := h.mentors.delete(r.Context(), idParam(r)); err != nil {
		failStore(w, r, err, "mentor")
		return
	}
	respond(w, r, http.StatusOK, "mentor deleted", nil, nil)
}

func decodeMentor(w http.ResponseWriter, r *http.Request) (portal.Mentor, bool) {
	var in portal.MentorInput
	if err := render.DecodeJSON(r.Body, &in); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid request")
		return portal.Mentor{}, false
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		fail(w, r, http.StatusUnprocessableEntity, "name and email are required")
		return portal.Mentor{}, false
	}
	return portal.Mentor{
		Name:       in.Name,
		Email:      in.Email,
		Position:   in.Position,
		Department: in.Department,
		Gender:     in.Gender,
		Phone:      in.Phone,
	}, true
}
