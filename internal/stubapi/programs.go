package stubapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"internhub/internal/portal"
)

func (h *Handler) ListPrograms(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := pageParams(w, r)
	if !ok {
		return
	}
	p := portal.NewPagination(page, limit, 0)
	items, total, err := h.programs.list(r.Context(), listFilter(r, "status", "company"), p.Offset(), limit)
	if err != nil {
		failStore(w, r, err, "programs")
		return
	}
	p = portal.NewPagination(page, limit, total)
	respond(w, r, http.StatusOK, "", items, &p)
}

func (h *Handler) GetProgram(w http.ResponseWriter, r *http.Request) {
	program, err := h.programs.get(r.Context(), idParam(r))
	if err != nil {
		failStore(w, r, err, "program")
		return
	}
	respond(w, r, http.StatusOK, "", program, nil)
}

func (h *Handler) CreateProgram(w http.ResponseWriter, r *http.Request) {
	program, ok := h.decodeProgram(w, r)
	if !ok {
		return
	}
	program.ID = h.newID()
	program.CreatedAt = h.now()
	if err := h.programs.put(r.Context(), program.ID, program); err != nil {
		failStore(w, r, err, "program")
		return
	}
	respond(w, r, http.StatusCreated, "program created", program, nil)
}

func (h *Handler) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	existing, err := h.programs.get(r.Context(), idParam(r))
	if err != nil {
		failStore(w, r, err, "program")
		return
	}
	program, ok := h.decodeProgram(w, r)
	if !ok {
		return
	}
	program.ID = existing.ID
	program.CreatedAt = existing.CreatedAt
	if err := h.programs.put(r.Context(), program.ID, program); err != nil {
		failStore(w, r, err, "program")
		return
	}
	respond(w, r, http.StatusOK, "program updated", program, nil)
}

func (h *Handler) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	if err := h.programs.delete(r.Context(), idParam(r)); err != nil {
		failStore(w, r, err, "program")
		return
	}
	respond(w, r, http.StatusOK, "program deleted", nil, nil)
}

func (h *Handler) decodeProgram(w http.ResponseWriter, r *http.Request) (portal.Program, bool) {
	var in portal.ProgramInput
	if err := render.DecodeJSON(r.Body, &in); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid request")
		return portal.Program{}, false
	}
	if strings.TrimSpace(in.Title) == "" {
		fail(w, r, http.StatusUnprocessableEntity, "title is required")
		return portal.Program{}, false
	}
	if !in.Status.Valid() {
		fail(w, r, http.StatusUnprocessableEntity, "status must be one of open, closed, draft")
		return portal.Program{}, false
	}
	if in.Quota < 0 {
		fail(w, r, http.StatusUnprocessableEntity, "quota must not be negative")
		return portal.Program{}, false
	}
	program := portal.Program{
		Title:                in.Title,
		Company:              in.Company,
		Location:             in.Location,
		Category:             in.Category,
		Duration:             in.Duration,
		Quota:                in.Quota,
		StartDate:            in.StartDate,
		EndDate:              in.EndDate,
		RegistrationDeadline: in.RegistrationDeadline,
		Status:               in.Status,
		MentorID:             in.MentorID,
		Description:          in.Description,
	}
	if program.Company == "" {
		if identity, ok := IdentityFromContext(r.Context()); ok {
			program.Company = identity.Name
		}
	}
	if program.MentorID != "" {
		mentor, err := h.mentors.get(r.Context(), program.MentorID)
		if errors.Is(err, ErrNotFound) {
			fail(w, r, http.StatusUnprocessableEntity, "mentor does not exist")
			return portal.Program{}, false
		}
		if err != nil {
			failStore(w, r, err, "mentor")
			return portal.Program{}, false
		}
		program.MentorName = mentor.Name
	}
	return program, true
}
