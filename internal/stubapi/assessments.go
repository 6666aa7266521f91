package stubapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"internhub/internal/portal"
)

func (h *Handler) ListAssessments(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := pageParams(w, r)
	if !ok {
		return
	}
	filter := scoped(r, listFilter(r, "status", "program_id", "student_id"))
	p := portal.NewPagination(page, limit, 0)
	items, total, err := h.assessments.list(r.Context(), filter, p.Offset(), limit)
	if err != nil {
		failStore(w, r, err, "assessments")
		return
	}
	p = portal.NewPagination(page, limit, total)
	respond(w, r, http.StatusOK, "", items, &p)
}

func (h *Handler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	assessment, err := h.assessments.get(r.Context(), idParam(r))
	if err == nil && !owns(r, assessment.StudentID) {
		err = ErrNotFound
	}
	if err != nil {
		failStore(w, r, err, "assessment")
		return
	}
	respond(w, r, http.StatusOK, "", assessment, nil)
}

func (h *Handler) UpdateAssessment(w http.ResponseWriter, r *http.Request) {
	assessment, err := h.assessments.get(r.Context(), idParam(r))
	if err != nil {
		failStore(w, r, err, "assessment")
		return
	}
	var in portal.AssessmentInput
	if err := render.DecodeJSON(r.Body, &in); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid request")
		return
	}
	if !in.Status.Valid() {
		fail(w, r, http.StatusUnprocessableEntity, "status must be one of finished, withdraw, not_started")
		return
	}
	if in.Status == portal.AssessmentFinished && (strings.TrimSpace(in.Grade) == "" || strings.TrimSpace(in.Feedback) == "") {
		fail(w, r, http.StatusUnprocessableEntity, "grade and feedback are required when finished")
		return
	}
	assessment.Grade = in.Grade
	assessment.Feedback = in.Feedback
	assessment.Status = in.Status
	assessment.UpdatedAt = h.now()
	if err := h.assessments.put(r.Context(), assessment.ID, assessment); err != nil {
		failStore(w, r, err, "assessment")
		return
	}
	respond(w, r, http.StatusOK, "assessment updated", assessment, nil)
}
