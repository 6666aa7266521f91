package stubapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"internhub/internal/portal"
)

func (h *Handler) ListApplications(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := pageParams(w, r)
	if !ok {
		return
	}
	filter := scoped(r, listFilter(r, "status", "program_id", "student_id"))
	p := portal.NewPagination(page, limit, 0)
	items, total, err := h.applications.list(r.Context(), filter, p.Offset(), limit)
	if err != nil {
		failStore(w, r, err, "applications")
		return
	}
	p = portal.NewPagination(page, limit, total)
	respond(w, r, http.StatusOK, "", items, &p)
}

func (h *Handler) GetApplication(w http.ResponseWriter, r *http.Request) {
	application, err := h.applications.get(r.Context(), idParam(r))
	if err == nil && !owns(r, application.StudentID) {
		err = ErrNotFound
	}
	if err != nil {
		failStore(w, r, err, "application")
		return
	}
	respond(w, r, http.StatusOK, "", application, nil)
}

func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFromContext(r.Context())
	var in portal.ApplyInput
	if err := render.DecodeJSON(r.Body, &in); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid request")
		return
	}
	if strings.TrimSpace(in.ProgramID) == "" || strings.TrimSpace(in.Documents.CVURL) == "" {
		fail(w, r, http.StatusUnprocessableEntity, "program_id and cv_url are required")
		return
	}
	program, err := h.programs.get(r.Context(), in.ProgramID)
	if errors.Is(err, ErrNotFound) {
		fail(w, r, http.StatusUnprocessableEntity, "program does not exist")
		return
	}
	if err != nil {
		failStore(w, r, err, "program")
		return
	}
	if program.Status != portal.ProgramOpen {
		fail(w, r, http.StatusUnprocessableEntity, "program is not open for applications")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	existing, err := h.applications.all(r.Context(), Filter{"program_id": program.ID, "student_id": identity.UserID})
	if err != nil {
		failStore(w, r, err, "applications")
		return
	}
	if len(existing) > 0 {
		fail(w, r, http.StatusConflict, "already applied to this program")
		return
	}

	application := portal.Application{
		ID:           h.newID(),
		StudentID:    identity.UserID,
		StudentName:  identity.Name,
		ProgramID:    program.ID,
		ProgramTitle: program.Title,
		Status:       portal.ApplicationRegistered,
		Documents:    in.Documents,
		AppliedAt:    h.now(),
	}
	if err := h.applications.put(r.Context(), application.ID, application); err != nil {
		failStore(w, r, err, "application")
		return
	}
	respond(w, r, http.StatusCreated, "application submitted", application, nil)
}

// ReviewApplication sets the status; accepting opens an assessment for the
// student on the program.
func (h *Handler) ReviewApplication(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	application, err := h.applications.get(r.Context(), idParam(r))
	if err != nil {
		failStore(w, r, err, "application")
		return
	}
	var in portal.ApplicationReview
	if err := render.DecodeJSON(r.Body, &in); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid request")
		return
	}
	if !in.Status.Valid() {
		fail(w, r, http.StatusUnprocessableEntity, "status must be one of registered, reviewing, accepted, rejected")
		return
	}
	if in.Status == portal.ApplicationRejected && strings.TrimSpace(in.Feedback) == "" {
		fail(w, r, http.StatusUnprocessableEntity, "feedback is required when rejecting")
		return
	}

	wasAccepted := application.Status == portal.ApplicationAccepted
	application.Status = in.Status
	application.Feedback = in.Feedback
	if err := h.applications.put(r.Context(), application.ID, application); err != nil {
		failStore(w, r, err, "application")
		return
	}
	if in.Status == portal.ApplicationAccepted && !wasAccepted {
		if err := h.openAssessment(r, application); err != nil {
			failStore(w, r, err, "assessment")
			return
		}
	}
	respond(w, r, http.StatusOK, "application updated", application, nil)
}

func (h *Handler) openAssessment(r *http.Request, application portal.Application) error {
	assessment := portal.Assessment{
		ID:           h.newID(),
		Status:       portal.AssessmentNotStarted,
		StudentID:    application.StudentID,
		StudentName:  application.StudentName,
		ProgramID:    application.ProgramID,
		ProgramTitle: application.ProgramTitle,
		UpdatedAt:    h.now(),
	}
	program, err := h.programs.get(r.Context(), application.ProgramID)
	switch {
	case err == nil:
		assessment.MentorID = program.MentorID
		assessment.MentorName = program.MentorName
	case !errors.Is(err, ErrNotFound):
		return err
	}
	return h.assessments.put(r.Context(), assessment.ID, assessment)
}
