package stubapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"internhub/internal/portal"
)

func (h *Handler) ListCertificates(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := pageParams(w, r)
	if !ok {
		return
	}
	filter := scoped(r, listFilter(r, "program_id", "student_id"))
	p := portal.NewPagination(page, limit, 0)
	items, total, err := h.certificates.list(r.Context(), filter, p.Offset(), limit)
	if err != nil {
		failStore(w, r, err, "certificates")
		return
	}
	p = portal.NewPagination(page, limit, total)
	respond(w, r, http.StatusOK, "", items, &p)
}

func (h *Handler) GetCertificate(w http.ResponseWriter, r *http.Request) {
	certificate, err := h.certificates.get(r.Context(), idParam(r))
	if err == nil && !owns(r, certificate.StudentID) {
		err = ErrNotFound
	}
	if err != nil {
		failStore(w, r, err, "certificate")
		return
	}
	respond(w, r, http.StatusOK, "", certificate, nil)
}

// IssueCertificate certifies a finished assessment, at most once.
func (h *Handler) IssueCertificate(w http.ResponseWriter, r *http.Request) {
	var in portal.CertificateInput
	if err := render.DecodeJSON(r.Body, &in); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid request")
		return
	}
	if strings.TrimSpace(in.AssessmentID) == "" {
		fail(w, r, http.StatusUnprocessableEntity, "assessment_id is required")
		return
	}
	assessment, err := h.assessments.get(r.Context(), in.AssessmentID)
	if errors.Is(err, ErrNotFound) {
		fail(w, r, http.StatusUnprocessableEntity, "assessment does not exist")
		return
	}
	if err != nil {
		failStore(w, r, err, "assessment")
		return
	}
	if assessment.Status != portal.AssessmentFinished {
		fail(w, r, http.StatusUnprocessableEntity, "assessment is not finished")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	existing, err := h.certificates.all(r.Context(), Filter{"assessment_id": assessment.ID})
	if err != nil {
		failStore(w, r, err, "certificates")
		return
	}
	if len(existing) > 0 {
		fail(w, r, http.StatusConflict, "certificate already issued")
		return
	}
	issued, err := h.certificates.all(r.Context(), nil)
	if err != nil {
		failStore(w, r, err, "certificates")
		return
	}

	now := h.now()
	certificate := portal.Certificate{
		ID:           h.newID(),
		Number:       fmt.Sprintf("CERT-%d-%04d", now.Year(), len(issued)+1),
		StudentID:    assessment.StudentID,
		StudentName:  assessment.StudentName,
		ProgramID:    assessment.ProgramID,
		ProgramTitle: assessment.ProgramTitle,
		AssessmentID: assessment.ID,
		URL:          in.URL,
		IssuedAt:     now,
	}
	if err := h.certificates.put(r.Context(), certificate.ID, certificate); err != nil {
		failStore(w, r, err, "certificate")
		return
	}
	respond(w, r, http.StatusCreated, "certificate issued", certificate, nil)
}
