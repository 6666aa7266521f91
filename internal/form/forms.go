package form

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"internhub/internal/portal"
)

const DateLayout = "2006-01-02"

type ProgramForm struct {
	Title       string
	Company     string
	Location    string
	Category    string
	Duration    string
	Quota       string
	StartDate   string
	EndDate     string
	Deadline    string
	Status      string
	MentorID    string
	Description string
}

func (f ProgramForm) Fields() []Field {
	return []Field{
		{Name: "title", Value: f.Title, Required: true},
		{Name: "company", Value: f.Company, Required: true},
		{Name: "location", Value: f.Location, Required: true},
		{Name: "category", Value: f.Category, Required: true},
		{Name: "duration", Value: f.Duration, Required: true},
		{Name: "quota", Value: f.Quota, Required: true},
		{Name: "start_date", Value: f.StartDate, Required: true},
		{Name: "end_date", Value: f.EndDate, Required: true},
		{Name: "registration_deadline", Value: f.Deadline},
		{Name: "status", Value: f.Status, Required: true},
		{Name: "mentor_id", Value: f.MentorID},
		{Name: "description", Value: f.Description},
	}
}

func ProgramFormFrom(p portal.Program) ProgramForm {
	return ProgramForm{
		Title:       p.Title,
		Company:     p.Company,
		Location:    p.Location,
		Category:    p.Category,
		Duration:    p.Duration,
		Quota:       strconv.Itoa(p.Quota),
		StartDate:   formatDate(p.StartDate),
		EndDate:     formatDate(p.EndDate),
		Deadline:    formatDate(p.RegistrationDeadline),
		Status:      string(p.Status),
		MentorID:    p.MentorID,
		Description: p.Description,
	}
}

func (f ProgramForm) Check() error {
	_, err := f.Input()
	return err
}

// Input converts the form to the API payload, reporting values that do not
// parse.
func (f ProgramForm) Input() (portal.ProgramInput, error) {
	verr := &ValidationError{}
	in := portal.ProgramInput{
		Title:       strings.TrimSpace(f.Title),
		Company:     strings.TrimSpace(f.Company),
		Location:    strings.TrimSpace(f.Location),
		Category:    strings.TrimSpace(f.Category),
		Duration:    strings.TrimSpace(f.Duration),
		Status:      portal.ProgramStatus(strings.TrimSpace(f.Status)),
		MentorID:    strings.TrimSpace(f.MentorID),
		Description: strings.TrimSpace(f.Description),
	}
	quota, err := strconv.Atoi(strings.TrimSpace(f.Quota))
	if err != nil || quota < 0 {
		verr.invalid("quota", "must be a non-negative number")
	}
	in.Quota = quota
	in.StartDate = parseDate(verr, "start_date", f.StartDate)
	in.EndDate = parseDate(verr, "end_date", f.EndDate)
	in.RegistrationDeadline = parseDate(verr, "registration_deadline", f.Deadline)
	if !in.StartDate.IsZero() && !in.EndDate.IsZero() && in.EndDate.Before(in.StartDate) {
		verr.invalid("end_date", "must not be before start_date")
	}
	if !in.Status.Valid() {
		verr.invalid("status", "must be one of open, closed, draft")
	}
	if !verr.empty() {
		return portal.ProgramInput{}, verr
	}
	return in, nil
}

type MentorForm struct {
	Name       string
	Email      string
	Position   string
	Department string
	Gender     string
	Phone      string
}

func (f MentorForm) Fields() []Field {
	return []Field{
		{Name: "name", Value: f.Name, Required: true},
		{Name: "email", Value: f.Email, Required: true},
		{Name: "position", Value: f.Position, Required: true},
		{Name: "department", Value: f.Department, Required: true},
		{Name: "gender", Value: f.Gender},
		{Name: "phone", Value: f.Phone, Required: true},
	}
}

func MentorFormFrom(m portal.Mentor) MentorForm {
	return MentorForm{
		Name:       m.Name,
		Email:      m.Email,
		Position:   m.Position,
		Department: m.Department,
		Gender:     m.Gender,
		Phone:      m.Phone,
	}
}

func (f MentorForm) Check() error {
	_, err := f.Input()
	return err
}

func (f MentorForm) Input() (portal.MentorInput, error) {
	in := portal.MentorInput{
		Name:       strings.TrimSpace(f.Name),
		Email:      strings.TrimSpace(f.Email),
		Position:   strings.TrimSpace(f.Position),
		Department: strings.TrimSpace(f.Department),
		Gender:     strings.ToLower(strings.TrimSpace(f.Gender)),
		Phone:      strings.TrimSpace(f.Phone),
	}
	if !strings.Contains(in.Email, "@") {
		verr := &ValidationError{}
		verr.invalid("email", "is not an email address")
		return portal.MentorInput{}, verr
	}
	return in, nil
}

// ReviewForm is what a company fills in when deciding on an application.
type ReviewForm struct {
	Status   string
	Feedback string
}

func (f ReviewForm) Fields() []Field {
	return []Field{
		{Name: "status", Value: f.Status, Required: true},
		{Name: "feedback", Value: f.Feedback, Required: f.Status == string(portal.ApplicationRejected)},
	}
}

func ReviewFormFrom(a portal.Application) ReviewForm {
	return ReviewForm{Status: string(a.Status), Feedback: a.Feedback}
}

func (f ReviewForm) Check() error {
	_, err := f.Input()
	return err
}

func (f ReviewForm) Input() (portal.ApplicationReview, error) {
	status := portal.ApplicationStatus(strings.TrimSpace(f.Status))
	if !status.Valid() {
		verr := &ValidationError{}
		verr.invalid("status", "must be one of registered, reviewing, accepted, rejected")
		return portal.ApplicationReview{}, verr
	}
	return portal.ApplicationReview{Status: status, Feedback: strings.TrimSpace(f.Feedback)}, nil
}

// GradeForm is the mentor's assessment of a student.
type GradeForm struct {
	Grade    string
	Feedback string
	Status   string
}

func (f GradeForm) Fields() []Field {
	finished := f.Status == string(portal.AssessmentFinished)
	return []Field{
		{Name: "grade", Value: f.Grade, Required: finished},
		{Name: "feedback", Value: f.Feedback, Required: finished},
		{Name: "status", Value: f.Status, Required: true},
	}
}

func GradeFormFrom(a portal.Assessment) GradeForm {
	return GradeForm{Grade: a.Grade, Feedback: a.Feedback, Status: string(a.Status)}
}

func (f GradeForm) Check() error {
	_, err := f.Input()
	return err
}

func (f GradeForm) Input() (portal.AssessmentInput, error) {
	status := portal.AssessmentStatus(strings.TrimSpace(f.Status))
	if !status.Valid() {
		verr := &ValidationError{}
		verr.invalid("status", "must be one of finished, withdraw, not_started")
		return portal.AssessmentInput{}, verr
	}
	return portal.AssessmentInput{
		Grade:    strings.TrimSpace(f.Grade),
		Feedback: strings.TrimSpace(f.Feedback),
		Status:   status,
	}, nil
}

type ApplyForm struct {
	ProgramID      string
	CVURL          string
	CoverLetterURL string
	TranscriptURL  string
}

func (f ApplyForm) Fields() []Field {
	return []Field{
		{Name: "program_id", Value: f.ProgramID, Required: true},
		{Name: "cv_url", Value: f.CVURL, Required: true},
		{Name: "cover_letter_url", Value: f.CoverLetterURL},
		{Name: "transcript_url", Value: f.TranscriptURL},
	}
}

func (f ApplyForm) Input() portal.ApplyInput {
	return portal.ApplyInput{
		ProgramID: strings.TrimSpace(f.ProgramID),
		Documents: portal.Documents{
			CVURL:          strings.TrimSpace(f.CVURL),
			CoverLetterURL: strings.TrimSpace(f.CoverLetterURL),
			TranscriptURL:  strings.TrimSpace(f.TranscriptURL),
		},
	}
}

type CertificateForm struct {
	AssessmentID string
	URL          string
}

func (f CertificateForm) Fields() []Field {
	return []Field{
		{Name: "assessment_id", Value: f.AssessmentID, Required: true},
		{Name: "url", Value: f.URL, Required: true},
	}
}

func (f CertificateForm) Input() portal.CertificateInput {
	return portal.CertificateInput{
		AssessmentID: strings.TrimSpace(f.AssessmentID),
		URL:          strings.TrimSpace(f.URL),
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func parseDate(verr *ValidationError, field, value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		verr.invalid(field, "must be a date like 2026-09-01")
		return time.Time{}
	}
	return t
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
