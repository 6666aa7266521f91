package portal

import "time"

type Certificate struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	StudentID    string    `json:"student_id"`
	StudentName  string    `json:"student_name"`
	ProgramID    string    `json:"program_id"`
	ProgramTitle string    `json:"program_title"`
	AssessmentID string    `json:"assessment_id"`
	URL          string    `json:"url"`
	IssuedAt     time.Time `json:"issued_at"`
}

type CertificateInput struct {
	AssessmentID string `json:"assessment_id"`
	URL          string `json:"url"`
}
