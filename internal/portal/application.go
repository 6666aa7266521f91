package portal

import "time"

type ApplicationStatus string

const (
	ApplicationRegistered ApplicationStatus = "registered"
	ApplicationReviewing  ApplicationStatus = "reviewing"
	ApplicationAccepted   ApplicationStatus = "accepted"
	ApplicationRejected   ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationRegistered, ApplicationReviewing, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

type Documents struct {
	CVURL          string `json:"cv_url,omitempty"`
	CoverLetterURL string `json:"cover_letter_url,omitempty"`
	TranscriptURL  string `json:"transcript_url,omitempty"`
}

type Application struct {
	ID           string            `json:"id"`
	StudentID    string            `json:"student_id"`
	StudentName  string            `json:"student_name"`
	ProgramID    string            `json:"program_id"`
	ProgramTitle string            `json:"program_title"`
	Status       ApplicationStatus `json:"status"`
	Feedback     string            `json:"feedback,omitempty"`
	Documents    Documents         `json:"documents"`
	AppliedAt    time.Time         `json:"applied_at"`
}

type ApplyInput struct {
	ProgramID string    `json:"program_id"`
	Documents Documents `json:"documents"`
}

type ApplicationReview struct {
	Status   ApplicationStatus `json:"status"`
	Feedback string            `json:"feedback"`
}
