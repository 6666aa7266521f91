package portal

import "time"

type AssessmentStatus string

const (
	AssessmentFinished   AssessmentStatus = "finished"
	AssessmentWithdraw   AssessmentStatus = "withdraw"
	AssessmentNotStarted AssessmentStatus = "not_started"
)

func (s AssessmentStatus) Valid() bool {
	switch s {
	case AssessmentFinished, AssessmentWithdraw, AssessmentNotStarted:
		return true
	}
	return false
}

type Assessment struct {
	ID           string           `json:"id"`
	Grade        string           `json:"grade"`
	Feedback     string           `json:"feedback,omitempty"`
	Status       AssessmentStatus `json:"status"`
	StudentID    string           `json:"student_id"`
	StudentName  string           `json:"student_name"`
	ProgramID    string           `json:"program_id"`
	ProgramTitle string           `json:"program_title"`
	MentorID     string           `json:"mentor_id"`
	MentorName   string           `json:"mentor_name"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type AssessmentInput struct {
	Grade    string           `json:"grade"`
	Feedback string           `json:"feedback"`
	Status   AssessmentStatus `json:"status"`
}
