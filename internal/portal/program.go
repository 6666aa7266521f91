package portal

import "time"

type ProgramStatus string

const (
	ProgramOpen   ProgramStatus = "open"
	ProgramClosed ProgramStatus = "closed"
	ProgramDraft  ProgramStatus = "draft"
)

func (s ProgramStatus) Valid() bool {
	switch s {
	case ProgramOpen, ProgramClosed, ProgramDraft:
		return true
	}
	return false
}

type Program struct {
	ID                   string        `json:"id"`
	Title                string        `json:"title"`
	Company              string        `json:"company"`
	Location             string        `json:"location"`
	Category             string        `json:"category"`
	Duration             string        `json:"duration"`
	Quota                int           `json:"quota"`
	StartDate            time.Time     `json:"start_date"`
	EndDate              time.Time     `json:"end_date"`
	RegistrationDeadline time.Time     `json:"registration_deadline"`
	Status               ProgramStatus `json:"status"`
	MentorID             string        `json:"mentor_id,omitempty"`
	MentorName           string        `json:"mentor_name,omitempty"`
	Description          string        `json:"description,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
}

// ProgramInput is the create/update payload.
type ProgramInput struct {
	Title                string        `json:"title"`
	Company              string        `json:"company"`
	Location             string        `json:"location"`
	Category             string        `json:"category"`
	Duration             string        `json:"duration"`
	Quota                int           `json:"quota"`
	StartDate            time.Time     `json:"start_date"`
	EndDate              time.Time     `json:"end_date"`
	RegistrationDeadline time.Time     `json:"registration_deadline"`
	Status               ProgramStatus `json:"status"`
	MentorID             string        `json:"mentor_id,omitempty"`
	Description          string        `json:"description,omitempty"`
}
