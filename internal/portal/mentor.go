package portal

type Mentor struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Gender     string `json:"gender"`
	Phone      string `json:"phone"`
	Company    string `json:"company,omitempty"`
}

type MentorInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Gender     string `json:"gender"`
	Phone      string `json:"phone"`
}
