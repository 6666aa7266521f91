package portal

type Role string

const (
	RoleStudent Role = "student"
	RoleCompany Role = "company"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleCompany
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token  string `json:"token"`
	Role   Role   `json:"role"`
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`
}
