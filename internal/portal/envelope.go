package portal

import (
	"net/url"
	"strconv"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope wraps every backend response.
type Envelope[T any] struct {
	Status     string      `json:"status"`
	Message    string      `json:"message"`
	Data       T           `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func NewPagination(page, limit, total int) Pagination {
	p := Pagination{Page: page, Limit: limit, Total: total}
	if limit > 0 {
		p.TotalPages = (total + limit - 1) / limit
	}
	return p
}

// Offset is the zero-based index of the first record on the page.
func (p Pagination) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Page is one server-side slice of a collection.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

type ListQuery struct {
	Page      int
	Limit     int
	Status    string
	ProgramID string
	StudentID string
}

func (q ListQuery) Values() url.Values {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Status != "" {
		values.Set("status", q.Status)
	}
	if q.ProgramID != "" {
		values.Set("program_id", q.ProgramID)
	}
	if q.StudentID != "" {
		values.Set("student_id", q.StudentID)
	}
	return values
}
