package stubapi

import (
	"context"
	"fmt"
	"time"

	"internhub/internal/portal"
)

const SeedPassword = "secret"

// Seed fills an empty store with two accounts and a small catalogue.
func Seed(ctx context.Context, h *Handler) error {
	existing, err := h.users.all(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: list users: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	hash, err := hashPassword(SeedPassword)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	student := user{ID: "u-student", Email: "student@example.com", Name: "Alya Pratiwi", Role: portal.RoleStudent, PasswordHash: hash}
	company := user{ID: "u-company", Email: "company@example.com", Name: "Nusantara Tech", Role: portal.RoleCompany, PasswordHash: hash}
	for _, u := range []user{student, company} {
		if err := h.users.put(ctx, u.ID, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}

	mentors := []portal.Mentor{
		{ID: "m-1", Name: "Budi Santoso", Email: "budi@nusantara.example", Position: "Lead Engineer", Department: "Engineering", Gender: "male", Phone: "+62-811-000-001", Company: company.Name},
		{ID: "m-2", Name: "Citra Lestari", Email: "citra@nusantara.example", Position: "Product Manager", Department: "Product", Gender: "female", Phone: "+62-811-000-002", Company: company.Name},
		{ID: "m-3", Name: "Dewi Anggraini", Email: "dewi@nusantara.example", Position: "Data Scientist", Department: "Data", Gender: "female", Phone: "+62-811-000-003", Company: company.Name},
	}
	for _, m := range mentors {
		if err := h.mentors.put(ctx, m.ID, m); err != nil {
			return fmt.Errorf("seed mentor %s: %w", m.ID, err)
		}
	}

	start := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	titles := []struct {
		title, category, location string
		status                    portal.ProgramStatus
		mentor                    portal.Mentor
	}{
		{"Backend Engineering", "Engineering", "Jakarta", portal.ProgramOpen, mentors[0]},
		{"Product Management", "Product", "Bandung", portal.ProgramOpen, mentors[1]},
		{"Data Analytics", "Data", "Remote", portal.ProgramOpen, mentors[2]},
		{"Mobile Development", "Engineering", "Surabaya", portal.ProgramClosed, mentors[0]},
		{"UX Research", "Design", "Jakarta", portal.ProgramDraft, mentors[1]},
		{"Cloud Infrastructure", "Engineering", "Remote", portal.ProgramOpen, mentors[0]},
		{"Machine Learning", "Data", "Yogyakarta", portal.ProgramOpen, mentors[2]},
		{"Growth Marketing", "Marketing", "Jakarta", portal.ProgramClosed, mentors[1]},
		{"Quality Assurance", "Engineering", "Bandung", portal.ProgramOpen, mentors[0]},
		{"Business Intelligence", "Data", "Remote", portal.ProgramOpen, mentors[2]},
		{"Security Operations", "Engineering", "Jakarta", portal.ProgramDraft, mentors[0]},
		{"Technical Writing", "Product", "Remote", portal.ProgramOpen, mentors[1]},
	}
	programs := make([]portal.Program, 0, len(titles))
	for i, t := range titles {
		p := portal.Program{
			ID:                   fmt.Sprintf("p-%d", i+1),
			Title:                t.title,
			Company:              company.Name,
			Location:             t.location,
			Category:             t.category,
			Duration:             "3 months",
			Quota:                5 + i%4,
			StartDate:            start.AddDate(0, i%3, 0),
			EndDate:              start.AddDate(0, i%3+3, 0),
			RegistrationDeadline: start.AddDate(0, i%3, -14),
			Status:               t.status,
			MentorID:             t.mentor.ID,
			MentorName:           t.mentor.Name,
			Description:          t.title + " internship at " + company.Name,
			CreatedAt:            start.AddDate(0, -2, i),
		}
		if err := h.programs.put(ctx, p.ID, p); err != nil {
			return fmt.Errorf("seed program %s: %w", p.ID, err)
		}
		programs = append(programs, p)
	}

	applied := start.AddDate(0, -1, 0)
	applications := []portal.Application{
		{ID: "a-1", Status: portal.ApplicationAccepted, Feedback: "Strong portfolio"},
		{ID: "a-2", Status: portal.ApplicationReviewing},
	}
	for i := range applications {
		a := &applications[i]
		a.StudentID = student.ID
		a.StudentName = student.Name
		a.ProgramID = programs[i].ID
		a.ProgramTitle = programs[i].Title
		a.Documents = portal.Documents{CVURL: "https://files.example/cv/alya.pdf"}
		a.AppliedAt = applied.AddDate(0, 0, i)
		if err := h.applications.put(ctx, a.ID, *a); err != nil {
			return fmt.Errorf("seed application %s: %w", a.ID, err)
		}
	}

	assessment := portal.Assessment{
		ID:           "as-1",
		Grade:        "A",
		Feedback:     "Delivered every milestone",
		Status:       portal.AssessmentFinished,
		StudentID:    student.ID,
		StudentName:  student.Name,
		ProgramID:    programs[0].ID,
		ProgramTitle: programs[0].Title,
		MentorID:     programs[0].MentorID,
		MentorName:   programs[0].MentorName,
		UpdatedAt:    start,
	}
	if err := h.assessments.put(ctx, assessment.ID, assessment); err != nil {
		return fmt.Errorf("seed assessment: %w", err)
	}
	return nil
}
