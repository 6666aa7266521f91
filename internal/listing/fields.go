package listing

import "internhub/internal/portal"

func ProgramFields() Fields[portal.Program] {
	return Fields[portal.Program]{
		Search: func(p portal.Program) []string {
			return []string{p.Title, p.Company, p.Location, p.Category, string(p.Status), p.MentorName}
		},
		Sort: map[string]func(portal.Program) Key{
			"title":    func(p portal.Program) Key { return Text(p.Title) },
			"company":  func(p portal.Program) Key { return Text(p.Company) },
			"location": func(p portal.Program) Key { return Text(p.Location) },
			"category": func(p portal.Program) Key { return Text(p.Category) },
			"status":   func(p portal.Program) Key { return Text(string(p.Status)) },
			"start":    func(p portal.Program) Key { return Date(p.StartDate) },
			"end":      func(p portal.Program) Key { return Date(p.EndDate) },
			"deadline": func(p portal.Program) Key { return Date(p.RegistrationDeadline) },
		},
	}
}

func MentorFields() Fields[portal.Mentor] {
	return Fields[portal.Mentor]{
		Search: func(m portal.Mentor) []string {
			return []string{m.Name, m.Email, m.Position, m.Department, m.Phone}
		},
		Sort: map[string]func(portal.Mentor) Key{
			"name":       func(m portal.Mentor) Key { return Text(m.Name) },
			"position":   func(m portal.Mentor) Key { return Text(m.Position) },
			"department": func(m portal.Mentor) Key { return Text(m.Department) },
		},
	}
}

func ApplicationFields() Fields[portal.Application] {
	return Fields[portal.Application]{
		Search: func(a portal.Application) []string {
			return []string{a.StudentName, a.ProgramTitle, string(a.Status), a.Feedback}
		},
		Sort: map[string]func(portal.Application) Key{
			"student": func(a portal.Application) Key { return Text(a.StudentName) },
			"program": func(a portal.Application) Key { return Text(a.ProgramTitle) },
			"status":  func(a portal.Application) Key { return Text(string(a.Status)) },
			"applied": func(a portal.Application) Key { return Date(a.AppliedAt) },
		},
	}
}

func AssessmentFields() Fields[portal.Assessment] {
	return Fields[portal.Assessment]{
		Search: func(a portal.Assessment) []string {
			return []string{a.StudentName, a.ProgramTitle, a.MentorName, a.Grade, string(a.Status)}
		},
		Sort: map[string]func(portal.Assessment) Key{
			"student": func(a portal.Assessment) Key { return Text(a.StudentName) },
			"program": func(a portal.Assessment) Key { return Text(a.ProgramTitle) },
			"grade":   func(a portal.Assessment) Key { return Text(a.Grade) },
			"status":  func(a portal.Assessment) Key { return Text(string(a.Status)) },
			"updated": func(a portal.Assessment) Key { return Date(a.UpdatedAt) },
		},
	}
}

func CertificateFields() Fields[portal.Certificate] {
	return Fields[portal.Certificate]{
		Search: func(c portal.Certificate) []string {
			return []string{c.Number, c.StudentName, c.ProgramTitle}
		},
		Sort: map[string]func(portal.Certificate) Key{
			"number":  func(c portal.Certificate) Key { return Text(c.Number) },
			"student": func(c portal.Certificate) Key { return Text(c.StudentName) },
			"issued":  func(c portal.Certificate) Key { return Date(c.IssuedAt) },
		},
	}
}
