package view

import (
	"strconv"
	"time"

	"internhub/internal/portal"
)

const dateLayout = "2006-01-02"

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func ProgramTable(styles Styles, items []portal.Program) *Table {
	t := NewTable("Programs", "ID", "TITLE", "COMPANY", "LOCATION", "CATEGORY", "QUOTA", "START", "STATUS")
	for _, p := range items {
		t.AddRow(p.ID, p.Title, p.Company, p.Location, p.Category, strconv.Itoa(p.Quota), date(p.StartDate), styles.status(string(p.Status)))
	}
	return t
}

func ProgramCard(styles Styles, p portal.Program) *Card {
	c := &Card{Title: p.Title}
	c.Add("ID", p.ID)
	c.Add("Company", p.Company)
	c.Add("Location", p.Location)
	c.Add("Category", p.Category)
	c.Add("Duration", p.Duration)
	c.Add("Quota", strconv.Itoa(p.Quota))
	c.Add("Start", date(p.StartDate))
	c.Add("End", date(p.EndDate))
	c.Add("Deadline", date(p.RegistrationDeadline))
	c.Add("Status", styles.status(string(p.Status)))
	c.Add("Mentor", p.MentorName)
	c.Add("Description", p.Description)
	return c
}

func MentorTable(_ Styles, items []portal.Mentor) *Table {
	t := NewTable("Mentors", "ID", "NAME", "POSITION", "DEPARTMENT", "GENDER", "PHONE")
	for _, m := range items {
		t.AddRow(m.ID, m.Name, m.Position, m.Department, m.Gender, m.Phone)
	}
	return t
}

func MentorCard(_ Styles, m portal.Mentor) *Card {
	c := &Card{Title: m.Name}
	c.Add("ID", m.ID)
	c.Add("Email", m.Email)
	c.Add("Position", m.Position)
	c.Add("Department", m.Department)
	c.Add("Gender", m.Gender)
	c.Add("Phone", m.Phone)
	c.Add("Company", m.Company)
	return c
}

func ApplicationTable(styles Styles, items []portal.Application) *Table {
	t := NewTable("Applications", "ID", "STUDENT", "PROGRAM", "STATUS", "APPLIED")
	for _, a := range items {
		t.AddRow(a.ID, a.StudentName, a.ProgramTitle, styles.status(string(a.Status)), date(a.AppliedAt))
	}
	return t
}

func ApplicationCard(styles Styles, a portal.Application) *Card {
	c := &Card{Title: a.ProgramTitle + " / " + a.StudentName}
	c.Add("ID", a.ID)
	c.Add("Student", a.StudentName)
	c.Add("Program", a.ProgramTitle)
	c.Add("Status", styles.status(string(a.Status)))
	c.Add("Feedback", a.Feedback)
	c.Add("CV", a.Documents.CVURL)
	c.Add("Cover letter", a.Documents.CoverLetterURL)
	c.Add("Transcript", a.Documents.TranscriptURL)
	c.Add("Applied", date(a.AppliedAt))
	return c
}

func AssessmentTable(styles Styles, items []portal.Assessment) *Table {
	t := NewTable("Assessments", "ID", "STUDENT", "PROGRAM", "MENTOR", "GRADE", "STATUS")
	for _, a := range items {
		t.AddRow(a.ID, a.StudentName, a.ProgramTitle, a.MentorName, a.Grade, styles.status(string(a.Status)))
	}
	return t
}

func AssessmentCard(styles Styles, a portal.Assessment) *Card {
	c := &Card{Title: "Assessment " + a.ID}
	c.Add("Student", a.StudentName)
	c.Add("Program", a.ProgramTitle)
	c.Add("Mentor", a.MentorName)
	c.Add("Grade", a.Grade)
	c.Add("Status", styles.status(string(a.Status)))
	c.Add("Feedback", a.Feedback)
	c.Add("Updated", date(a.UpdatedAt))
	return c
}

func CertificateTable(_ Styles, items []portal.Certificate) *Table {
	t := NewTable("Certificates", "ID", "NUMBER", "STUDENT", "PROGRAM", "ISSUED")
	for _, c := range items {
		t.AddRow(c.ID, c.Number, c.StudentName, c.ProgramTitle, date(c.IssuedAt))
	}
	return t
}

func CertificateCard(_ Styles, cert portal.Certificate) *Card {
	c := &Card{Title: "Certificate " + cert.Number}
	c.Add("ID", cert.ID)
	c.Add("Student", cert.StudentName)
	c.Add("Program", cert.ProgramTitle)
	c.Add("Assessment", cert.AssessmentID)
	c.Add("Document", cert.URL)
	c.Add("Issued", date(cert.IssuedAt))
	return c
}
