package renderer

import (
	"github.com/nsifat/bicadmin"
)

type studentRow struct {
	ID        string
	Name      string
	Parent    string
	Phone     string
	Grade     string
	ClassName string
	Payments  int
}

// StudentsMarkdown renders the student list to a markdown table.
func StudentsMarkdown(students []bicadmin.Student) string {
	rows := make([]studentRow, 0, len(students))
	for _, s := range students {
		rows = append(rows, studentRow{
			ID:        s.ID,
			Name:      s.Name,
			Parent:    s.Parent,
			Phone:     s.Phone,
			Grade:     s.Grade,
			ClassName: s.ClassName,
			Payments:  len(s.Payments),
		})
	}
	return renderTemplate("students", "students.md", nil, rows)
}

// profileView is the template data of a single student profile.
type profileView struct {
	studentRow
	CreatedAt string
	Siblings  []bicadmin.Sibling
	History   []entryView
}

// StudentProfileMarkdown renders one student with their payment history.
func StudentProfileMarkdown(l *bicadmin.Ledger, s *bicadmin.Student) string {
	v := profileView{
		studentRow: studentRow{
			ID:        s.ID,
			Name:      s.Name,
			Parent:    s.Parent,
			Phone:     s.Phone,
			Grade:     s.Grade,
			ClassName: s.ClassName,
			Payments:  len(s.Payments),
		},
		CreatedAt: s.CreatedAt.Format("2006-01-02 15:04"),
		Siblings:  s.Siblings,
	}
	for _, p := range s.Payments {
		v.History = append(v.History, entryView{
			Date:   p.Date.String(),
			Title:  p.ID,
			Amount: bicadmin.M(p.Amount, l.Currency).String(),
			Note:   p.Note,
		})
	}
	return renderTemplate("student_profile", "student_profile.md", nil, v)
}
