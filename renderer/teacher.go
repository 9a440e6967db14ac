package renderer

import (
	"github.com/nsifat/bicadmin"
)

type teacherRow struct {
	ID        string
	Name      string
	Phone     string
	Gender    string
	ClassName string
	Salary    string
	Payments  int
	Marked    int // attendance entries recorded
}

// TeachersMarkdown renders the teacher list to a markdown table.
func TeachersMarkdown(l *bicadmin.Ledger) string {
	rows := make([]teacherRow, 0, len(l.Teachers))
	for _, t := range l.Teachers {
		rows = append(rows, teacherRow{
			ID:        t.ID,
			Name:      t.Name,
			Phone:     t.Phone,
			Gender:    t.Gender,
			ClassName: t.ClassName,
			Salary:    bicadmin.M(t.Salary, l.Currency).String(),
			Payments:  len(t.Payments),
			Marked:    len(t.Attendance),
		})
	}
	return renderTemplate("teachers", "teachers.md", nil, rows)
}

// ExpensesMarkdown renders the full expense list to a markdown table.
func ExpensesMarkdown(l *bicadmin.Ledger) string {
	rows := make([]entryView, 0, len(l.Expenses))
	for _, e := range l.Expenses {
		rows = append(rows, expenseView(l, e))
	}
	return renderTemplate("expenses", "expenses.md", nil, rows)
}
