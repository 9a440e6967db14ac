package renderer

import (
	"github.com/nsifat/bicadmin"
)

// reportView is the template data of the monthly report.
type reportView struct {
	Month         string
	TotalStudents int
	TotalTeachers int
	TotalIncome   string
	TotalExpense  string
	Incomes       []entryView
	Expenses      []entryView
}

// MonthlyReportMarkdown renders the monthly report to a markdown string.
// The ledger is used to resolve student names on income rows.
func MonthlyReportMarkdown(l *bicadmin.Ledger, r *bicadmin.MonthlyReport) string {
	v := reportView{
		Month:         r.Month.String(),
		TotalStudents: r.TotalStudents,
		TotalTeachers: r.TotalTeachers,
		TotalIncome:   r.TotalIncome.String(),
		TotalExpense:  r.TotalExpense.String(),
	}
	for _, in := range r.Incomes {
		v.Incomes = append(v.Incomes, incomeView(l, in))
	}
	for _, e := range r.Expenses {
		v.Expenses = append(v.Expenses, expenseView(l, e))
	}
	partials := map[string]string{
		"report_incomes":  "report_incomes.md",
		"report_expenses": "report_expenses.md",
	}
	return renderTemplate("report", "report.md", partials, v)
}

func incomeView(l *bicadmin.Ledger, in bicadmin.Income) entryView {
	title := in.Description
	if title == "" {
		title = "Tuition"
	}
	if s := l.Student(in.StudentID); s != nil {
		title += " / " + s.Name
	}
	return entryView{
		Date:   in.Date.String(),
		Title:  title,
		Amount: bicadmin.M(in.Amount, l.Currency).String(),
		Note:   in.Note,
	}
}

func expenseView(l *bicadmin.Ledger, e bicadmin.Expense) entryView {
	return entryView{
		Date:   e.Date.String(),
		Title:  e.Title,
		Amount: bicadmin.M(e.Amount, l.Currency).String(),
		Note:   e.Note,
	}
}
