package renderer

import (
	"github.com/nsifat/bicadmin"
)

// summaryView is the template data of the dashboard summary.
type summaryView struct {
	TotalStudents  int
	TotalTeachers  int
	TotalIncome    string
	TotalExpense   string
	Balance        string
	RecentIncomes  []entryView
	RecentExpenses []entryView
}

// SummaryMarkdown renders the dashboard summary to a markdown string.
func SummaryMarkdown(l *bicadmin.Ledger, s *bicadmin.Summary) string {
	v := summaryView{
		TotalStudents: s.TotalStudents,
		TotalTeachers: s.TotalTeachers,
		TotalIncome:   s.TotalIncome.String(),
		TotalExpense:  s.TotalExpense.String(),
		Balance:       s.Balance.String(),
	}
	for _, in := range s.RecentIncomes {
		v.RecentIncomes = append(v.RecentIncomes, incomeView(l, in))
	}
	for _, e := range s.RecentExpenses {
		v.RecentExpenses = append(v.RecentExpenses, expenseView(l, e))
	}
	return renderTemplate("summary", "summary.md", nil, v)
}
