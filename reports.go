package bicadmin

import "github.com/nsifat/bicadmin/date"

// MonthlyReport is the cash-flow report for one calendar month. Incomes and
// expenses are the entries whose date falls within the half-open interval
// [first day of month, first day of next month), in ledger order.
type MonthlyReport struct {
	Month         date.Month
	TotalStudents int
	TotalTeachers int
	Incomes       []Income
	Expenses      []Expense
	TotalIncome   Money
	TotalExpense  Money
}

// MonthlyReport computes the report for the given month. It is a pure read;
// the document is not mutated.
func (l *Ledger) MonthlyReport(m date.Month) *MonthlyReport {
	r := &MonthlyReport{
		Month:         m,
		TotalStudents: len(l.Students),
		TotalTeachers: len(l.Teachers),
		Incomes:       make([]Income, 0),
		Expenses:      make([]Expense, 0),
		TotalIncome:   M(0, l.Currency),
		TotalExpense:  M(0, l.Currency),
	}
	for _, in := range l.Incomes {
		if m.Contains(in.Date) {
			r.Incomes = append(r.Incomes, in)
			r.TotalIncome = r.TotalIncome.Add(M(in.Amount, l.Currency))
		}
	}
	for _, e := range l.Expenses {
		if m.Contains(e.Date) {
			r.Expenses = append(r.Expenses, e)
			r.TotalExpense = r.TotalExpense.Add(M(e.Amount, l.Currency))
		}
	}
	return r
}

// Summary is the dashboard view: overall counts, totals over the whole
// ledger, the resulting balance, and the most recent entries on each side.
type Summary struct {
	TotalStudents  int
	TotalTeachers  int
	TotalIncome    Money
	TotalExpense   Money
	Balance        Money
	RecentIncomes  []Income
	RecentExpenses []Expense
}

// recentEntries is how many entries the dashboard shows per side.
const recentEntries = 5

// Summary computes the dashboard view. Recent entries are the last ones
// added, most recent first.
func (l *Ledger) Summary() *Summary {
	s := &Summary{
		TotalStudents: len(l.Students),
		TotalTeachers: len(l.Teachers),
		TotalIncome:   M(0, l.Currency),
		TotalExpense:  M(0, l.Currency),
	}
	for _, in := range l.Incomes {
		s.TotalIncome = s.TotalIncome.Add(M(in.Amount, l.Currency))
	}
	for _, e := range l.Expenses {
		s.TotalExpense = s.TotalExpense.Add(M(e.Amount, l.Currency))
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	for i := len(l.Incomes) - 1; i >= 0 && len(s.RecentIncomes) < recentEntries; i-- {
		s.RecentIncomes = append(s.RecentIncomes, l.Incomes[i])
	}
	for i := len(l.Expenses) - 1; i >= 0 && len(s.RecentExpenses) < recentEntries; i-- {
		s.RecentExpenses = append(s.RecentExpenses, l.Expenses[i])
	}
	return s
}
