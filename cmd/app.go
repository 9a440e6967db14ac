// Package cmd implements the CLI application to manage the BIC admin ledger.
// A main package registers the Commands on a commander and runs Execute() on
// the user-selected subcommand.
package cmd

import (
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/nsifat/bicadmin"
	"github.com/nsifat/bicadmin/date"
	"github.com/shopspring/decimal"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", "", "Path to the data directory (overrides $BIC_DATA and bic.yaml; defaults to .bic)")

// Commands lists every subcommand of the application, in the order they are
// registered. The list is also what the shell completion advertises.
var Commands = []subcommands.Command{
	&loginCmd{},
	&addStudentCmd{},
	&updateStudentCmd{},
	&studentsCmd{},
	&studentCmd{},
	&addTuitionCmd{},
	&editTuitionCmd{},
	&deleteTuitionCmd{},
	&addTeacherCmd{},
	&teachersCmd{},
	&paySalaryCmd{},
	&editSalaryCmd{},
	&deleteSalaryCmd{},
	&attendanceCmd{},
	&addExpenseCmd{},
	&expensesCmd{},
	&reportCmd{},
	&summaryCmd{},
	&queryCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// openStore opens the ledger store from the configured data directory. On a
// brand new ledger the configured currency applies; an existing ledger keeps
// the currency it was created with.
func openStore() (*bicadmin.Store, error) {
	c := loadConfig()
	s, err := bicadmin.Open(c.Data)
	if err != nil {
		return nil, err
	}
	l := s.Ledger()
	if c.Currency != "" && len(l.Students) == 0 && len(l.Teachers) == 0 && len(l.Incomes) == 0 && len(l.Expenses) == 0 {
		l.Currency = c.Currency
	}
	return s, nil
}

// openGate opens the login gate over the configured data directory.
func openGate() *bicadmin.Gate {
	c := loadConfig()
	return bicadmin.NewGate(c.Data, c.Username, c.Password)
}

// parseAmount parses a required, non-negative monetary amount flag.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("amount is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("amount must not be negative, got %s", s)
	}
	return d, nil
}

// parseDateFlag parses a date flag, defaulting to today when empty.
func parseDateFlag(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}
