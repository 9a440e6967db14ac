package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nsifat/bicadmin"
)

type paySalaryCmd struct {
	teacherID string
	amount    string
	date      string
	note      string
}

func (*paySalaryCmd) Name() string     { return "pay-salary" }
func (*paySalaryCmd) Synopsis() string { return "record a salary payment for a teacher" }
func (*paySalaryCmd) Usage() string {
	return `bic pay-salary -teacher <id> [-amount <amount>] [-d <date>] [-note <note>]

  Records a salary payment on the teacher and its mirrored entry in the
  expense list. The amount defaults to the teacher's monthly salary.
`
}

func (c *paySalaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.teacherID, "teacher", "", "Teacher id (required).")
	f.StringVar(&c.amount, "amount", "", "Payment amount, defaults to the teacher's salary.")
	f.StringVar(&c.date, "d", "", "Payment date, defaults to today.")
	f.StringVar(&c.note, "note", "Salary", "Payment note.")
}

func (c *paySalaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.teacherID == "" {
		fmt.Fprintln(os.Stderr, "Error: teacher id is required")
		return subcommands.ExitUsageError
	}
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	amount := c.amount
	if amount == "" {
		t := store.Ledger().Teacher(c.teacherID)
		if t == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown teacher %q\n", c.teacherID)
			return subcommands.ExitFailure
		}
		amount = t.Salary.String()
	}
	a, err := parseAmount(amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p := bicadmin.NewPayment(a, on, c.note)
	if err := store.AddTeacherPayment(c.teacherID, p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded salary payment %s on teacher %s\n", p.ID, c.teacherID)
	return subcommands.ExitSuccess
}
