package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nsifat/bicadmin"
)

type addTuitionCmd struct {
	studentID string
	amount    string
	date      string
	note      string
}

func (*addTuitionCmd) Name() string     { return "add-tuition" }
func (*addTuitionCmd) Synopsis() string { return "record a tuition payment for a student" }
func (*addTuitionCmd) Usage() string {
	return `bic add-tuition -student <id> -amount <amount> [-d <date>] [-note <note>]

  Records a tuition payment on the student and its mirrored entry in the
  income list, in one step.
`
}

func (c *addTuitionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.studentID, "student", "", "Student id (required).")
	f.StringVar(&c.amount, "amount", "", "Payment amount (required, non-negative).")
	f.StringVar(&c.date, "d", "", "Payment date, defaults to today.")
	f.StringVar(&c.note, "note", "Tuition", "Payment note.")
}

func (c *addTuitionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.studentID == "" {
		fmt.Fprintln(os.Stderr, "Error: student id is required")
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
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
	p := bicadmin.NewPayment(amount, on, c.note)
	if err := store.AddStudentPayment(c.studentID, p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded tuition payment %s on student %s\n", p.ID, c.studentID)
	return subcommands.ExitSuccess
}
