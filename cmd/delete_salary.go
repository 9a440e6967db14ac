package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteSalaryCmd struct {
	teacherID string
	paymentID string
	password  string
}

func (*deleteSalaryCmd) Name() string     { return "delete-salary" }
func (*deleteSalaryCmd) Synopsis() string { return "delete a recorded salary payment" }
func (*deleteSalaryCmd) Usage() string {
	return `bic delete-salary -teacher <id> -payment <id> -password <password>

  Removes the payment from the teacher and its mirrored expense entry.
  Requires the admin password.
`
}

func (c *deleteSalaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.teacherID, "teacher", "", "Teacher id (required).")
	f.StringVar(&c.paymentID, "payment", "", "Payment id (required).")
	f.StringVar(&c.password, "password", "", "Admin password (required).")
}

func (c *deleteSalaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.teacherID == "" || c.paymentID == "" {
		fmt.Fprintln(os.Stderr, "Error: teacher id and payment id are required")
		return subcommands.ExitUsageError
	}
	if !openGate().Confirm(c.password) {
		fmt.Fprintln(os.Stderr, "Error: wrong password")
		return subcommands.ExitFailure
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.DeleteTeacherPayment(c.teacherID, c.paymentID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted payment %s\n", c.paymentID)
	return subcommands.ExitSuccess
}
