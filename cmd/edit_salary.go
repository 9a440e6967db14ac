package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nsifat/bicadmin"
)

type editSalaryCmd struct {
	teacherID string
	paymentID string
	password  string
	amount    string
	date      string
	note      string
}

func (*editSalaryCmd) Name() string     { return "edit-salary" }
func (*editSalaryCmd) Synopsis() string { return "edit a recorded salary payment" }
func (*editSalaryCmd) Usage() string {
	return `bic edit-salary -teacher <id> -payment <id> -password <password> [-amount <amount>] [-d <date>] [-note <note>]

  Applies the given fields to the payment on the teacher and to its mirrored
  expense entry. Only flags that are set are applied. Requires the admin
  password.
`
}

func (c *editSalaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.teacherID, "teacher", "", "Teacher id (required).")
	f.StringVar(&c.paymentID, "payment", "", "Payment id (required).")
	f.StringVar(&c.password, "password", "", "Admin password (required).")
	f.StringVar(&c.amount, "amount", "", "New payment amount.")
	f.StringVar(&c.date, "d", "", "New payment date.")
	f.StringVar(&c.note, "note", "", "New payment note.")
}

func (c *editSalaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.teacherID == "" || c.paymentID == "" {
		fmt.Fprintln(os.Stderr, "Error: teacher id and payment id are required")
		return subcommands.ExitUsageError
	}
	if !openGate().Confirm(c.password) {
		fmt.Fprintln(os.Stderr, "Error: wrong password")
		return subcommands.ExitFailure
	}

	patch, err := paymentPatch(f, c.amount, c.date, c.note)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if patch == (bicadmin.PaymentPatch{}) {
		fmt.Fprintln(os.Stderr, "Error: nothing to change, set at least one of -amount, -d, -note")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.EditTeacherPayment(c.teacherID, c.paymentID, patch); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated payment %s\n", c.paymentID)
	return subcommands.ExitSuccess
}
