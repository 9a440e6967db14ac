package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteTuitionCmd struct {
	studentID string
	paymentID string
	password  string
}

func (*deleteTuitionCmd) Name() string     { return "delete-tuition" }
func (*deleteTuitionCmd) Synopsis() string { return "delete a recorded tuition payment" }
func (*deleteTuitionCmd) Usage() string {
	return `bic delete-tuition -student <id> -payment <id> -password <password>

  Removes the payment from the student and its mirrored income entry.
  Requires the admin password.
`
}

func (c *deleteTuitionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.studentID, "student", "", "Student id (required).")
	f.StringVar(&c.paymentID, "payment", "", "Payment id (required).")
	f.StringVar(&c.password, "password", "", "Admin password (required).")
}

func (c *deleteTuitionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.studentID == "" || c.paymentID == "" {
		fmt.Fprintln(os.Stderr, "Error: student id and payment id are required")
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
	if err := store.DeleteStudentPayment(c.studentID, c.paymentID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted payment %s\n", c.paymentID)
	return subcommands.ExitSuccess
}
