package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nsifat/bicadmin"
	"github.com/nsifat/bicadmin/date"
	"github.com/shopspring/decimal"
)

type editTuitionCmd struct {
	studentID string
	paymentID string
	password  string
	amount    string
	date      string
	note      string
}

func (*editTuitionCmd) Name() string     { return "edit-tuition" }
func (*editTuitionCmd) Synopsis() string { return "edit a recorded tuition payment" }
func (*editTuitionCmd) Usage() string {
	return `bic edit-tuition -student <id> -payment <id> -password <password> [-amount <amount>] [-d <date>] [-note <note>]

  Applies the given fields to the payment on the student and to its mirrored
  income entry. Only flags that are set are applied. Requires the admin
  password.
`
}

func (c *editTuitionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.studentID, "student", "", "Student id (required).")
	f.StringVar(&c.paymentID, "payment", "", "Payment id (required).")
	f.StringVar(&c.password, "password", "", "Admin password (required).")
	f.StringVar(&c.amount, "amount", "", "New payment amount.")
	f.StringVar(&c.date, "d", "", "New payment date.")
	f.StringVar(&c.note, "note", "", "New payment note.")
}

func (c *editTuitionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.studentID == "" || c.paymentID == "" {
		fmt.Fprintln(os.Stderr, "Error: student id and payment id are required")
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
	if err := store.EditStudentPayment(c.studentID, c.paymentID, patch); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated payment %s\n", c.paymentID)
	return subcommands.ExitSuccess
}

// paymentPatch builds a patch from the flags that were actually set.
func paymentPatch(f *flag.FlagSet, amount, day, note string) (patch bicadmin.PaymentPatch, err error) {
	f.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "amount":
			var a decimal.Decimal
			if a, err = parseAmount(amount); err == nil {
				patch.Amount = &a
			}
		case "d":
			var on date.Date
			if on, err = parseDateFlag(day); err == nil {
				patch.Date = &on
			}
		case "note":
			n := note
			patch.Note = &n
		}
	})
	return patch, err
}
