package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nsifat/bicadmin"
)

type addExpenseCmd struct {
	title  string
	amount string
	date   string
	note   string
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record a general expense" }
func (*addExpenseCmd) Usage() string {
	return `bic add-expense -title <title> -amount <amount> [-d <date>] [-note <note>]

  Records an expense that is not tied to a teacher, such as rent or
  utilities.
`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Expense title (required).")
	f.StringVar(&c.amount, "amount", "", "Expense amount (required, non-negative).")
	f.StringVar(&c.date, "d", "", "Expense date, defaults to today.")
	f.StringVar(&c.note, "note", "", "Expense note.")
}

func (c *addExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.title == "" {
		fmt.Fprintln(os.Stderr, "Error: expense title is required")
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
	e, err := store.AddExpense(bicadmin.ExpenseFields{
		Title:  c.title,
		Amount: amount,
		Date:   on,
		Note:   c.note,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded expense %s\n", e.ID)
	return subcommands.ExitSuccess
}
