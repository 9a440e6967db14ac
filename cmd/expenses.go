package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nsifat/bicadmin/renderer"
)

type expensesCmd struct{}

func (*expensesCmd) Name() string           { return "expenses" }
func (*expensesCmd) Synopsis() string       { return "list all expenses" }
func (*expensesCmd) SetFlags(*flag.FlagSet) {}
func (*expensesCmd) Usage() string {
	return `bic expenses

  Lists every expense entry, salary payments included.
`
}

func (c *expensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ExpensesMarkdown(store.Ledger()))
	return subcommands.ExitSuccess
}
