package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nsifat/bicadmin/renderer"
)

type teachersCmd struct{}

func (*teachersCmd) Name() string           { return "teachers" }
func (*teachersCmd) Synopsis() string       { return "list teachers" }
func (*teachersCmd) SetFlags(*flag.FlagSet) {}
func (*teachersCmd) Usage() string {
	return `bic teachers

  Lists all teachers with their salary and payment history totals.
`
}

func (c *teachersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TeachersMarkdown(store.Ledger()))
	return subcommands.ExitSuccess
}
