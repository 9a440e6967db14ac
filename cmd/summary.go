package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nsifat/bicadmin/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string           { return "summary" }
func (*summaryCmd) Synopsis() string       { return "all-time totals and recent activity" }
func (*summaryCmd) SetFlags(*flag.FlagSet) {}
func (*summaryCmd) Usage() string {
	return `bic summary

  Prints head counts, all-time income and expense totals, the running
  balance and the most recent entries.
`
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	l := store.Ledger()
	printMarkdown(renderer.SummaryMarkdown(l, l.Summary()))
	return subcommands.ExitSuccess
}
