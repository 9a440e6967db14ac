package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nsifat/bicadmin/date"
	"github.com/nsifat/bicadmin/renderer"
)

type reportCmd struct {
	month string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "income and expense report for a month" }
func (*reportCmd) Usage() string {
	return `bic report [-m <YYYY-MM>]

  Prints all incomes and expenses dated in the month, with their totals.
  Defaults to the current month.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month to report, in YYYY-MM form. Defaults to this month.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m := date.ThisMonth()
	if c.month != "" {
		var err error
		if m, err = date.ParseMonth(c.month); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	l := store.Ledger()
	printMarkdown(renderer.MonthlyReportMarkdown(l, l.MonthlyReport(m)))
	return subcommands.ExitSuccess
}
