package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nsifat/bicadmin/renderer"
)

type studentsCmd struct {
	query string
}

func (*studentsCmd) Name() string     { return "students" }
func (*studentsCmd) Synopsis() string { return "list students, optionally filtered by name" }
func (*studentsCmd) Usage() string {
	return `bic students [-q <query>]

  Lists students. With -q, only students whose name contains the query
  (case-insensitive) are listed.
`
}

func (c *studentsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Name filter.")
}

func (c *studentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StudentsMarkdown(store.Ledger().FindStudents(c.query)))
	return subcommands.ExitSuccess
}
