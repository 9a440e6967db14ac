package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nsifat/bicadmin/renderer"
)

type studentCmd struct {
	id string
}

func (*studentCmd) Name() string     { return "student" }
func (*studentCmd) Synopsis() string { return "show a student profile with payment history" }
func (*studentCmd) Usage() string {
	return `bic student -id <id>

  Shows one student: profile fields, siblings, and the full tuition
  payment history.
`
}

func (c *studentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Student id (required).")
}

func (c *studentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: student id is required")
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	s := store.Ledger().Student(c.id)
	if s == nil {
		fmt.Fprintf(os.Stderr, "Error: no student with id %q\n", c.id)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StudentProfileMarkdown(store.Ledger(), s))
	return subcommands.ExitSuccess
}
