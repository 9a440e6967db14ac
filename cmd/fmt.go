package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string           { return "fmt" }
func (*fmtCmd) Synopsis() string       { return "rewrite the ledger file in canonical form" }
func (*fmtCmd) SetFlags(*flag.FlagSet) {}
func (*fmtCmd) Usage() string {
	return `bic fmt

  Reads the ledger and writes it back in canonical indented form. Useful
  after editing the file by hand.
`
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.Save(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Ledger formatted.")
	return subcommands.ExitSuccess
}
