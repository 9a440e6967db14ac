package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
	"github.com/nsifat/bicadmin"
)

type queryCmd struct{}

func (*queryCmd) Name() string           { return "query" }
func (*queryCmd) Synopsis() string       { return "run a jsonpath query against the ledger" }
func (*queryCmd) SetFlags(*flag.FlagSet) {}
func (*queryCmd) Usage() string {
	return `bic query <jsonpath>

  Evaluates a jsonpath expression against the ledger document and prints
  the result as JSON. For example:

    bic query '$.students[*].name'
    bic query '$.incomes[?(@.amount > 100)]'
`
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one jsonpath expression")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// jsonpath works on generic JSON values, so round-trip the ledger
	// through its canonical encoding first.
	var buf bytes.Buffer
	if err := bicadmin.EncodeLedger(&buf, store.Ledger()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	var jobj any
	if err := json.Unmarshal(buf.Bytes(), &jobj); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jval); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
