package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type loginCmd struct {
	username string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "check the admin credentials against the gate" }
func (*loginCmd) Usage() string {
	return `bic login -u <username> -p <password>

  Checks the credential pair against the configured admin account. Five
  consecutive failures lock the gate for five minutes. The gate is a
  convenience lock, not security; see 'bic topic security'.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Admin username.")
	f.StringVar(&c.password, "p", "", "Admin password.")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	gate := openGate()
	if err := gate.Login(c.username, c.password); err != nil {
		fmt.Fprintf(os.Stderr, "Login failed: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Signed in as %s\n", c.username)
	return subcommands.ExitSuccess
}
