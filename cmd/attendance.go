package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type attendanceCmd struct {
	teacherID string
	date      string
	absent    bool
}

func (*attendanceCmd) Name() string     { return "attendance" }
func (*attendanceCmd) Synopsis() string { return "mark a teacher present or absent for a day" }
func (*attendanceCmd) Usage() string {
	return `bic attendance -teacher <id> [-d <date>] [-absent]

  Marks the teacher present (default) or absent for the given day.
  Marking the same day again overwrites the previous mark.
`
}

func (c *attendanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.teacherID, "teacher", "", "Teacher id (required).")
	f.StringVar(&c.date, "d", "", "Day to mark, defaults to today.")
	f.BoolVar(&c.absent, "absent", false, "Mark the teacher absent instead of present.")
}

func (c *attendanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.teacherID == "" {
		fmt.Fprintln(os.Stderr, "Error: teacher id is required")
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
	if err := store.MarkAttendance(c.teacherID, on, !c.absent); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	mark := "present"
	if c.absent {
		mark = "absent"
	}
	fmt.Printf("Marked teacher %s %s on %s\n", c.teacherID, mark, on)
	return subcommands.ExitSuccess
}
