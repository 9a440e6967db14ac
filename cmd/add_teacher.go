package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nsifat/bicadmin"
)

type addTeacherCmd struct {
	name      string
	phone     string
	gender    string
	className string
	salary    string
}

func (*addTeacherCmd) Name() string     { return "add-teacher" }
func (*addTeacherCmd) Synopsis() string { return "add a new teacher" }
func (*addTeacherCmd) Usage() string {
	return `bic add-teacher -name <name> [-phone <phone>] [-gender <gender>] [-class <class>] [-salary <amount>]

  Creates a teacher record and prints its id.
`
}

func (c *addTeacherCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Teacher name (required).")
	f.StringVar(&c.phone, "phone", "", "Phone number.")
	f.StringVar(&c.gender, "gender", "", "Gender.")
	f.StringVar(&c.className, "class", "", "Class the teacher is assigned to.")
	f.StringVar(&c.salary, "salary", "0", "Monthly salary.")
}

func (c *addTeacherCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: teacher name is required")
		return subcommands.ExitUsageError
	}
	salary, err := parseAmount(c.salary)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	t, err := store.AddTeacher(bicadmin.TeacherFields{
		Name:      c.name,
		Phone:     c.phone,
		Gender:    c.gender,
		ClassName: c.className,
		Salary:    salary,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added teacher %s (%s)\n", t.Name, t.ID)
	return subcommands.ExitSuccess
}
