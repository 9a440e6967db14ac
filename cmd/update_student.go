package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nsifat/bicadmin"
)

type updateStudentCmd struct {
	id        string
	name      string
	parent    string
	phone     string
	grade     string
	className string
}

func (*updateStudentCmd) Name() string     { return "update-student" }
func (*updateStudentCmd) Synopsis() string { return "update a student profile" }
func (*updateStudentCmd) Usage() string {
	return `bic update-student -id <id> [-name <name>] [-parent <name>] [-phone <phone>] [-grade <grade>] [-class <class>]

  Updates the given fields of a student profile; fields not passed are left
  unchanged. Payments are not editable here, see edit-tuition.
`
}

func (c *updateStudentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Student id (required).")
	f.StringVar(&c.name, "name", "", "New student name.")
	f.StringVar(&c.parent, "parent", "", "New parent or guardian name.")
	f.StringVar(&c.phone, "phone", "", "New contact phone number.")
	f.StringVar(&c.grade, "grade", "", "New grade.")
	f.StringVar(&c.className, "class", "", "New class name.")
}

func (c *updateStudentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: student id is required")
		return subcommands.ExitUsageError
	}

	// Only flags the user actually set make it into the patch.
	var patch bicadmin.StudentPatch
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			patch.Name = &c.name
		case "parent":
			patch.Parent = &c.parent
		case "phone":
			patch.Phone = &c.phone
		case "grade":
			patch.Grade = &c.grade
		case "class":
			patch.ClassName = &c.className
		}
	})
	if patch == (bicadmin.StudentPatch{}) {
		fmt.Fprintln(os.Stderr, "Error: nothing to update, pass at least one field flag")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.UpdateStudent(c.id, patch); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated student %s\n", c.id)
	return subcommands.ExitSuccess
}
