package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/nsifat/bicadmin"
)

type addStudentCmd struct {
	name      string
	parent    string
	phone     string
	grade     string
	className string
	siblings  []bicadmin.Sibling
}

func (*addStudentCmd) Name() string     { return "add-student" }
func (*addStudentCmd) Synopsis() string { return "register a new student" }
func (*addStudentCmd) Usage() string {
	return `bic add-student -name <name> [-parent <name>] [-phone <phone>] [-grade <grade>] [-class <class>] [-sibling "name|parent|phone|grade|class"]...

  Registers a student and prints their id. The -sibling flag may repeat,
  one sibling per flag, fields separated by '|' (trailing fields optional).

Usage Examples:
$ bic add-student -name "Aisha Karim" -parent "R. Karim" -grade 3 -class "Hifz A" \
    -sibling "Bilal Karim|R. Karim||5|Hifz B"
`
}

func (c *addStudentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Student full name (required).")
	f.StringVar(&c.parent, "parent", "", "Parent or guardian name.")
	f.StringVar(&c.phone, "phone", "", "Contact phone number.")
	f.StringVar(&c.grade, "grade", "", "Grade.")
	f.StringVar(&c.className, "class", "", "Class name.")
	f.Func("sibling", "Sibling record 'name|parent|phone|grade|class', repeatable.", func(s string) error {
		sib, err := parseSibling(s)
		if err != nil {
			return err
		}
		c.siblings = append(c.siblings, sib)
		return nil
	})
}

func parseSibling(s string) (bicadmin.Sibling, error) {
	parts := strings.Split(s, "|")
	if len(parts) > 5 {
		return bicadmin.Sibling{}, fmt.Errorf("too many fields in sibling %q, want at most 5", s)
	}
	for len(parts) < 5 {
		parts = append(parts, "")
	}
	if strings.TrimSpace(parts[0]) == "" {
		return bicadmin.Sibling{}, fmt.Errorf("sibling name is required in %q", s)
	}
	return bicadmin.Sibling{Name: parts[0], Parent: parts[1], Phone: parts[2], Grade: parts[3], ClassName: parts[4]}, nil
}

func (c *addStudentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if strings.TrimSpace(c.name) == "" {
		fmt.Fprintln(os.Stderr, "Error: student name is required")
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	s, err := store.AddStudent(bicadmin.StudentFields{
		Name:      c.name,
		Parent:    c.parent,
		Phone:     c.phone,
		Grade:     c.grade,
		ClassName: c.className,
		Siblings:  c.siblings,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Registered student %s (%s)\n", s.Name, s.ID)
	return subcommands.ExitSuccess
}
