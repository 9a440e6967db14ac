package bicadmin

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/nsifat/bicadmin/date"
	"github.com/shopspring/decimal"
)

func TestOpen_EmptyDirectory(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(s.Ledger(), NewLedger()) {
		t.Errorf("fresh store should hold an empty ledger, got %+v", s.Ledger())
	}
}

func TestOpen_CorruptDataFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, DataKey+".json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("corrupt data file should fall back to empty, got error %v", err)
	}
	if !reflect.DeepEqual(s.Ledger(), NewLedger()) {
		t.Errorf("corrupt data file should load as an empty ledger, got %+v", s.Ledger())
	}
}

func TestStore_PersistsEveryMutation(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}

	st, err := s.AddStudent(StudentFields{Name: "Aisha Karim", Grade: "3"})
	if err != nil {
		t.Fatal(err)
	}
	p := NewPayment(decimal.NewFromInt(150), date.MustParse("2024-03-15"), "Tuition")
	if err := s.AddStudentPayment(st.ID, p); err != nil {
		t.Fatal(err)
	}
	tr, err := s.AddTeacher(TeacherFields{Name: "A. Rahman", Salary: decimal.NewFromInt(2000)})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.MarkAttendance(tr.ID, date.MustParse("2024-03-15"), true); err != nil {
		t.Fatal(err)
	}

	// A new store over the same directory sees the same document.
	reloaded, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(reloaded.Ledger(), s.Ledger()) {
		t.Errorf("reloaded ledger differs:\n got %+v\nwant %+v", reloaded.Ledger(), s.Ledger())
	}
}

func TestStore_NotFoundDoesNotPersist(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddStudent(StudentFields{Name: "Aisha Karim"}); err != nil {
		t.Fatal(err)
	}
	before, err := os.ReadFile(filepath.Join(dir, DataKey+".json"))
	if err != nil {
		t.Fatal(err)
	}

	if err := s.AddStudentPayment("S-unknown", NewPayment(decimal.NewFromInt(1), date.Today(), "")); err == nil {
		t.Fatal("expected an error for an unknown student")
	}
	after, err := os.ReadFile(filepath.Join(dir, DataKey+".json"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Error("failed mutation should not rewrite the data file")
	}
}

func TestEncodeLedger_RoundTripIsByteIdentical(t *testing.T) {
	l := NewLedger()
	st := l.AddStudent(StudentFields{Name: "Aisha Karim", Siblings: []Sibling{{Name: "Bilal Karim"}}})
	l.AddStudentPayment(st.ID, NewPayment(decimal.RequireFromString("150.50"), date.MustParse("2024-03-15"), "Tuition"))
	tr := l.AddTeacher(TeacherFields{Name: "A. Rahman", Salary: decimal.NewFromInt(2000)})
	l.AddTeacherPayment(tr.ID, NewPayment(decimal.NewFromInt(500), date.MustParse("2024-01-05"), "Salary"))
	l.MarkAttendance(tr.ID, date.MustParse("2024-01-08"), true)
	l.MarkAttendance(tr.ID, date.MustParse("2024-01-09"), false)
	l.AddExpense(ExpenseFields{Title: "Rent", Amount: decimal.NewFromInt(80), Date: date.MustParse("2024-01-31"), Note: "January"})

	var first bytes.Buffer
	if err := EncodeLedger(&first, l); err != nil {
		t.Fatal(err)
	}
	back, err := DecodeLedger(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	var second bytes.Buffer
	if err := EncodeLedger(&second, back); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("round trip is not byte-identical:\nfirst:\n%s\nsecond:\n%s", first.String(), second.String())
	}
}

func TestDecodeLedger_NormalizesMissingCollections(t *testing.T) {
	raw := `{"students":[{"id":"S1","name":"Aisha Karim"}],"teachers":[{"id":"T1","name":"A. Rahman"}]}`
	l, err := DecodeLedger(bytes.NewReader([]byte(raw)))
	if err != nil {
		t.Fatal(err)
	}
	if l.Currency != DefaultCurrency {
		t.Errorf("missing currency should default to %s, got %q", DefaultCurrency, l.Currency)
	}
	if l.Incomes == nil || l.Expenses == nil {
		t.Error("missing collections should decode as empty, not nil")
	}
	if l.Students[0].Payments == nil || l.Students[0].Siblings == nil {
		t.Error("missing student sequences should decode as empty, not nil")
	}
	if l.Teachers[0].Payments == nil || l.Teachers[0].Attendance == nil {
		t.Error("missing teacher sequences should decode as empty, not nil")
	}
}
