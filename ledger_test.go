package bicadmin

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/nsifat/bicadmin/date"
	"github.com/shopspring/decimal"
)

func TestAddStudent(t *testing.T) {
	l := NewLedger()
	a := l.AddStudent(StudentFields{Name: "Aisha Karim", Parent: "R. Karim", Grade: "3"})
	b := l.AddStudent(StudentFields{Name: "Bilal Karim", Siblings: []Sibling{{Name: "Aisha Karim", Grade: "3"}}})

	if a.ID == b.ID {
		t.Fatalf("student ids must be unique, both got %q", a.ID)
	}
	if !strings.HasPrefix(a.ID, "S") {
		t.Errorf("student id %q should carry the S prefix", a.ID)
	}
	if len(a.Payments) != 0 {
		t.Errorf("new student should start with no payments, got %d", len(a.Payments))
	}
	if a.CreatedAt.IsZero() {
		t.Error("new student should carry a creation timestamp")
	}
	if got := len(l.Students); got != 2 {
		t.Errorf("ledger should hold 2 students, got %d", got)
	}
	if got := l.Student(b.ID); got == nil || len(got.Siblings) != 1 {
		t.Errorf("student %q should keep its sibling record", b.ID)
	}
}

func TestUpdateStudent(t *testing.T) {
	l := NewLedger()
	s := l.AddStudent(StudentFields{Name: "Aisha Karim", Parent: "R. Karim", Phone: "555-0101", Grade: "3", ClassName: "Hifz A"})

	grade := "4"
	if ok := l.UpdateStudent(s.ID, StudentPatch{Grade: &grade}); !ok {
		t.Fatal("update on existing student reported not found")
	}

	got := *l.Student(s.ID)
	want := s
	want.Grade = "4"
	if !reflect.DeepEqual(got, want) {
		t.Errorf("patch should only touch the grade:\n got %+v\nwant %+v", got, want)
	}

	if ok := l.UpdateStudent("S-unknown", StudentPatch{Grade: &grade}); ok {
		t.Error("update on unknown student should be a no-op")
	}
}

func TestStudentPaymentMirror(t *testing.T) {
	l := NewLedger()
	s := l.AddStudent(StudentFields{Name: "Aisha Karim"})
	p := NewPayment(decimal.NewFromInt(150), date.MustParse("2024-03-15"), "Tuition")

	if ok := l.AddStudentPayment(s.ID, p); !ok {
		t.Fatal("add payment on existing student reported not found")
	}

	if got := len(l.Incomes); got != 1 {
		t.Fatalf("payment should have exactly one income twin, got %d", got)
	}
	in := l.Incomes[0]
	if in.ID != p.ID || in.StudentID != s.ID {
		t.Errorf("income twin = {id:%s studentId:%s}, want {id:%s studentId:%s}", in.ID, in.StudentID, p.ID, s.ID)
	}
	if !reflect.DeepEqual(in.Payment, p) {
		t.Errorf("income twin should carry the payment fields, got %+v", in.Payment)
	}

	// Edit is reflected field-for-field on both sides.
	amount := decimal.NewFromInt(175)
	note := "Tuition (adjusted)"
	if ok := l.EditStudentPayment(s.ID, p.ID, PaymentPatch{Amount: &amount, Note: &note}); !ok {
		t.Fatal("edit on existing payment reported not found")
	}
	edited := *l.StudentPayment(s.ID, p.ID)
	if !edited.Amount.Equal(amount) || edited.Note != note || edited.Description != note {
		t.Errorf("patch not applied to payment: %+v", edited)
	}
	if !reflect.DeepEqual(l.Incomes[0].Payment, edited) {
		t.Errorf("income twin drifted from its payment:\n got %+v\nwant %+v", l.Incomes[0].Payment, edited)
	}

	// Delete removes both sides.
	if ok := l.DeleteStudentPayment(s.ID, p.ID); !ok {
		t.Fatal("delete on existing payment reported not found")
	}
	if len(l.Student(s.ID).Payments) != 0 || len(l.Incomes) != 0 {
		t.Errorf("delete should clear both sides: payments=%d incomes=%d", len(l.Student(s.ID).Payments), len(l.Incomes))
	}
}

func TestTeacherPaymentMirror(t *testing.T) {
	l := NewLedger()
	tr := l.AddTeacher(TeacherFields{Name: "A. Rahman", Salary: decimal.NewFromInt(2000)})
	p := NewPayment(decimal.NewFromInt(500), date.MustParse("2024-01-05"), "Salary")

	if ok := l.AddTeacherPayment(tr.ID, p); !ok {
		t.Fatal("add payment on existing teacher reported not found")
	}

	if got := len(l.Expenses); got != 1 {
		t.Fatalf("payment should have exactly one expense twin, got %d", got)
	}
	e := l.Expenses[0]
	if e.ID != p.ID || e.TeacherID != tr.ID {
		t.Errorf("expense twin = {id:%s teacherId:%s}, want {id:%s teacherId:%s}", e.ID, e.TeacherID, p.ID, tr.ID)
	}
	if want := "Teacher pay - " + tr.ID; e.Title != want {
		t.Errorf("expense title = %q, want %q", e.Title, want)
	}
	if !e.Amount.Equal(p.Amount) || e.Date != p.Date || e.Note != p.Note {
		t.Errorf("expense twin should carry the payment fields, got %+v", e)
	}

	on := date.MustParse("2024-01-06")
	if ok := l.EditTeacherPayment(tr.ID, p.ID, PaymentPatch{Date: &on}); !ok {
		t.Fatal("edit on existing payment reported not found")
	}
	if l.Expenses[0].Date != on || l.TeacherPayment(tr.ID, p.ID).Date != on {
		t.Error("edit should move the date on both sides")
	}

	if ok := l.DeleteTeacherPayment(tr.ID, p.ID); !ok {
		t.Fatal("delete on existing payment reported not found")
	}
	if len(l.Teacher(tr.ID).Payments) != 0 || len(l.Expenses) != 0 {
		t.Errorf("delete should clear both sides: payments=%d expenses=%d", len(l.Teacher(tr.ID).Payments), len(l.Expenses))
	}
}

func TestMutations_UnknownID(t *testing.T) {
	l := NewLedger()
	s := l.AddStudent(StudentFields{Name: "Aisha Karim"})
	p := NewPayment(decimal.NewFromInt(100), date.MustParse("2024-02-01"), "Tuition")
	l.AddStudentPayment(s.ID, p)

	// Snapshot through the codec so the copy shares no backing arrays with
	// the document and in-place element writes are caught.
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatal(err)
	}
	before, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatal(err)
	}

	note := "changed"
	testCases := []struct {
		name string
		op   func() bool
	}{
		{"add payment to unknown student", func() bool {
			return l.AddStudentPayment("S-unknown", NewPayment(decimal.NewFromInt(1), date.Today(), ""))
		}},
		{"edit unknown payment", func() bool {
			return l.EditStudentPayment(s.ID, "P-unknown", PaymentPatch{Note: &note})
		}},
		{"delete unknown payment", func() bool {
			return l.DeleteStudentPayment(s.ID, "P-unknown")
		}},
		{"pay unknown teacher", func() bool {
			return l.AddTeacherPayment("T-unknown", NewPayment(decimal.NewFromInt(1), date.Today(), ""))
		}},
		{"edit payment of unknown teacher", func() bool {
			return l.EditTeacherPayment("T-unknown", p.ID, PaymentPatch{Note: &note})
		}},
		{"delete payment of unknown teacher", func() bool {
			return l.DeleteTeacherPayment("T-unknown", p.ID)
		}},
		{"attendance of unknown teacher", func() bool {
			return l.MarkAttendance("T-unknown", date.Today(), true)
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.op() {
				t.Error("operation on unknown id reported ok")
			}
			if !reflect.DeepEqual(l, before) {
				t.Error("operation on unknown id mutated the document")
			}
		})
	}
}

func TestMarkAttendance(t *testing.T) {
	l := NewLedger()
	tr := l.AddTeacher(TeacherFields{Name: "A. Rahman"})
	on := date.MustParse("2024-01-08")

	l.MarkAttendance(tr.ID, on, true)
	if present, recorded := l.Teacher(tr.ID).Present(on); !recorded || !present {
		t.Errorf("attendance = (%v, %v), want (true, true)", present, recorded)
	}

	// Last write wins.
	l.MarkAttendance(tr.ID, on, false)
	if present, recorded := l.Teacher(tr.ID).Present(on); !recorded || present {
		t.Errorf("re-mark should overwrite: got (%v, %v), want (false, true)", present, recorded)
	}
	if got := len(l.Teacher(tr.ID).Attendance); got != 1 {
		t.Errorf("one entry per date, got %d", got)
	}

	if _, recorded := l.Teacher(tr.ID).Present(date.MustParse("2024-01-09")); recorded {
		t.Error("unmarked date should not be recorded")
	}
}

func TestAddExpense(t *testing.T) {
	l := NewLedger()
	e := l.AddExpense(ExpenseFields{Title: "Chalk", Amount: decimal.NewFromInt(12), Date: date.MustParse("2024-03-02"), Note: "supplies"})

	if !strings.HasPrefix(e.ID, "E") {
		t.Errorf("expense id %q should carry the E prefix", e.ID)
	}
	if e.TeacherID != "" {
		t.Error("standalone expense must not reference a teacher")
	}
	if got := len(l.Expenses); got != 1 {
		t.Errorf("ledger should hold 1 expense, got %d", got)
	}
}

func TestFindStudents(t *testing.T) {
	l := NewLedger()
	l.AddStudent(StudentFields{Name: "Aisha Karim"})
	l.AddStudent(StudentFields{Name: "Bilal Hossain"})

	testCases := []struct {
		query string
		want  int
	}{
		{"", 2},
		{"karim", 1},
		{"KARIM", 1},
		{"zz", 0},
	}
	for _, tc := range testCases {
		if got := len(l.FindStudents(tc.query)); got != tc.want {
			t.Errorf("FindStudents(%q) matched %d students, want %d", tc.query, got, tc.want)
		}
	}
}
