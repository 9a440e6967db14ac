package bicadmin

import (
	"fmt"
	"time"

	"github.com/nsifat/bicadmin/date"
)

// This file holds the fixed operation set of the ledger. Every operation is
// a synchronous in-memory transform; operations targeting an unknown id
// leave the document unchanged and report ok=false. The mirrored
// income/expense entries are only ever written here, together with their
// owning payment, so the two sides cannot drift.

// AddStudent appends a new student with a fresh id, empty payments and
// createdAt set to now, and returns it.
func (l *Ledger) AddStudent(f StudentFields) Student {
	siblings := f.Siblings
	if siblings == nil {
		siblings = make([]Sibling, 0)
	}
	s := Student{
		ID:        newID("S"),
		Name:      f.Name,
		Parent:    f.Parent,
		Phone:     f.Phone,
		Grade:     f.Grade,
		ClassName: f.ClassName,
		Siblings:  siblings,
		Payments:  make([]Payment, 0),
		CreatedAt: time.Now().UTC(),
	}
	l.Students = append(l.Students, s)
	return s
}

// UpdateStudent shallow-merges the patch into the matching student.
func (l *Ledger) UpdateStudent(id string, patch StudentPatch) (ok bool) {
	s := l.Student(id)
	if s == nil {
		return false
	}
	s.apply(patch)
	return true
}

// AddStudentPayment appends the payment to the student and the mirrored
// income entry to the income list, in one step.
func (l *Ledger) AddStudentPayment(studentID string, p Payment) (ok bool) {
	s := l.Student(studentID)
	if s == nil {
		return false
	}
	s.Payments = append(s.Payments, p)
	l.Incomes = append(l.Incomes, Income{Payment: p, StudentID: studentID})
	return true
}

// EditStudentPayment merges the patch into the payment inside the student
// and into the matching income entry.
func (l *Ledger) EditStudentPayment(studentID, paymentID string, patch PaymentPatch) (ok bool) {
	p := l.StudentPayment(studentID, paymentID)
	if p == nil {
		return false
	}
	p.apply(patch)
	for i := range l.Incomes {
		if l.Incomes[i].ID == paymentID {
			l.Incomes[i].Payment.apply(patch)
		}
	}
	return true
}

// DeleteStudentPayment removes the payment from the student and the
// matching income entry from the income list.
func (l *Ledger) DeleteStudentPayment(studentID, paymentID string) (ok bool) {
	s := l.Student(studentID)
	if s == nil || findPayment(s.Payments, paymentID) == nil {
		return false
	}
	s.Payments = deletePayment(s.Payments, paymentID)
	kept := l.Incomes[:0]
	for _, in := range l.Incomes {
		if in.ID != paymentID {
			kept = append(kept, in)
		}
	}
	l.Incomes = kept
	return true
}

// AddTeacher appends a new teacher with a fresh id, empty payments and
// attendance, and returns it.
func (l *Ledger) AddTeacher(f TeacherFields) Teacher {
	t := Teacher{
		ID:         newID("T"),
		Name:       f.Name,
		Phone:      f.Phone,
		Gender:     f.Gender,
		ClassName:  f.ClassName,
		Salary:     f.Salary,
		Payments:   make([]Payment, 0),
		Attendance: make(map[string]bool),
		CreatedAt:  time.Now().UTC(),
	}
	l.Teachers = append(l.Teachers, t)
	return t
}

// AddTeacherPayment appends the payment to the teacher and the mirrored
// expense entry to the expense list, in one step.
func (l *Ledger) AddTeacherPayment(teacherID string, p Payment) (ok bool) {
	t := l.Teacher(teacherID)
	if t == nil {
		return false
	}
	t.Payments = append(t.Payments, p)
	l.Expenses = append(l.Expenses, Expense{
		ID:          p.ID,
		Title:       fmt.Sprintf("Teacher pay - %s", teacherID),
		Amount:      p.Amount,
		Date:        p.Date,
		Note:        p.Note,
		Description: p.Description,
		TeacherID:   teacherID,
	})
	return true
}

// EditTeacherPayment merges the patch into the payment inside the teacher
// and into the matching expense entry.
func (l *Ledger) EditTeacherPayment(teacherID, paymentID string, patch PaymentPatch) (ok bool) {
	p := l.TeacherPayment(teacherID, paymentID)
	if p == nil {
		return false
	}
	p.apply(patch)
	for i := range l.Expenses {
		if l.Expenses[i].ID == paymentID {
			l.Expenses[i].apply(patch)
		}
	}
	return true
}

// DeleteTeacherPayment removes the payment from the teacher and the
// matching expense entry from the expense list.
func (l *Ledger) DeleteTeacherPayment(teacherID, paymentID string) (ok bool) {
	t := l.Teacher(teacherID)
	if t == nil || findPayment(t.Payments, paymentID) == nil {
		return false
	}
	t.Payments = deletePayment(t.Payments, paymentID)
	kept := l.Expenses[:0]
	for _, e := range l.Expenses {
		if e.ID != paymentID {
			kept = append(kept, e)
		}
	}
	l.Expenses = kept
	return true
}

// AddExpense appends a standalone expense with a fresh id and returns it.
// Standalone expenses are not mirrored to any payment.
func (l *Ledger) AddExpense(f ExpenseFields) Expense {
	e := Expense{
		ID:     newID("E"),
		Title:  f.Title,
		Amount: f.Amount,
		Date:   f.Date,
		Note:   f.Note,
	}
	l.Expenses = append(l.Expenses, e)
	return e
}

// MarkAttendance sets the teacher's attendance for the date, overwriting
// any previous value for that date.
func (l *Ledger) MarkAttendance(teacherID string, on date.Date, present bool) (ok bool) {
	t := l.Teacher(teacherID)
	if t == nil {
		return false
	}
	if t.Attendance == nil {
		t.Attendance = make(map[string]bool)
	}
	t.Attendance[on.String()] = present
	return true
}

func deletePayment(payments []Payment, id string) []Payment {
	kept := payments[:0]
	for _, p := range payments {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return kept
}
