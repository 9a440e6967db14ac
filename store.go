package bicadmin

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/nsifat/bicadmin/date"
)

// Storage keys, kept from the portal this replaces so an exported
// localStorage dump maps one-to-one onto the data directory.
const (
	DataKey = "bic_v2_data"
	LockKey = "bic_v2_lock"
)

// ErrNotFound is returned by store operations targeting an unknown id. The
// document is left unchanged and nothing is persisted.
var ErrNotFound = errors.New("record not found")

// Store owns the ledger document and its data directory. It is the only
// writer: every successful mutation rewrites the data file wholesale.
type Store struct {
	dir    string
	ledger *Ledger
}

// Open loads the store from the data directory, creating the directory if
// needed. A missing or unreadable data file loads as an empty ledger; the
// document is only written back on the next mutation (or Save).
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	s := &Store{dir: dir}

	f, err := os.Open(s.dataPath())
	if errors.Is(err, fs.ErrNotExist) {
		s.ledger = NewLedger()
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open data file %q: %w", s.dataPath(), err)
	}
	defer f.Close()

	l, err := DecodeLedger(f)
	if err != nil {
		// A corrupt data file falls back to an empty document. The broken
		// file stays on disk untouched until the next mutation.
		log.Printf("warning: %v, starting from an empty ledger", err)
		s.ledger = NewLedger()
		return s, nil
	}
	s.ledger = l
	return s, nil
}

func (s *Store) dataPath() string { return filepath.Join(s.dir, DataKey+".json") }

// Dir returns the data directory the store persists to.
func (s *Store) Dir() string { return s.dir }

// Ledger returns the document for reads. Mutations go through the store
// operations below so they are persisted.
func (s *Store) Ledger() *Ledger { return s.ledger }

// Save rewrites the data file from the in-memory document.
func (s *Store) Save() error {
	f, err := os.Create(s.dataPath())
	if err != nil {
		return fmt.Errorf("could not write data file %q: %w", s.dataPath(), err)
	}
	defer f.Close()
	return EncodeLedger(f, s.ledger)
}

// The store operations mirror the ledger operation set one to one, adding
// the persist step. Not-found reports ErrNotFound without persisting.

func (s *Store) AddStudent(f StudentFields) (Student, error) {
	st := s.ledger.AddStudent(f)
	return st, s.Save()
}

func (s *Store) UpdateStudent(id string, patch StudentPatch) error {
	if !s.ledger.UpdateStudent(id, patch) {
		return fmt.Errorf("student %q: %w", id, ErrNotFound)
	}
	return s.Save()
}

func (s *Store) AddStudentPayment(studentID string, p Payment) error {
	if !s.ledger.AddStudentPayment(studentID, p) {
		return fmt.Errorf("student %q: %w", studentID, ErrNotFound)
	}
	return s.Save()
}

func (s *Store) EditStudentPayment(studentID, paymentID string, patch PaymentPatch) error {
	if !s.ledger.EditStudentPayment(studentID, paymentID, patch) {
		return fmt.Errorf("payment %q of student %q: %w", paymentID, studentID, ErrNotFound)
	}
	return s.Save()
}

func (s *Store) DeleteStudentPayment(studentID, paymentID string) error {
	if !s.ledger.DeleteStudentPayment(studentID, paymentID) {
		return fmt.Errorf("payment %q of student %q: %w", paymentID, studentID, ErrNotFound)
	}
	return s.Save()
}

func (s *Store) AddTeacher(f TeacherFields) (Teacher, error) {
	t := s.ledger.AddTeacher(f)
	return t, s.Save()
}

func (s *Store) AddTeacherPayment(teacherID string, p Payment) error {
	if !s.ledger.AddTeacherPayment(teacherID, p) {
		return fmt.Errorf("teacher %q: %w", teacherID, ErrNotFound)
	}
	return s.Save()
}

func (s *Store) EditTeacherPayment(teacherID, paymentID string, patch PaymentPatch) error {
	if !s.ledger.EditTeacherPayment(teacherID, paymentID, patch) {
		return fmt.Errorf("payment %q of teacher %q: %w", paymentID, teacherID, ErrNotFound)
	}
	return s.Save()
}

func (s *Store) DeleteTeacherPayment(teacherID, paymentID string) error {
	if !s.ledger.DeleteTeacherPayment(teacherID, paymentID) {
		return fmt.Errorf("payment %q of teacher %q: %w", paymentID, teacherID, ErrNotFound)
	}
	return s.Save()
}

func (s *Store) AddExpense(f ExpenseFields) (Expense, error) {
	e := s.ledger.AddExpense(f)
	return e, s.Save()
}

func (s *Store) MarkAttendance(teacherID string, on date.Date, present bool) error {
	if !s.ledger.MarkAttendance(teacherID, on, present) {
		return fmt.Errorf("teacher %q: %w", teacherID, ErrNotFound)
	}
	return s.Save()
}
