package bicadmin

import "strings"

// DefaultCurrency is the display currency of a fresh ledger.
const DefaultCurrency = "USD"

// Ledger is the whole document: the four top-level collections plus the
// display currency. Every collection is insertion-ordered and every record
// is reached by id.
type Ledger struct {
	Currency string    `json:"currency"`
	Students []Student `json:"students"`
	Teachers []Teacher `json:"teachers"`
	Incomes  []Income  `json:"incomes"`
	Expenses []Expense `json:"expenses"`
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		Currency: DefaultCurrency,
		Students: make([]Student, 0),
		Teachers: make([]Teacher, 0),
		Incomes:  make([]Income, 0),
		Expenses: make([]Expense, 0),
	}
}

// Student returns the student with this id, or nil if unknown.
func (l *Ledger) Student(id string) *Student {
	for i := range l.Students {
		if l.Students[i].ID == id {
			return &l.Students[i]
		}
	}
	return nil
}

// Teacher returns the teacher with this id, or nil if unknown.
func (l *Ledger) Teacher(id string) *Teacher {
	for i := range l.Teachers {
		if l.Teachers[i].ID == id {
			return &l.Teachers[i]
		}
	}
	return nil
}

// StudentPayment returns the payment with this id inside the given student,
// or nil if either is unknown.
func (l *Ledger) StudentPayment(studentID, paymentID string) *Payment {
	s := l.Student(studentID)
	if s == nil {
		return nil
	}
	return findPayment(s.Payments, paymentID)
}

// TeacherPayment returns the payment with this id inside the given teacher,
// or nil if either is unknown.
func (l *Ledger) TeacherPayment(teacherID, paymentID string) *Payment {
	t := l.Teacher(teacherID)
	if t == nil {
		return nil
	}
	return findPayment(t.Payments, paymentID)
}

func findPayment(payments []Payment, id string) *Payment {
	for i := range payments {
		if payments[i].ID == id {
			return &payments[i]
		}
	}
	return nil
}

// FindStudents returns the students whose name contains the query,
// case-insensitively. An empty query matches everyone.
func (l *Ledger) FindStudents(query string) []Student {
	if query == "" {
		return l.Students
	}
	q := strings.ToLower(query)
	var matches []Student
	for _, s := range l.Students {
		if strings.Contains(strings.ToLower(s.Name), q) {
			matches = append(matches, s)
		}
	}
	return matches
}
