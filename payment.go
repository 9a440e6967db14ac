package bicadmin

import (
	"github.com/nsifat/bicadmin/date"
	"github.com/shopspring/decimal"
)

// Payment is a dated monetary record attached to a student (tuition) or a
// teacher (salary). Note and Description carry the same text under two keys;
// the portal displayed one or the other depending on the view.
type Payment struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        date.Date       `json:"date"`
	Note        string          `json:"note"`
	Description string          `json:"description"`
}

// NewPayment returns a payment with a fresh id and the note duplicated
// under both display keys.
func NewPayment(amount decimal.Decimal, on date.Date, note string) Payment {
	return Payment{ID: NewPaymentID(), Amount: amount, Date: on, Note: note, Description: note}
}

// PaymentPatch is a shallow-merge patch for a payment: nil fields are left
// unchanged. Note updates both note and description.
type PaymentPatch struct {
	Amount *decimal.Decimal
	Date   *date.Date
	Note   *string
}

func (p *Payment) apply(patch PaymentPatch) {
	if patch.Amount != nil {
		p.Amount = *patch.Amount
	}
	if patch.Date != nil {
		p.Date = *patch.Date
	}
	if patch.Note != nil {
		p.Note = *patch.Note
		p.Description = *patch.Note
	}
}

// Income is the mirrored twin of a student payment, tagged with the paying
// student, kept in the flat top-level income list.
type Income struct {
	Payment
	StudentID string `json:"studentId"`
}

// Expense is an entry of the flat top-level expense list: either a
// standalone expense, or the mirrored twin of a teacher payment (in which
// case TeacherID is set and the title is derived from it).
type Expense struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Date        date.Date       `json:"date"`
	Note        string          `json:"note"`
	Description string          `json:"description,omitempty"`
	TeacherID   string          `json:"teacherId,omitempty"`
}

func (e *Expense) apply(patch PaymentPatch) {
	if patch.Amount != nil {
		e.Amount = *patch.Amount
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Note != nil {
		e.Note = *patch.Note
		e.Description = *patch.Note
	}
}

// ExpenseFields holds the caller-assembled fields of a standalone expense.
type ExpenseFields struct {
	Title  string
	Amount decimal.Decimal
	Date   date.Date
	Note   string
}
