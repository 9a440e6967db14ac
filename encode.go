package bicadmin

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeLedger writes the whole document as canonical indented JSON.
// Encoding is deterministic: struct fields keep declaration order and map
// keys (attendance dates) are emitted sorted, so decode followed by encode
// reproduces the file byte for byte.
func EncodeLedger(w io.Writer, l *Ledger) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("could not encode ledger: %w", err)
	}
	return nil
}

// DecodeLedger reads a document written by EncodeLedger. Collections absent
// from the file come back as empty, never nil, and a missing currency
// defaults to USD, so an old data file stays valid.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	l := NewLedger()
	dec := json.NewDecoder(r)
	if err := dec.Decode(l); err != nil {
		return nil, fmt.Errorf("could not decode ledger: %w", err)
	}
	if l.Currency == "" {
		l.Currency = DefaultCurrency
	}
	if l.Students == nil {
		l.Students = make([]Student, 0)
	}
	for i := range l.Students {
		if l.Students[i].Siblings == nil {
			l.Students[i].Siblings = make([]Sibling, 0)
		}
		if l.Students[i].Payments == nil {
			l.Students[i].Payments = make([]Payment, 0)
		}
	}
	if l.Teachers == nil {
		l.Teachers = make([]Teacher, 0)
	}
	for i := range l.Teachers {
		if l.Teachers[i].Payments == nil {
			l.Teachers[i].Payments = make([]Payment, 0)
		}
		if l.Teachers[i].Attendance == nil {
			l.Teachers[i].Attendance = make(map[string]bool)
		}
	}
	if l.Incomes == nil {
		l.Incomes = make([]Income, 0)
	}
	if l.Expenses == nil {
		l.Expenses = make([]Expense, 0)
	}
	return l, nil
}
