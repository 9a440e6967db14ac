package bicadmin

import "github.com/google/uuid"

// Identifiers carry a one-letter kind prefix followed by a random UUID.
// The portal this replaces used millisecond timestamps plus a small random
// suffix; only uniqueness is part of the contract, not the format.
func newID(prefix string) string { return prefix + uuid.NewString() }

// NewPaymentID returns a fresh identifier for a payment. Payment ids are
// caller-assigned so the same id names the payment and its mirrored
// income/expense twin.
func NewPaymentID() string { return newID("P") }
