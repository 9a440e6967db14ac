// Package bicadmin implements the ledger behind the BIC admin portal: a
// single-tenant record of students, teachers, tuition payments, salary
// payments and standalone expenses, persisted wholesale to a local data
// directory after every mutation.
//
// The package is organized around three objects:
//
//   - Ledger: the whole document, four collections plus a display currency.
//     All mutations are pure in-memory transforms on the Ledger.
//   - Store: owns a Ledger and its data directory, and rewrites the data
//     file after each successful mutation.
//   - Gate: the non-secure login lock in front of the CLI. It is not an
//     authentication system; it only rate-limits a hardcoded credential
//     check, exactly as the portal it replaces did.
//
// The one invariant that matters is the mirrored ledger: every student
// payment has exactly one Income twin and every teacher payment has exactly
// one Expense twin, matched by id. Both sides are always written in the same
// operation; there is no API to touch one side alone.
package bicadmin
