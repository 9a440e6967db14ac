package bicadmin

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// The gate is NOT an authentication system. It is the CLI rendition of the
// portal's client-side login screen: a hardcoded credential check with an
// attempt counter, kept only so the tool is not opened by accident. Anyone
// with access to the data directory can read or edit the ledger directly.

// Default credentials of the portal. Override them through configuration;
// do not mistake either for a secret.
const (
	DefaultUsername = "nsifat"
	DefaultPassword = "SifatxBIC@admin"
)

const (
	// MaxAttempts is how many consecutive failures trigger a lockout.
	MaxAttempts = 5
	// LockoutDuration starts at the failure that exhausts the attempts.
	LockoutDuration = 5 * time.Minute
)

var (
	// ErrLockedOut rejects attempts while a lockout is active.
	ErrLockedOut = errors.New("too many failed attempts")
	// ErrBadCredentials rejects a wrong username/password pair.
	ErrBadCredentials = errors.New("invalid credentials")
)

// Gate rate-limits the credential check. The attempt counter lives in
// memory and resets when the process restarts; only an active lockout is
// persisted, under the lock key next to the data file.
type Gate struct {
	dir      string
	username string
	password string
	attempts int
	now      func() time.Time // test hook
}

// NewGate returns a gate over the given data directory. An expired lockout
// left on disk is removed immediately.
func NewGate(dir, username, password string) *Gate {
	// The lockout persists in the data directory, so it must exist even if
	// no ledger was written yet.
	os.MkdirAll(dir, 0755)
	g := &Gate{dir: dir, username: username, password: password, attempts: MaxAttempts, now: time.Now}
	g.LockedUntil()
	return g
}

func (g *Gate) lockPath() string { return filepath.Join(g.dir, LockKey+".json") }

// lockRecord is the persisted form of an active lockout.
type lockRecord struct {
	Until time.Time `json:"until"`
}

// LockedUntil reports the expiry of the active lockout, if one is active.
// An expired or unreadable lock file is removed as a side effect.
func (g *Gate) LockedUntil() (time.Time, bool) {
	raw, err := os.ReadFile(g.lockPath())
	if errors.Is(err, fs.ErrNotExist) {
		return time.Time{}, false
	}
	var rec lockRecord
	if err != nil || json.Unmarshal(raw, &rec) != nil || !rec.Until.After(g.now()) {
		os.Remove(g.lockPath())
		return time.Time{}, false
	}
	return rec.Until, true
}

// AttemptsLeft returns how many attempts remain before a lockout.
func (g *Gate) AttemptsLeft() int { return g.attempts }

// Login checks the credential pair. A successful login resets the attempt
// counter and clears any lock file. The failure that exhausts the counter
// persists a lockout expiring exactly LockoutDuration later; attempts made
// during the lockout are rejected without decrementing further.
func (g *Gate) Login(username, password string) error {
	if until, locked := g.LockedUntil(); locked {
		return fmt.Errorf("%w, try again at %s", ErrLockedOut, until.Format(time.RFC3339))
	}
	if username == g.username && password == g.password {
		g.attempts = MaxAttempts
		os.Remove(g.lockPath())
		return nil
	}
	g.attempts--
	if g.attempts <= 0 {
		until := g.now().Add(LockoutDuration)
		if raw, err := json.Marshal(lockRecord{Until: until}); err == nil {
			os.WriteFile(g.lockPath(), raw, 0644)
		}
		return fmt.Errorf("%w, try again at %s", ErrLockedOut, until.Format(time.RFC3339))
	}
	return fmt.Errorf("%w, %d attempts remaining", ErrBadCredentials, g.attempts)
}

// Confirm re-checks the admin password. The CLI requires it before editing
// an existing payment; the ledger itself performs no authorization check.
func (g *Gate) Confirm(password string) bool { return password == g.password }
