package bicadmin

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// testGate returns a gate with a controllable clock. The clock starts at the
// current wall time because NewGate prunes expired locks with time.Now before
// a test can install the fake.
func testGate(t *testing.T) (*Gate, *time.Time) {
	t.Helper()
	now := time.Now().UTC()
	g := NewGate(t.TempDir(), DefaultUsername, DefaultPassword)
	g.now = func() time.Time { return now }
	return g, &now
}

func TestGate_LoginSuccess(t *testing.T) {
	g, _ := testGate(t)
	if err := g.Login(DefaultUsername, DefaultPassword); err != nil {
		t.Fatalf("valid credentials rejected: %v", err)
	}
	if g.AttemptsLeft() != MaxAttempts {
		t.Errorf("attempts after success = %d, want %d", g.AttemptsLeft(), MaxAttempts)
	}
}

func TestGate_AttemptsAndLockout(t *testing.T) {
	g, now := testGate(t)

	// Four failures leave one attempt and no lockout.
	for i := 0; i < MaxAttempts-1; i++ {
		err := g.Login(DefaultUsername, "wrong")
		if !errors.Is(err, ErrBadCredentials) {
			t.Fatalf("failure %d: got %v, want ErrBadCredentials", i+1, err)
		}
	}
	if g.AttemptsLeft() != 1 {
		t.Fatalf("attempts left = %d, want 1", g.AttemptsLeft())
	}
	if _, locked := g.LockedUntil(); locked {
		t.Fatal("lockout must not start before the attempts are exhausted")
	}

	// The fifth failure locks out for exactly LockoutDuration.
	fifth := *now
	if err := g.Login(DefaultUsername, "wrong"); !errors.Is(err, ErrLockedOut) {
		t.Fatalf("exhausting failure: got %v, want ErrLockedOut", err)
	}
	until, locked := g.LockedUntil()
	if !locked {
		t.Fatal("lockout should be active")
	}
	if want := fifth.Add(LockoutDuration); !until.Equal(want) {
		t.Errorf("lockout expires at %v, want %v", until, want)
	}

	// A sixth attempt before expiry is rejected even with valid credentials.
	*now = now.Add(time.Minute)
	if err := g.Login(DefaultUsername, DefaultPassword); !errors.Is(err, ErrLockedOut) {
		t.Errorf("attempt during lockout: got %v, want ErrLockedOut", err)
	}

	// The lockout survives a process restart (a fresh gate on the same dir).
	g2 := NewGate(g.dir, DefaultUsername, DefaultPassword)
	g2.now = g.now
	if until2, locked := g2.LockedUntil(); !locked {
		t.Error("lockout should persist across restarts")
	} else if !until2.Equal(until) {
		t.Errorf("lockout after restart expires at %v, want %v", until2, until)
	}

	// After expiry the counter resets and valid credentials pass.
	*now = fifth.Add(LockoutDuration + time.Second)
	if err := g2.Login(DefaultUsername, DefaultPassword); err != nil {
		t.Errorf("login after lockout expiry rejected: %v", err)
	}
	if _, err := os.Stat(filepath.Join(g.dir, LockKey+".json")); !os.IsNotExist(err) {
		t.Error("successful login should remove the lock file")
	}
}

func TestGate_ExpiredLockRemovedOnLoad(t *testing.T) {
	dir := t.TempDir()
	stale := []byte(`{"until":"2020-01-01T00:00:00Z"}`)
	if err := os.WriteFile(filepath.Join(dir, LockKey+".json"), stale, 0644); err != nil {
		t.Fatal(err)
	}
	NewGate(dir, DefaultUsername, DefaultPassword)
	if _, err := os.Stat(filepath.Join(dir, LockKey+".json")); !os.IsNotExist(err) {
		t.Error("expired lock file should be removed on load")
	}
}

func TestGate_Confirm(t *testing.T) {
	g, _ := testGate(t)
	if !g.Confirm(DefaultPassword) {
		t.Error("correct password should confirm")
	}
	if g.Confirm("wrong") {
		t.Error("wrong password should not confirm")
	}
}
