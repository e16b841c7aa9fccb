package leaderboard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func TestLoadIdentityCreatesAndReuses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "identity.yaml")

	first, err := LoadIdentity(path)
	if err != nil {
		t.Fatalf("LoadIdentity() error = %v", err)
	}
	if _, err := uuid.Parse(first.UserID); err != nil {
		t.Errorf("UserID %q is not a uuid", first.UserID)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("identity file not written: %v", err)
	}

	second, err := LoadIdentity(path)
	if err != nil {
		t.Fatalf("LoadIdentity() second error = %v", err)
	}
	if second.UserID != first.UserID {
		t.Errorf("UserID changed: %q vs %q", second.UserID, first.UserID)
	}
}

func TestIdentitySaveRoundTripsName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identity.yaml")
	id := NewIdentity("  Flynn ")
	if err := id.Save(path); err != nil {
		t.Fatal(err)
	}

	got, err := LoadIdentity(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != (Identity{UserID: id.UserID, Name: "Flynn"}) {
		t.Errorf("loaded %+v", got)
	}
}

func TestLoadIdentityRejectsBadUserID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identity.yaml")
	if err := os.WriteFile(path, []byte("user_id: nope\nname: x\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadIdentity(path); err == nil {
		t.Error("expected error for invalid user id")
	}
}
