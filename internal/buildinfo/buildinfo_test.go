package buildinfo

import "testing"

func TestString(t *testing.T) {
	Version, Commit, Date = "1.2.3", "abc123", "2024-01-01"
	t.Cleanup(func() { Version, Commit, Date = "dev", "none", "unknown" })

	want := "irpal 1.2.3 (commit=abc123, date=2024-01-01)"
	if got := String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
