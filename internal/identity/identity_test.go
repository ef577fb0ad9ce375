package identity

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestRandomIDsAreUniqueAndPrefixed(t *testing.T) {
	gen := Random("")
	a := gen.NewID("ring")
	b := gen.NewID("ring")
	if a == b {
		t.Fatalf("expected unique ids, got %s twice", a)
	}
	if !strings.HasPrefix(a, DefaultPrefix) {
		t.Fatalf("expected default prefix, got %s", a)
	}
	if _, err := uuid.Parse(strings.TrimPrefix(a, DefaultPrefix)); err != nil {
		t.Fatalf("expected uuid suffix, got %s: %v", a, err)
	}
}

func TestDeterministicSequencesRepeat(t *testing.T) {
	first := Deterministic("gallery", "spin-")
	second := Deterministic("gallery", "spin-")

	for i := 0; i < 3; i++ {
		a := first.NewID("ring")
		b := second.NewID("ring")
		if a != b {
			t.Fatalf("step %d: expected identical ids, got %s and %s", i, a, b)
		}
		if !strings.HasPrefix(a, "spin-") {
			t.Fatalf("expected custom prefix, got %s", a)
		}
	}
}

func TestDeterministicIDsDifferWithinGenerator(t *testing.T) {
	gen := Deterministic("tests", "")
	if gen.NewID("ring") == gen.NewID("ring") {
		t.Fatal("expected successive ids to differ")
	}
}

func TestNormalizePrefixGuardsLeadingDigit(t *testing.T) {
	if got := normalizePrefix("9x"); got != "a9x" {
		t.Fatalf("normalizePrefix = %q", got)
	}
	if got := normalizePrefix("spin"); got != "spin" {
		t.Fatalf("normalizePrefix = %q", got)
	}
}

func TestUUIDEmptyKey(t *testing.T) {
	if UUID("  ") != uuid.Nil {
		t.Fatal("expected nil uuid for empty key")
	}
}
