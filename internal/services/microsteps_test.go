package services

import (
	"strings"
	"testing"

	"github.com/Davidkingreuben/Dreamcoach/internal/models"
)

func TestMicroSteps(t *testing.T) {
	t.Parallel()

	t.Run("every archetype has four steps", func(t *testing.T) {
		t.Parallel()
		for archetype := range archetypeCatalog {
			steps := MicroSteps(archetype, "write a novel", "writing")
			if len(steps) != 4 {
				t.Fatalf("%s: got %d steps, want 4", archetype, len(steps))
			}
			for _, s := range steps {
				if s == "" {
					t.Fatalf("%s: empty step", archetype)
				}
			}
		}
	})

	t.Run("title is substituted in", func(t *testing.T) {
		t.Parallel()
		steps := MicroSteps(models.ArchetypePerfectionistFreeze, "learn the cello", "music")
		found := false
		for _, s := range steps {
			if strings.Contains(s, "learn the cello") {
				found = true
			}
		}
		if !found {
			t.Fatalf("title never substituted: %v", steps)
		}
	})

	t.Run("empty title falls back to a generic subject", func(t *testing.T) {
		t.Parallel()
		steps := MicroSteps(models.ArchetypeConsistencyCollapse, "", "")
		found := false
		for _, s := range steps {
			if strings.Contains(s, "your project") {
				found = true
			}
		}
		if !found {
			t.Fatalf("no generic subject in %v", steps)
		}
	})

	t.Run("unknown archetype uses the fog list", func(t *testing.T) {
		t.Parallel()
		got := MicroSteps("Something New", "a dream", "")
		want := MicroSteps(models.ArchetypeOverwhelmFog, "a dream", "")
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("fallback step %d = %q, want %q", i, got[i], want[i])
			}
		}
	})
}

func TestContextualQuote(t *testing.T) {
	t.Parallel()

	// Deterministic rotation: same inputs, same quote.
	a := ContextualQuote(QuoteRestart, 4, 12)
	b := ContextualQuote(QuoteRestart, 4, 12)
	if a != b {
		t.Fatalf("quote rotation is not deterministic: %q vs %q", a, b)
	}

	if got := ContextualQuote("not-a-context", 0, 0); got != quotePools[QuoteGeneral][0] {
		t.Fatalf("unknown context should use the general pool, got %q", got)
	}
}

func TestQuoteContextForStreak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		streak int
		want   string
	}{
		{0, QuoteRestart},
		{1, QuoteStruggling},
		{2, QuoteStruggling},
		{3, QuoteGeneral},
		{6, QuoteGeneral},
		{7, QuoteConsistent},
		{30, QuoteConsistent},
	}
	for _, tt := range tests {
		if got := QuoteContextForStreak(tt.streak); got != tt.want {
			t.Fatalf("QuoteContextForStreak(%d) = %q, want %q", tt.streak, got, tt.want)
		}
	}
}
