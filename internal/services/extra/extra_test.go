package extra

import (
	"math/rand"
	"testing"
)

func TestRuneOfTheDay(t *testing.T) {
	srv := NewService(rand.New(rand.NewSource(1)))

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		r := srv.RuneOfTheDay()
		if r.Name == "" || r.Meaning == "" {
			t.Fatal("rune with empty name or meaning")
		}
		seen[r.Name] = true
	}

	if len(seen) < 20 {
		t.Errorf("200 draws hit only %d distinct runes of %d", len(seen), len(runes))
	}
}

func TestMetaphorOfTheDay(t *testing.T) {
	srv := NewService(rand.New(rand.NewSource(1)))

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		m := srv.MetaphorOfTheDay()
		if m == "" {
			t.Fatal("empty metaphor")
		}
		seen[m] = true
	}

	if len(seen) < 2 {
		t.Error("metaphor draws must vary")
	}
}

func TestRuneSetComplete(t *testing.T) {
	if len(runes) != 24 {
		t.Errorf("elder futhark has 24 runes, got %d", len(runes))
	}
}
