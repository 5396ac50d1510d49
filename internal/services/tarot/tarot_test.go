package tarot

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/mystic-bots/gadalka-bot/internal/model"
)

type fakeDeck struct {
	cards []model.TarotCard
}

func (f *fakeDeck) Deck() ([]model.TarotCard, error) {
	return f.cards, nil
}

func testDeck(size int) *fakeDeck {
	deck := &fakeDeck{}
	for i := 0; i < size; i++ {
		deck.cards = append(deck.cards, model.TarotCard{
			ID:              int64(i + 1),
			Name:            "Карта " + string(rune('А'+i)),
			UprightMeaning:  "прямое значение",
			ReversedMeaning: "перевёрнутое значение",
		})
	}
	return deck
}

func newTestEngine(deck *fakeDeck) *Engine {
	return NewEngine(deck, rand.New(rand.NewSource(42)))
}

func TestDrawCardsDistinct(t *testing.T) {
	engine := newTestEngine(testDeck(10))

	cards, err := engine.DrawCards(4)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(cards) != 4 {
		t.Fatalf("drew %d cards, want 4", len(cards))
	}

	seen := map[string]bool{}
	for _, card := range cards {
		if seen[card.Name] {
			t.Errorf("card %q drawn twice", card.Name)
		}
		seen[card.Name] = true
	}
}

func TestDrawCardsClampsToDeckSize(t *testing.T) {
	engine := newTestEngine(testDeck(2))

	cards, err := engine.DrawCards(5)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(cards) != 2 {
		t.Errorf("drew %d cards from a 2-card deck, want 2", len(cards))
	}
}

func TestDrawCardsOrientation(t *testing.T) {
	engine := newTestEngine(testDeck(20))

	positions := map[string]int{}
	for i := 0; i < 50; i++ {
		cards, err := engine.DrawCards(3)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		for _, card := range cards {
			positions[card.Position]++
			if card.Position == "Прямое" && card.Meaning != "прямое значение" {
				t.Fatalf("upright card carries wrong meaning: %q", card.Meaning)
			}
			if card.Position == "Перевёрнутая" && card.Meaning != "перевёрнутое значение" {
				t.Fatalf("reversed card carries wrong meaning: %q", card.Meaning)
			}
		}
	}

	if positions["Прямое"] == 0 || positions["Перевёрнутая"] == 0 {
		t.Errorf("both orientations must occur over many draws: %v", positions)
	}
}

func TestDrawCardsEmptyDeck(t *testing.T) {
	engine := newTestEngine(testDeck(0))

	cards, err := engine.DrawCards(3)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cards != nil {
		t.Errorf("empty deck must yield no cards, got %v", cards)
	}
}

func TestCompose(t *testing.T) {
	text := Compose("Совет дня", []DrawnCard{
		{Name: "Шут", Position: "Прямое", Meaning: "новый этап"},
	})
	if !strings.HasPrefix(text, "Совет дня\n") {
		t.Errorf("composed text must start with the title: %q", text)
	}
	if !strings.Contains(text, "1. Шут — Прямое. новый этап") {
		t.Errorf("composed text misses the card line: %q", text)
	}

	empty := Compose("Совет дня", nil)
	if empty != "Совет дня: нет доступных карт" {
		t.Errorf("empty spread text = %q", empty)
	}
}

func TestSpreads(t *testing.T) {
	spreads := Spreads()
	if len(spreads) != 5 {
		t.Fatalf("expected 5 spreads, got %d", len(spreads))
	}

	counts := map[string]int{
		"one": 1, "three": 3, "situation": 3, "love": 4, "career": 4,
	}
	for _, spread := range spreads {
		if counts[spread.Key] != spread.Cards {
			t.Errorf("spread %q draws %d cards, want %d", spread.Key, spread.Cards, counts[spread.Key])
		}
	}

	if SpreadByKey("one") == nil || SpreadByKey("nope") != nil {
		t.Error("SpreadByKey lookup broken")
	}
}
