package tarot

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/pkg/errors"

	"github.com/mystic-bots/gadalka-bot/internal/model"
)

// DeckStore loads the card catalog.
type DeckStore interface {
	Deck() ([]model.TarotCard, error)
}

// Spread describes one offered layout.
type Spread struct {
	Key   string
	Title string
	Cards int
}

// Spreads lists the layouts in menu order. Keys double as callback
// identifiers.
func Spreads() []Spread {
	return []Spread{
		{Key: "one", Title: "Совет дня", Cards: 1},
		{Key: "three", Title: "Три карты (прошлое / настоящее / будущее)", Cards: 3},
		{Key: "situation", Title: "Ситуация: проблема / ресурсы / результат", Cards: 3},
		{Key: "love", Title: "Любовный расклад: я / партнёр / потенциал / совет", Cards: 4},
		{Key: "career", Title: "Карьера и финансы: текущая позиция / вызов / ресурс / совет", Cards: 4},
	}
}

// SpreadByKey returns nil for unknown keys.
func SpreadByKey(key string) *Spread {
	for _, spread := range Spreads() {
		if spread.Key == key {
			return &spread
		}
	}
	return nil
}

// DrawnCard is a card with its rolled orientation already resolved
// into the meaning to show.
type DrawnCard struct {
	Name     string
	Position string
	Meaning  string
}

const (
	positionUpright  = "Прямое"
	positionReversed = "Перевёрнутая"
)

type Engine struct {
	store DeckStore
	rnd   *rand.Rand
}

func NewEngine(store DeckStore, rnd *rand.Rand) *Engine {
	return &Engine{store: store, rnd: rnd}
}

// DrawCards picks count distinct cards from the deck, fewer when the
// deck is short, each with an independent fair orientation roll.
func (e *Engine) DrawCards(count int) ([]DrawnCard, error) {
	deck, err := e.store.Deck()
	if err != nil {
		return nil, errors.Wrap(err, "load deck")
	}
	if len(deck) == 0 {
		return nil, nil
	}
	if count > len(deck) {
		count = len(deck)
	}

	var drawn []DrawnCard
	for _, idx := range e.rnd.Perm(len(deck))[:count] {
		card := deck[idx]
		if e.rnd.Intn(2) == 1 {
			drawn = append(drawn, DrawnCard{
				Name:     card.Name,
				Position: positionReversed,
				Meaning:  card.ReversedMeaning,
			})
			continue
		}
		drawn = append(drawn, DrawnCard{
			Name:     card.Name,
			Position: positionUpright,
			Meaning:  card.UprightMeaning,
		})
	}

	return drawn, nil
}

// Compose renders a spread result as the numbered card list under its
// title.
func Compose(title string, cards []DrawnCard) string {
	if len(cards) == 0 {
		return title + ": нет доступных карт"
	}

	lines := []string{title}
	for i, card := range cards {
		lines = append(lines, fmt.Sprintf("%d. %s — %s. %s", i+1, card.Name, card.Position, card.Meaning))
	}

	return strings.Join(lines, "\n")
}

// Reading draws and formats the requested spread in one call.
func (e *Engine) Reading(spread *Spread) (string, error) {
	cards, err := e.DrawCards(spread.Cards)
	if err != nil {
		return "", err
	}
	return Compose(spread.Title, cards), nil
}
