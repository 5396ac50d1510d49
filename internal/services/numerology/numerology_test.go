package numerology

import (
	"testing"
	"time"

	"github.com/mystic-bots/gadalka-bot/internal/model"
)

func date(day, month, year int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestDigitalRoot(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 0},
		{5, 5},
		{9, 9},
		{10, 1},
		{38, 2},
		{1999, 1},
		{2002, 4},
	}

	for _, c := range cases {
		if got := DigitalRoot(c.in); got != c.want {
			t.Errorf("DigitalRoot(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestDestiny(t *testing.T) {
	if got := Destiny(date(1, 1, 2000)); got != 4 {
		t.Errorf("Destiny(1.1.2000) = %d, want 4", got)
	}
	if got := Destiny(date(21, 3, 1990)); got != 7 {
		t.Errorf("Destiny(21.3.1990) = %d, want 7", got)
	}
}

func TestNameNumber(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"a", 1},
		{"abc", 6},
		{"Anna", 1 + 14 + 14 + 1},
		{"а", 1},
		{"ё", 7},
		{"я", 33},
		{"123 --", 0},
		{"", 0},
	}

	for _, c := range cases {
		want := c.want
		if want > 9 {
			want = DigitalRoot(want)
		}
		if got := NameNumber(c.name); got != want {
			t.Errorf("NameNumber(%q) = %d, want %d", c.name, got, want)
		}
	}
}

func TestNameNumberIgnoresCase(t *testing.T) {
	if NameNumber("Мария") != NameNumber("мария") {
		t.Error("name number must not depend on letter case")
	}
}

func TestLifeCycle(t *testing.T) {
	if got := LifeCycle(date(21, 3, 1990)); got != 9 {
		t.Errorf("LifeCycle(21.3) = %d, want 9", got)
	}
	if got := LifeCycle(date(1, 1, 1995)); got != 1 {
		t.Errorf("LifeCycle(1.1) = %d, want 1", got)
	}
}

func TestPersonalityCombinesAllThreeNumbers(t *testing.T) {
	// Destiny root(1+1+2000) = 4, name "anna" = 1+14+14+1 = 30 -> 3,
	// life cycle root(1*1) = 1.
	card := Personality("Anna", date(1, 1, 2000))

	if card.Destiny != 4 {
		t.Errorf("Destiny = %d, want 4", card.Destiny)
	}
	if card.Name != 3 {
		t.Errorf("Name = %d, want 3", card.Name)
	}
	if card.LifeCycle != 1 {
		t.Errorf("LifeCycle = %d, want 1", card.LifeCycle)
	}
}

func TestCompatibility(t *testing.T) {
	same := date(1, 1, 2000)
	if got := Compatibility(same, same); got != 10 {
		t.Errorf("Compatibility(same, same) = %d, want 10", got)
	}

	// Destiny numbers 4 and 7, distance 3.
	if got := Compatibility(date(1, 1, 2000), date(21, 3, 1990)); got != 7 {
		t.Errorf("Compatibility = %d, want 7", got)
	}
}

func TestCompatibilityNeverBelowOne(t *testing.T) {
	for d1 := 1; d1 <= 28; d1++ {
		for d2 := 1; d2 <= 28; d2++ {
			got := Compatibility(date(d1, 1, 1990), date(d2, 2, 1991))
			if got < 1 || got > 10 {
				t.Fatalf("Compatibility out of range: %d", got)
			}
		}
	}
}

type fakeTexts struct {
	descriptions map[string]string
}

func (f *fakeTexts) Description(number int, calcType string) (string, error) {
	key := calcType + string(rune('0'+number))
	if description, ok := f.descriptions[key]; ok {
		return description, nil
	}
	return "", model.ErrDescriptionNotFound
}

func TestDescribeFallsBackToEmpty(t *testing.T) {
	srv := NewService(&fakeTexts{descriptions: map[string]string{
		"destiny4": "четвёрка",
	}})

	description, err := srv.Describe(4, model.CalcDestiny)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if description != "четвёрка" {
		t.Errorf("Describe(4) = %q", description)
	}

	description, err = srv.Describe(9, model.CalcDestiny)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if description != "" {
		t.Errorf("missing description must yield empty text, got %q", description)
	}
}
