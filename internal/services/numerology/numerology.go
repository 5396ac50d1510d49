package numerology

import (
	"time"
	"unicode"

	"github.com/pkg/errors"

	"github.com/mystic-bots/gadalka-bot/internal/model"
)

// Texts resolves the meaning text for a calculated number.
type Texts interface {
	Description(number int, calcType string) (string, error)
}

type Service struct {
	texts Texts
}

func NewService(texts Texts) *Service {
	return &Service{texts: texts}
}

// DigitalRoot folds a number down to a single digit by repeated digit
// summation. Zero and negatives come back unchanged.
func DigitalRoot(n int) int {
	for n > 9 {
		sum := 0
		for n > 0 {
			sum += n % 10
			n /= 10
		}
		n = sum
	}
	return n
}

// Destiny is the digital root of day + month + year digits taken as
// whole numbers, e.g. 1.1.2000 gives root(1+1+2000) = 4.
func Destiny(birthDate time.Time) int {
	return DigitalRoot(birthDate.Day() + int(birthDate.Month()) + birthDate.Year())
}

// NameNumber maps every letter to its alphabet position (Latin 1..26,
// Cyrillic 1..33), sums them and folds to a digital root. A name with
// no letters at all yields 0 without reduction.
func NameNumber(name string) int {
	sum := 0
	for _, r := range name {
		sum += letterValue(unicode.ToLower(r))
	}
	if sum == 0 {
		return 0
	}
	return DigitalRoot(sum)
}

func letterValue(r rune) int {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 1
	case r >= 'а' && r <= 'я':
		return int(r-'а') + 1 + cyrillicOffset(r)
	case r == 'ё':
		return 7
	}
	return 0
}

// The Russian alphabet puts ё seventh, between е and ж, so letters
// from ж onward sit one position past their rune distance from а.
func cyrillicOffset(r rune) int {
	if r >= 'ж' {
		return 1
	}
	return 0
}

// LifeCycle folds day * month to a single digit.
func LifeCycle(birthDate time.Time) int {
	return DigitalRoot(birthDate.Day() * int(birthDate.Month()))
}

// PersonalityCard bundles the three numbers derived from a name and a
// birth date.
type PersonalityCard struct {
	Destiny   int
	Name      int
	LifeCycle int
}

func Personality(name string, birthDate time.Time) PersonalityCard {
	return PersonalityCard{
		Destiny:   Destiny(birthDate),
		Name:      NameNumber(name),
		LifeCycle: LifeCycle(birthDate),
	}
}

// Compatibility scores two destiny numbers on a 1..10 scale: identical
// numbers give 10, each step of distance costs a point, floored at 1.
func Compatibility(first, second time.Time) int {
	diff := Destiny(first) - Destiny(second)
	if diff < 0 {
		diff = -diff
	}
	score := 10 - diff
	if score < 1 {
		score = 1
	}
	return score
}

// Describe fetches the stored text for number under calcType, falling
// back to an empty string when no description is seeded.
func (s *Service) Describe(number int, calcType string) (string, error) {
	description, err := s.texts.Description(number, calcType)
	if errors.Is(err, model.ErrDescriptionNotFound) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "describe number")
	}
	return description, nil
}
