package astrology

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/mystic-bots/gadalka-bot/internal/model"
)

// SignStore loads the zodiac table.
type SignStore interface {
	Signs() ([]model.ZodiacSign, error)
}

type Service struct {
	store SignStore
}

func NewService(store SignStore) *Service {
	return &Service{store: store}
}

// SignForDate finds the sign whose range contains the date's month and
// day, both bounds inclusive. A range whose start is later in the year
// than its end wraps over the new year.
func (s *Service) SignForDate(date time.Time) (*model.ZodiacSign, error) {
	signs, err := s.store.Signs()
	if err != nil {
		return nil, errors.Wrap(err, "load zodiac signs")
	}

	key := fmt.Sprintf("%02d-%02d", int(date.Month()), date.Day())
	for i := range signs {
		sign := signs[i]
		if sign.DateStart <= sign.DateEnd {
			if key >= sign.DateStart && key <= sign.DateEnd {
				return &sign, nil
			}
			continue
		}
		if key >= sign.DateStart || key <= sign.DateEnd {
			return &sign, nil
		}
	}

	return nil, nil
}

var elements = map[string]string{
	"Овен": "Огонь", "Лев": "Огонь", "Стрелец": "Огонь",
	"Телец": "Земля", "Дева": "Земля", "Козерог": "Земля",
	"Близнецы": "Воздух", "Весы": "Воздух", "Водолей": "Воздух",
	"Рак": "Вода", "Скорпион": "Вода", "Рыбы": "Вода",
}

var modalities = map[string]string{
	"Овен": "Кардинальный", "Рак": "Кардинальный", "Весы": "Кардинальный", "Козерог": "Кардинальный",
	"Телец": "Фиксированный", "Лев": "Фиксированный", "Скорпион": "Фиксированный", "Водолей": "Фиксированный",
	"Близнецы": "Мутабельный", "Дева": "Мутабельный", "Стрелец": "Мутабельный", "Рыбы": "Мутабельный",
}

// ShortPortrait extends the stored description with the element and
// modality of the sign when they are known.
func ShortPortrait(sign *model.ZodiacSign) string {
	portrait := sign.Description

	if element, ok := elements[sign.Name]; ok {
		portrait += "\nСтихия: " + element + "."
	}
	if modality, ok := modalities[sign.Name]; ok {
		portrait += "\nКачество: " + modality + "."
	}

	return portrait
}
