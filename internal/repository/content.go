package repository

import (
	"database/sql"

	"github.com/pkg/errors"

	"github.com/mystic-bots/gadalka-bot/internal/model"
)

// Content serves the seeded reference tables: the tarot deck, the
// numerology meaning texts and the zodiac sign ranges. Read-only at
// runtime.
type Content struct {
	db *sql.DB
}

func NewContent(db *sql.DB) *Content {
	return &Content{db: db}
}

func (r *Content) Deck() ([]model.TarotCard, error) {
	rows, err := r.db.Query(`
SELECT id, name, arcana_type, suit, upright_meaning, reversed_meaning
	FROM tarot_cards
ORDER BY id;`)
	if err != nil {
		return nil, errors.Wrap(err, "query tarot deck")
	}
	defer rows.Close()

	var deck []model.TarotCard
	for rows.Next() {
		var card model.TarotCard
		err := rows.Scan(
			&card.ID,
			&card.Name,
			&card.ArcanaType,
			&card.Suit,
			&card.UprightMeaning,
			&card.ReversedMeaning)
		if err != nil {
			return nil, model.ErrScanSqlRow
		}
		deck = append(deck, card)
	}

	return deck, rows.Err()
}

func (r *Content) Description(number int, calcType string) (string, error) {
	var description string
	err := r.db.QueryRow(`
SELECT description
	FROM numerology_texts
WHERE number = $1 AND type = $2;`, number, calcType).Scan(&description)
	if err == sql.ErrNoRows {
		return "", model.ErrDescriptionNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "query numerology text")
	}

	return description, nil
}

func (r *Content) Signs() ([]model.ZodiacSign, error) {
	rows, err := r.db.Query(`
SELECT name, date_start, date_end, description
	FROM zodiac_signs;`)
	if err != nil {
		return nil, errors.Wrap(err, "query zodiac signs")
	}
	defer rows.Close()

	var signs []model.ZodiacSign
	for rows.Next() {
		var sign model.ZodiacSign
		if err := rows.Scan(&sign.Name, &sign.DateStart, &sign.DateEnd, &sign.Description); err != nil {
			return nil, model.ErrScanSqlRow
		}
		signs = append(signs, sign)
	}

	return signs, rows.Err()
}

// SeedIfEmpty loads the reference catalogs once; tables already holding
// rows are left untouched.
func (r *Content) SeedIfEmpty() error {
	if err := r.seedTarot(); err != nil {
		return err
	}
	if err := r.seedNumerology(); err != nil {
		return err
	}
	return r.seedZodiac()
}

func (r *Content) seedTarot() error {
	empty, err := r.tableEmpty("tarot_cards")
	if err != nil || !empty {
		return err
	}

	tx, err := r.db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin tarot seed tx")
	}
	defer tx.Rollback()

	for _, card := range tarotSeed() {
		_, err := tx.Exec(`
INSERT INTO tarot_cards (name, arcana_type, suit, upright_meaning, reversed_meaning)
	VALUES ($1, $2, $3, $4, $5);`,
			card.Name, card.ArcanaType, card.Suit, card.UprightMeaning, card.ReversedMeaning)
		if err != nil {
			return errors.Wrap(err, "insert tarot card")
		}
	}

	return errors.Wrap(tx.Commit(), "commit tarot seed")
}

func (r *Content) seedNumerology() error {
	empty, err := r.tableEmpty("numerology_texts")
	if err != nil || !empty {
		return err
	}

	tx, err := r.db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin numerology seed tx")
	}
	defer tx.Rollback()

	for _, text := range numerologySeed() {
		_, err := tx.Exec(`
INSERT INTO numerology_texts (number, type, description)
	VALUES ($1, $2, $3);`,
			text.Number, text.Type, text.Description)
		if err != nil {
			return errors.Wrap(err, "insert numerology text")
		}
	}

	return errors.Wrap(tx.Commit(), "commit numerology seed")
}

func (r *Content) seedZodiac() error {
	empty, err := r.tableEmpty("zodiac_signs")
	if err != nil || !empty {
		return err
	}

	tx, err := r.db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin zodiac seed tx")
	}
	defer tx.Rollback()

	for _, sign := range zodiacSeed() {
		_, err := tx.Exec(`
INSERT INTO zodiac_signs (name, date_start, date_end, description)
	VALUES ($1, $2, $3, $4);`,
			sign.Name, sign.DateStart, sign.DateEnd, sign.Description)
		if err != nil {
			return errors.Wrap(err, "insert zodiac sign")
		}
	}

	return errors.Wrap(tx.Commit(), "commit zodiac seed")
}

func (r *Content) tableEmpty(table string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM ` + table + `;`).Scan(&count)
	if err != nil {
		return false, errors.Wrapf(err, "count rows in %s", table)
	}
	return count == 0, nil
}
