package repository

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/mystic-bots/gadalka-bot/internal/model"
)

const (
	RefBonusKey        = "ref_bonus"
	RefWelcomeBonusKey = "ref_welcome_bonus"
	RefEnabledKey      = "ref_system_enabled"
	ResponseDelayKey   = "response_delay_seconds"

	defaultRefBonus        = "5"
	defaultRefWelcomeBonus = "0"
	defaultRefEnabled      = "true"
	defaultResponseDelay   = "0"
)

// Settings is the flat key-value runtime configuration. A key missing
// on first read is created with its default.
type Settings struct {
	db *sql.DB
}

func NewSettings(db *sql.DB) *Settings {
	return &Settings{db: db}
}

func (r *Settings) Get(key, defaultValue string) (string, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM settings WHERE key = $1;`, key).Scan(&value)
	if err == nil {
		return value, nil
	}
	if err != sql.ErrNoRows {
		return "", errors.Wrap(err, "read setting")
	}

	_, err = r.db.Exec(`
INSERT INTO settings (key, value)
	VALUES ($1, $2)
ON CONFLICT (key) DO NOTHING;`, key, defaultValue)
	if err != nil {
		return "", errors.Wrap(err, "create default setting")
	}

	return defaultValue, nil
}

func (r *Settings) Set(key, value string) error {
	_, err := r.db.Exec(`
INSERT INTO settings (key, value)
	VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;`, key, value)

	return errors.Wrap(err, "set setting")
}

func (r *Settings) Referral() (model.ReferralSettings, error) {
	settings := model.ReferralSettings{Bonus: 5, WelcomeBonus: 0, Enabled: true}

	bonus, err := r.Get(RefBonusKey, defaultRefBonus)
	if err != nil {
		return settings, err
	}
	if value, convErr := strconv.Atoi(bonus); convErr == nil {
		settings.Bonus = value
	}

	welcome, err := r.Get(RefWelcomeBonusKey, defaultRefWelcomeBonus)
	if err != nil {
		return settings, err
	}
	if value, convErr := strconv.Atoi(welcome); convErr == nil {
		settings.WelcomeBonus = value
	}

	enabled, err := r.Get(RefEnabledKey, defaultRefEnabled)
	if err != nil {
		return settings, err
	}
	settings.Enabled = enabled != "false"

	return settings, nil
}

func (r *Settings) SetReferralBonus(amount int) error {
	return r.Set(RefBonusKey, strconv.Itoa(amount))
}

func (r *Settings) SetReferralWelcomeBonus(amount int) error {
	return r.Set(RefWelcomeBonusKey, strconv.Itoa(amount))
}

func (r *Settings) SetReferralEnabled(enabled bool) error {
	return r.Set(RefEnabledKey, strconv.FormatBool(enabled))
}

func (r *Settings) ResponseDelay() (time.Duration, error) {
	raw, err := r.Get(ResponseDelayKey, defaultResponseDelay)
	if err != nil {
		return 0, err
	}

	seconds, convErr := strconv.Atoi(raw)
	if convErr != nil || seconds < 0 {
		seconds = 0
	}

	return time.Duration(seconds) * time.Second, nil
}

func (r *Settings) SetResponseDelay(seconds int) error {
	return r.Set(ResponseDelayKey, strconv.Itoa(seconds))
}
