package auth

import (
	"github.com/mystic-bots/gadalka-bot/internal/model"
)

// Users is the slice of user storage the auth flow needs.
type Users interface {
	ByID(id int64) (*model.User, error)
	GetOrCreate(id int64, username, firstName, language string) (*model.User, bool, error)
}

// Referrals links invited users to inviters and credits bonuses.
type Referrals interface {
	Link(inviterID, invitedID int64, inviterBonus, welcomeBonus int) error
	Exists(invitedID int64) (bool, error)
	CountByInviter(inviterID int64) (int, error)
}

// SettingsStore reads the live referral configuration.
type SettingsStore interface {
	Referral() (model.ReferralSettings, error)
}

// Messenger delivers the inviter notification.
type Messenger interface {
	SendSimpleMsg(chatID int64, text string) error
}

type Auth struct {
	bot  *model.Bot
	msgs Messenger

	users     Users
	referrals Referrals
	settings  SettingsStore
}

func NewAuthService(bot *model.Bot, msgsSrv Messenger, users Users, referrals Referrals, settings SettingsStore) *Auth {
	return &Auth{
		bot:       bot,
		msgs:      msgsSrv,
		users:     users,
		referrals: referrals,
		settings:  settings,
	}
}
