package auth

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	"github.com/mystic-bots/gadalka-bot/internal/model"
)

// ResolveUser loads the sender's profile, creating it on first
// contact. The second return reports whether the profile was created
// by this call.
func (a *Auth) ResolveUser(from *tgbotapi.User) (*model.User, bool, error) {
	language := from.LanguageCode
	if !supportedLanguage(language) {
		language = a.bot.DefaultLanguage
	}

	user, created, err := a.users.GetOrCreate(from.ID, from.UserName, from.FirstName, language)
	if err != nil {
		return nil, false, errors.Wrap(err, "resolve user")
	}

	return user, created, nil
}

func supportedLanguage(code string) bool {
	return code == "ru" || code == "en"
}

// ReferralLink builds the user's personal invite link.
func (a *Auth) ReferralLink(userID int64) string {
	return fmt.Sprintf("%s?start=%s%d", a.bot.BotLink, referralPrefix, userID)
}

func (a *Auth) InvitedCount(userID int64) (int, error) {
	count, err := a.referrals.CountByInviter(userID)
	return count, errors.Wrap(err, "count invited users")
}
