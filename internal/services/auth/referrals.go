package auth

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/mystic-bots/gadalka-bot/internal/locales"
	"github.com/mystic-bots/gadalka-bot/internal/model"
)

const referralPrefix = "ref_"

// ParseReferralToken extracts the inviter ID from a /start payload.
// Anything that is not "ref_<positive integer>" yields ok = false.
func ParseReferralToken(payload string) (int64, bool) {
	if !strings.HasPrefix(payload, referralPrefix) {
		return 0, false
	}

	inviterID, err := strconv.ParseInt(strings.TrimPrefix(payload, referralPrefix), 10, 64)
	if err != nil || inviterID <= 0 {
		return 0, false
	}

	return inviterID, true
}

// ApplyReferral links the invited user to the inviter and credits both
// sides per the live settings. It is a no-op unless all preconditions
// hold: the invited profile was just created, the referral system is
// enabled, the inviter exists, is not the invited user, and the
// invited user has no link yet. The first return reports whether the
// link was made.
func (a *Auth) ApplyReferral(invited *model.User, firstContact bool, token string) (bool, error) {
	if !firstContact {
		return false, nil
	}

	inviterID, ok := ParseReferralToken(token)
	if !ok || inviterID == invited.ID {
		return false, nil
	}

	settings, err := a.settings.Referral()
	if err != nil {
		return false, errors.Wrap(err, "load referral settings")
	}
	if !settings.Enabled {
		return false, nil
	}

	inviter, err := a.users.ByID(inviterID)
	if errors.Is(err, model.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "load inviter")
	}

	err = a.referrals.Link(inviter.ID, invited.ID, settings.Bonus, settings.WelcomeBonus)
	if errors.Is(err, model.ErrReferralExists) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "link referral")
	}

	invited.ReferredBy = &inviter.ID
	invited.BonusBalance += settings.WelcomeBonus

	a.notifyInviter(inviter, settings.Bonus)

	return true, nil
}

func (a *Auth) notifyInviter(inviter *model.User, bonus int) {
	text := locales.Text(inviter.Language, "referral_applied", bonus)
	_ = a.msgs.SendSimpleMsg(inviter.ID, text)
}
