package administrator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/mystic-bots/gadalka-bot/internal/locales"
	"github.com/mystic-bots/gadalka-bot/internal/model"
	"github.com/mystic-bots/gadalka-bot/internal/msgs"
)

func (a *Admin) sendReferralPanel(s *model.Situation) error {
	settings, err := a.settings.Referral()
	if err != nil {
		return errors.Wrap(err, "load referral settings")
	}

	state := "✅"
	if !settings.Enabled {
		state = "❌"
	}
	text := fmt.Sprintf("%s\n\nБонус пригласившему: %d\nПриветственный бонус: %d\nСистема: %s",
		a.text(s, "admin_ref_button"),
		settings.Bonus,
		settings.WelcomeBonus,
		state)

	markUp := msgs.NewIlMarkUp(
		msgs.NewIlRow(msgs.NewIlDataButton("admin_ref_bonus_button", "/admin_ref_bonus")),
		msgs.NewIlRow(msgs.NewIlDataButton("admin_ref_welcome_button", "/admin_ref_welcome")),
		msgs.NewIlRow(msgs.NewIlDataButton("admin_ref_toggle_button", "/admin_ref_toggle")),
	).Build(locales.Texts(s.User.Language))

	return a.msgs.NewParseMarkUpMessage(s.User.ID, &markUp, text)
}

func (a *Admin) askReferralBonus(s *model.Situation) error {
	a.state.SetStep(s.User.ID, model.StepAdminRefBonus)
	return a.msgs.SendSimpleMsg(s.User.ID, a.text(s, "ref_bonus_ask"))
}

func (a *Admin) referralBonusStep(s *model.Situation) error {
	if err := a.guard(s); err != nil {
		return nil
	}

	amount, ok := parseAmount(s.Message.Text)
	if !ok {
		return a.msgs.SendSimpleMsg(s.User.ID, a.text(s, "bad_number"))
	}

	if err := a.settings.SetReferralBonus(amount); err != nil {
		return errors.Wrap(err, "set referral bonus")
	}

	a.state.Clear(s.User.ID)
	return a.msgs.SendSimpleMsg(s.User.ID, a.text(s, "ref_bonus_set", amount))
}

func (a *Admin) askWelcomeBonus(s *model.Situation) error {
	a.state.SetStep(s.User.ID, model.StepAdminRefWelcome)
	return a.msgs.SendSimpleMsg(s.User.ID, a.text(s, "ref_welcome_ask"))
}

func (a *Admin) welcomeBonusStep(s *model.Situation) error {
	if err := a.guard(s); err != nil {
		return nil
	}

	amount, ok := parseAmount(s.Message.Text)
	if !ok {
		return a.msgs.SendSimpleMsg(s.User.ID, a.text(s, "bad_number"))
	}

	if err := a.settings.SetReferralWelcomeBonus(amount); err != nil {
		return errors.Wrap(err, "set welcome bonus")
	}

	a.state.Clear(s.User.ID)
	return a.msgs.SendSimpleMsg(s.User.ID, a.text(s, "ref_welcome_set", amount))
}

func (a *Admin) toggleReferralSystem(s *model.Situation) error {
	settings, err := a.settings.Referral()
	if err != nil {
		return errors.Wrap(err, "load referral settings")
	}

	enabled := !settings.Enabled
	if err := a.settings.SetReferralEnabled(enabled); err != nil {
		return errors.Wrap(err, "toggle referral system")
	}

	key := "ref_enabled"
	if !enabled {
		key = "ref_disabled"
	}
	return a.msgs.SendSimpleMsg(s.User.ID, a.text(s, key))
}

func parseAmount(raw string) (int, bool) {
	amount, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || amount < 0 {
		return 0, false
	}
	return amount, true
}
