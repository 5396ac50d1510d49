package services

import (
	"strings"

	"github.com/mystic-bots/gadalka-bot/internal/locales"
	"github.com/mystic-bots/gadalka-bot/internal/metrics"
	"github.com/mystic-bots/gadalka-bot/internal/model"
	"github.com/mystic-bots/gadalka-bot/internal/msgs"
	"github.com/mystic-bots/gadalka-bot/internal/services/tarot"
)

// limitGuard checks the daily quota before any content generation.
// When the user is out of both free quota and bonus credits it sends
// the refusal itself and reports false.
func (u *Users) limitGuard(s *model.Situation) (bool, error) {
	ok, _, err := u.limits.Allow(s.User)
	if err != nil {
		return false, err
	}
	if ok {
		return true, nil
	}

	return false, u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "limit_reached", u.limits.DailyLimit()))
}

// deliver records the usage, applies the configured delay and sends the
// result with the actions keyboard, followed by the quota note.
func (u *Users) deliver(s *model.Situation, category, variant, input, result, lastCommand string) error {
	bonusFunded, err := u.limits.Record(&model.UsageRecord{
		UserID:    s.User.ID,
		Category:  category,
		Variant:   variant,
		InputData: input,
		Result:    result,
	})
	if err != nil {
		return err
	}
	metrics.ContentServed.WithLabelValues(category).Inc()

	u.state.Clear(s.User.ID)
	if err := u.state.SetPayload(s.User.ID, map[string]string{"last": lastCommand}); err != nil {
		u.logger.Warn("failed to store last action for %d: %s", s.User.ID, err.Error())
	}

	u.applyResponseDelay()

	markUp := u.actionsMarkUp(s)
	if err := u.Msgs.NewParseMarkUpMessage(s.User.ID, &markUp, result); err != nil {
		return err
	}

	if bonusFunded {
		s.User.BonusBalance--
		return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "bonus_spent", s.User.BonusBalance))
	}

	remaining, err := u.limits.Remaining(s.User.ID)
	if err != nil {
		return err
	}
	return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "limit_info", remaining, s.User.BonusBalance))
}

// TarotCommand shows the spread menu.
func (u *Users) TarotCommand(s *model.Situation) error {
	u.state.SetStep(s.User.ID, model.StepTarotSpread)

	rows := make([]msgs.InlineRow, 0, len(tarot.Spreads()))
	for _, spread := range tarot.Spreads() {
		rows = append(rows, msgs.NewIlRow(msgs.NewIlDataButton(spread.Title, "/spread?"+spread.Key)))
	}
	markUp := msgs.NewIlMarkUp(rows...).Build(u.texts(s))

	return u.Msgs.NewParseMarkUpMessage(s.User.ID, &markUp, u.text(s, "tarot_menu_text"))
}

// SpreadCallback draws and delivers the spread picked from the menu.
func (u *Users) SpreadCallback(s *model.Situation) error {
	key := callbackParam(s)
	spread := tarot.SpreadByKey(key)
	if spread == nil {
		return u.MenuCommand(s)
	}

	ok, err := u.limitGuard(s)
	if err != nil || !ok {
		return err
	}

	reading, err := u.tarot.Reading(spread)
	if err != nil {
		return err
	}

	return u.deliver(s, model.CategoryTarot, spread.Key, "", reading, "/spread?"+spread.Key)
}

func (u *Users) RuneCommand(s *model.Situation) error {
	ok, err := u.limitGuard(s)
	if err != nil || !ok {
		return err
	}

	dayRune := u.extra.RuneOfTheDay()
	result := u.text(s, "rune_result", dayRune.Name, dayRune.Meaning)

	return u.deliver(s, model.CategoryRune, dayRune.Name, "", result, "/main_rune")
}

func (u *Users) MetaphorCommand(s *model.Situation) error {
	ok, err := u.limitGuard(s)
	if err != nil || !ok {
		return err
	}

	result := u.text(s, "metaphor_result", u.extra.MetaphorOfTheDay())

	return u.deliver(s, model.CategoryMetaphor, "metaphor_day", "", result, "/main_metaphor")
}

// RandomCommand serves one uniformly picked category. Categories that
// need a birth date fall back to asking for it when the profile has
// none.
func (u *Users) RandomCommand(s *model.Situation) error {
	switch u.rnd.Intn(5) {
	case 0:
		spreads := tarot.Spreads()
		spread := spreads[u.rnd.Intn(len(spreads))]

		ok, err := u.limitGuard(s)
		if err != nil || !ok {
			return err
		}
		reading, err := u.tarot.Reading(&spread)
		if err != nil {
			return err
		}
		return u.deliver(s, model.CategoryTarot, spread.Key, "", reading, "/spread?"+spread.Key)
	case 1:
		if s.User.BirthDate == nil {
			return u.askNumerologyBirthdate(s, model.CalcDestiny)
		}
		return u.deliverDestiny(s, *s.User.BirthDate)
	case 2:
		return u.AstroCommand(s)
	case 3:
		return u.RuneCommand(s)
	default:
		return u.MetaphorCommand(s)
	}
}

// callbackParam returns the part of the callback data after "?".
func callbackParam(s *model.Situation) string {
	if s.CallbackQuery == nil {
		return ""
	}
	parts := strings.SplitN(s.CallbackQuery.Data, "?", 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// AnotherCallback re-runs the user's last content action.
func (u *Users) AnotherCallback(s *model.Situation) error {
	last := s.Payload["last"]
	if last == "" {
		return u.MenuCommand(s)
	}

	s.Command = strings.Split(last, "?")[0]
	if s.CallbackQuery != nil {
		s.CallbackQuery.Data = last
	}

	if handler := u.CallbackHandler.GetHandler(s.Command); handler != nil {
		return handler(s)
	}
	if handler := u.MessageHandler.GetHandler(s.Command); handler != nil {
		return handler(s)
	}
	return u.MenuCommand(s)
}

// NumerologyCommand shows the calculation menu.
func (u *Users) NumerologyCommand(s *model.Situation) error {
	u.state.SetStep(s.User.ID, model.StepNumerologyMenu)

	markUp := msgs.NewIlMarkUp(
		msgs.NewIlRow(msgs.NewIlDataButton("num_destiny", "/num?"+model.CalcDestiny)),
		msgs.NewIlRow(msgs.NewIlDataButton("num_name", "/num?"+model.CalcName)),
		msgs.NewIlRow(msgs.NewIlDataButton("num_life_cycle", "/num?"+model.CalcLifeCycle)),
		msgs.NewIlRow(msgs.NewIlDataButton("num_personality", "/num?personality")),
		msgs.NewIlRow(msgs.NewIlDataButton("num_compat", "/num?compat")),
	).Build(u.texts(s))

	return u.Msgs.NewParseMarkUpMessage(s.User.ID, &markUp, u.text(s, "numerology_menu_text"))
}

// NumerologyChoiceCallback routes the picked calculation into its
// input step.
func (u *Users) NumerologyChoiceCallback(s *model.Situation) error {
	switch callbackParam(s) {
	case model.CalcDestiny:
		return u.askNumerologyBirthdate(s, model.CalcDestiny)
	case model.CalcName:
		u.state.SetStep(s.User.ID, model.StepNumerologyName)
		return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "ask_name_num"))
	case model.CalcLifeCycle:
		return u.askNumerologyBirthdate(s, model.CalcLifeCycle)
	case "personality":
		return u.askPersonalityName(s)
	case "compat":
		return u.askNumerologyBirthdate(s, "compat")
	}

	return u.MenuCommand(s)
}

func (u *Users) askNumerologyBirthdate(s *model.Situation, calc string) error {
	u.state.SetStep(s.User.ID, model.StepNumerologyBirthdate)
	if err := u.state.SetPayload(s.User.ID, map[string]string{"calc": calc}); err != nil {
		return err
	}

	return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "ask_birthdate_num"))
}

// askPersonalityName opens the personality card flow: the name comes
// first, the birth date follows in the next step.
func (u *Users) askPersonalityName(s *model.Situation) error {
	u.state.SetStep(s.User.ID, model.StepNumerologyName)
	if err := u.state.SetPayload(s.User.ID, map[string]string{"calc": "personality"}); err != nil {
		return err
	}

	return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "ask_name_num"))
}

func (u *Users) describeOrFallback(s *model.Situation, number int, calcType string) string {
	description, err := u.numerology.Describe(number, calcType)
	if err != nil {
		u.logger.Warn("failed to load description for %d/%s: %s", number, calcType, err.Error())
	}
	if description != "" {
		return description
	}

	// Each calculation type carries its own generic description.
	key := "fallback_" + calcType
	if text := locales.Text(s.User.Language, key); text != key {
		return text
	}
	return locales.Text(s.User.Language, "no_description")
}
