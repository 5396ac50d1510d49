package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/mystic-bots/gadalka-bot/internal/model"
	"github.com/mystic-bots/gadalka-bot/internal/msgs"
	"github.com/mystic-bots/gadalka-bot/internal/services/astrology"
	"github.com/mystic-bots/gadalka-bot/internal/services/numerology"
)

const dateLayout = "02.01.2006"

// ProfileCommand renders the profile card with its edit keyboard.
func (u *Users) ProfileCommand(s *model.Situation) error {
	invited, err := u.auth.InvitedCount(s.User.ID)
	if err != nil {
		return err
	}

	notSet := u.text(s, "profile_not_set")

	name := s.User.Name
	if name == "" {
		name = notSet
	}
	birthDate := notSet
	if s.User.BirthDate != nil {
		birthDate = s.User.BirthDate.Format(dateLayout)
	}
	gender := notSet
	switch s.User.Gender {
	case "male":
		gender = u.text(s, "gender_male")
	case "female":
		gender = u.text(s, "gender_female")
	}

	text := u.text(s, "profile_text",
		name, birthDate, gender, s.User.Language,
		s.User.BonusBalance, invited,
		u.auth.ReferralLink(s.User.ID))

	markUp := msgs.NewIlMarkUp(
		msgs.NewIlRow(msgs.NewIlDataButton("profile_change_name", "/profile_name")),
		msgs.NewIlRow(msgs.NewIlDataButton("profile_change_birthdate", "/profile_birthdate")),
		msgs.NewIlRow(msgs.NewIlDataButton("profile_change_gender", "/profile_gender")),
		msgs.NewIlRow(msgs.NewIlDataButton("profile_change_language", "/profile_language")),
		msgs.NewIlRow(msgs.NewIlDataButton("profile_delete", "/profile_delete")),
	).Build(u.texts(s))

	return u.Msgs.NewParseMarkUpMessage(s.User.ID, &markUp, text)
}

func (u *Users) AskNameCallback(s *model.Situation) error {
	u.state.SetStep(s.User.ID, model.StepProfileName)
	return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "ask_name"))
}

func (u *Users) profileNameStep(s *model.Situation) error {
	name := strings.TrimSpace(s.Message.Text)
	if name == "" {
		return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "ask_name"))
	}

	user, err := u.profiles.UpdateName(s.User.ID, name)
	if err != nil {
		return err
	}
	s.User = user

	if u.onboarding(s) {
		return u.advanceOnboarding(s, model.StepProfileBirthdate, "ask_birthdate")
	}

	u.state.Clear(s.User.ID)
	return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "name_saved", name))
}

func (u *Users) AskBirthdateCallback(s *model.Situation) error {
	u.state.SetStep(s.User.ID, model.StepProfileBirthdate)
	return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "ask_birthdate"))
}

func (u *Users) profileBirthdateStep(s *model.Situation) error {
	birthDate, err := parseDate(s.Message.Text)
	if err != nil {
		return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "bad_date"))
	}

	user, err := u.profiles.UpdateBirthDate(s.User.ID, birthDate)
	if err != nil {
		return err
	}
	s.User = user

	if u.onboarding(s) {
		return u.advanceOnboarding(s, model.StepProfileGender, "ask_gender")
	}

	u.state.Clear(s.User.ID)
	return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "birthdate_saved", birthDate.Format(dateLayout)))
}

func (u *Users) AskGenderCallback(s *model.Situation) error {
	u.state.SetStep(s.User.ID, model.StepProfileGender)
	return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "ask_gender"))
}

func (u *Users) profileGenderStep(s *model.Situation) error {
	gender := parseGender(s.Message.Text)

	user, err := u.profiles.UpdateGender(s.User.ID, gender)
	if err != nil {
		return err
	}
	s.User = user

	u.state.Clear(s.User.ID)
	if err := u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "gender_saved")); err != nil {
		return err
	}
	if u.onboarding(s) {
		return u.finishOnboarding(s)
	}
	return nil
}

func (u *Users) AskLanguageCallback(s *model.Situation) error {
	u.state.SetStep(s.User.ID, model.StepProfileLanguage)

	markUp := msgs.NewIlMarkUp(
		msgs.NewIlRow(
			msgs.NewIlDataButton("Русский", "/language?ru"),
			msgs.NewIlDataButton("English", "/language?en")),
	).Build(u.texts(s))

	return u.Msgs.NewParseMarkUpMessage(s.User.ID, &markUp, u.text(s, "ask_language"))
}

// LanguageCallback applies the picked language.
func (u *Users) LanguageCallback(s *model.Situation) error {
	lang := callbackParam(s)
	if lang != "ru" && lang != "en" {
		return u.MenuCommand(s)
	}

	user, err := u.profiles.UpdateLanguage(s.User.ID, lang)
	if err != nil {
		return err
	}
	s.User = user

	if u.onboarding(s) {
		return u.advanceOnboarding(s, model.StepProfileName, "ask_name")
	}

	u.state.Clear(s.User.ID)
	if err := u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "language_saved")); err != nil {
		return err
	}
	return u.MenuCommand(s)
}

// profileLanguageStep lets users type the language code instead of
// tapping the button.
func (u *Users) profileLanguageStep(s *model.Situation) error {
	lang := strings.ToLower(strings.TrimSpace(s.Message.Text))
	if lang != "ru" && lang != "en" {
		return u.AskLanguageCallback(s)
	}

	user, err := u.profiles.UpdateLanguage(s.User.ID, lang)
	if err != nil {
		return err
	}
	s.User = user

	if u.onboarding(s) {
		return u.advanceOnboarding(s, model.StepProfileName, "ask_name")
	}

	u.state.Clear(s.User.ID)
	return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "language_saved"))
}

func (u *Users) AskDeleteCallback(s *model.Situation) error {
	u.state.SetStep(s.User.ID, model.StepProfileDelete)
	return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "delete_confirm"))
}

// profileDeleteStep removes the profile only on an explicit yes.
func (u *Users) profileDeleteStep(s *model.Situation) error {
	answer := strings.ToLower(strings.TrimSpace(s.Message.Text))
	switch answer {
	case "нет", "no":
		u.state.Clear(s.User.ID)
		return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "delete_cancelled"))
	case "да", "yes":
	default:
		return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "delete_confirm"))
	}

	if err := u.profiles.Delete(s.User.ID); err != nil {
		return err
	}

	u.state.Clear(s.User.ID)
	return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "delete_done"))
}

func (u *Users) numerologyBirthdateStep(s *model.Situation) error {
	birthDate, err := parseDate(s.Message.Text)
	if err != nil {
		return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "bad_date"))
	}

	switch s.Payload["calc"] {
	case model.CalcLifeCycle:
		return u.deliverLifeCycle(s, birthDate)
	case "personality":
		name := s.Payload["name"]
		if name == "" {
			// Payload went missing mid-flow, restart from the name.
			return u.askPersonalityName(s)
		}
		return u.deliverPersonality(s, name, birthDate)
	case "compat":
		u.state.SetStep(s.User.ID, model.StepNumerologySecondBirthdate)
		if err := u.state.SetPayload(s.User.ID, map[string]string{
			"calc":  "compat",
			"first": birthDate.Format(dateLayout),
		}); err != nil {
			return err
		}
		return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "ask_second_birthdate"))
	default:
		return u.deliverDestiny(s, birthDate)
	}
}

func (u *Users) deliverDestiny(s *model.Situation, birthDate time.Time) error {
	ok, err := u.limitGuard(s)
	if err != nil || !ok {
		return err
	}

	number := numerology.Destiny(birthDate)
	result := u.text(s, "destiny_result", number, u.describeOrFallback(s, number, model.CalcDestiny))

	return u.deliver(s, model.CategoryNumerology, model.CalcDestiny,
		birthDate.Format(dateLayout), result, "/num?"+model.CalcDestiny)
}

func (u *Users) deliverLifeCycle(s *model.Situation, birthDate time.Time) error {
	ok, err := u.limitGuard(s)
	if err != nil || !ok {
		return err
	}

	number := numerology.LifeCycle(birthDate)
	result := u.text(s, "life_cycle_result", number, u.describeOrFallback(s, number, model.CalcLifeCycle))

	return u.deliver(s, model.CategoryNumerology, model.CalcLifeCycle,
		birthDate.Format(dateLayout), result, "/num?"+model.CalcLifeCycle)
}

func (u *Users) deliverPersonality(s *model.Situation, name string, birthDate time.Time) error {
	ok, err := u.limitGuard(s)
	if err != nil || !ok {
		return err
	}

	card := numerology.Personality(name, birthDate)
	result := u.text(s, "personality_result",
		card.Destiny, u.describeOrFallback(s, card.Destiny, model.CalcDestiny),
		card.Name, u.describeOrFallback(s, card.Name, model.CalcName),
		card.LifeCycle, u.describeOrFallback(s, card.LifeCycle, model.CalcLifeCycle))

	input := fmt.Sprintf("%s, %s", name, birthDate.Format(dateLayout))
	return u.deliver(s, model.CategoryNumerology, "personality", input, result, "/num?personality")
}

func (u *Users) numerologySecondBirthdateStep(s *model.Situation) error {
	second, err := parseDate(s.Message.Text)
	if err != nil {
		return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "bad_date"))
	}

	first, err := parseDate(s.Payload["first"])
	if err != nil {
		// Payload went missing mid-flow, restart the calculation.
		return u.askNumerologyBirthdate(s, "compat")
	}

	ok, err := u.limitGuard(s)
	if err != nil || !ok {
		return err
	}

	score := numerology.Compatibility(first, second)
	detail := u.text(s, "compat_detail", numerology.Destiny(first), numerology.Destiny(second))
	result := u.text(s, "compat_result", score, detail)

	input := fmt.Sprintf("%s + %s", first.Format(dateLayout), second.Format(dateLayout))
	return u.deliver(s, model.CategoryNumerology, "compat", input, result, "/num?compat")
}

func (u *Users) numerologyNameStep(s *model.Situation) error {
	name := strings.TrimSpace(s.Message.Text)
	if name == "" {
		return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "ask_name_num"))
	}

	if s.Payload["calc"] == "personality" {
		u.state.SetStep(s.User.ID, model.StepNumerologyBirthdate)
		if err := u.state.SetPayload(s.User.ID, map[string]string{
			"calc": "personality",
			"name": name,
		}); err != nil {
			return err
		}
		return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "ask_birthdate_num"))
	}

	ok, err := u.limitGuard(s)
	if err != nil || !ok {
		return err
	}

	number := numerology.NameNumber(name)
	result := u.text(s, "name_number_result", number, u.describeOrFallback(s, number, model.CalcName))

	return u.deliver(s, model.CategoryNumerology, model.CalcName, name, result, "/num?"+model.CalcName)
}

// AstroCommand answers from the profile birth date when it is known,
// otherwise asks for a date first.
func (u *Users) AstroCommand(s *model.Situation) error {
	if s.User.BirthDate != nil {
		return u.deliverAstro(s, *s.User.BirthDate)
	}

	u.state.SetStep(s.User.ID, model.StepAstroBirthdate)
	return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "ask_birthdate_astro"))
}

func (u *Users) astroBirthdateStep(s *model.Situation) error {
	birthDate, err := parseDate(s.Message.Text)
	if err != nil {
		return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "bad_date"))
	}

	return u.deliverAstro(s, birthDate)
}

func (u *Users) deliverAstro(s *model.Situation, birthDate time.Time) error {
	ok, err := u.limitGuard(s)
	if err != nil || !ok {
		return err
	}

	sign, err := u.astrology.SignForDate(birthDate)
	if err != nil {
		return err
	}
	if sign == nil {
		u.state.Clear(s.User.ID)
		return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "astro_not_found"))
	}

	result := u.text(s, "astro_result", sign.Name, sign.DateStart, sign.DateEnd, astrology.ShortPortrait(sign))

	return u.deliver(s, model.CategoryAstrology, sign.Name,
		birthDate.Format(dateLayout), result, "/main_astro")
}
