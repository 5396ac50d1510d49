package services

import (
	"net/url"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	"github.com/mystic-bots/gadalka-bot/internal/model"
	"github.com/mystic-bots/gadalka-bot/internal/msgs"
)

// StartCommand greets the user, applying a referral token from the
// /start payload on first contact.
func (u *Users) StartCommand(s *model.Situation) error {
	u.state.Clear(s.User.ID)

	applied, err := u.auth.ApplyReferral(s.User, s.FirstContact, startPayload(s.Message))
	if err != nil {
		return err
	}

	name := s.User.FirstName
	if s.User.Name != "" {
		name = s.User.Name
	}

	if err := u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "welcome_text", name)); err != nil {
		return err
	}

	if applied && s.User.BonusBalance > 0 {
		if err := u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "welcome_bonus_text", s.User.BonusBalance)); err != nil {
			return err
		}
	}

	if s.FirstContact {
		return u.beginOnboarding(s)
	}

	return u.MenuCommand(s)
}

// beginOnboarding walks a new user through language, name, birth date
// and gender before showing the menu.
func (u *Users) beginOnboarding(s *model.Situation) error {
	if err := u.state.SetPayload(s.User.ID, map[string]string{"onboarding": "1"}); err != nil {
		return err
	}
	s.Payload = map[string]string{"onboarding": "1"}

	return u.AskLanguageCallback(s)
}

func (u *Users) onboarding(s *model.Situation) bool {
	return s.Payload["onboarding"] == "1"
}

// advanceOnboarding moves the dialogue to the next profile step while
// keeping the onboarding marker in the payload.
func (u *Users) advanceOnboarding(s *model.Situation, step, prompt string) error {
	u.state.SetStep(s.User.ID, step)
	return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, prompt))
}

func (u *Users) finishOnboarding(s *model.Situation) error {
	return u.MenuCommand(s)
}

func startPayload(message *tgbotapi.Message) string {
	if message == nil {
		return ""
	}
	parts := strings.Fields(message.Text)
	if len(parts) < 2 || parts[0] != "/start" {
		return ""
	}
	return parts[1]
}

// MenuCommand shows the main reply keyboard and resets the dialogue.
func (u *Users) MenuCommand(s *model.Situation) error {
	u.state.Clear(s.User.ID)

	markUp := createMainMenu().Build(u.texts(s))

	msg := tgbotapi.NewMessage(s.User.ID, u.text(s, "main_menu_text"))
	msg.ReplyMarkup = markUp

	return u.Msgs.SendMsgToUser(msg, s.User.ID)
}

func createMainMenu() msgs.MarkUp {
	return msgs.NewMarkUp(
		msgs.NewRow(
			msgs.NewDataButton("main_tarot"),
			msgs.NewDataButton("main_numerology")),
		msgs.NewRow(
			msgs.NewDataButton("main_astro"),
			msgs.NewDataButton("main_rune")),
		msgs.NewRow(
			msgs.NewDataButton("main_metaphor"),
			msgs.NewDataButton("main_random")),
		msgs.NewRow(
			msgs.NewDataButton("main_profile"),
			msgs.NewDataButton("main_help")),
	)
}

func (u *Users) HelpCommand(s *model.Situation) error {
	return u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "help_text"))
}

// actionsMarkUp is the keyboard attached under every content result.
func (u *Users) actionsMarkUp(s *model.Situation) tgbotapi.InlineKeyboardMarkup {
	shareURL := "https://t.me/share/url?url=" + url.QueryEscape(u.auth.ReferralLink(s.User.ID))

	return msgs.NewIlMarkUp(
		msgs.NewIlRow(
			msgs.NewIlDataButton("another_button", "/another"),
			msgs.NewIlURLButton("share_button", shareURL)),
		msgs.NewIlRow(msgs.NewIlDataButton("back_button", "/menu")),
	).Build(u.texts(s))
}

// parseDate accepts the two supported input forms.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)

	for _, layout := range []string{"02.01.2006", "2006-01-02"} {
		if date, err := time.Parse(layout, raw); err == nil {
			return date, nil
		}
	}

	return time.Time{}, errors.Errorf("unsupported date %q", raw)
}

// parseGender folds the free-form input to male/female, or empty when
// unrecognized.
func parseGender(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "м", "m", "male":
		return "male"
	case "ж", "f", "female":
		return "female"
	}
	return ""
}
