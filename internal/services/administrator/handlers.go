package administrator

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/mystic-bots/gadalka-bot/internal/locales"
	"github.com/mystic-bots/gadalka-bot/internal/model"
	"github.com/mystic-bots/gadalka-bot/internal/msgs"
)

func (a *Admin) text(s *model.Situation, key string, args ...interface{}) string {
	return locales.Text(s.User.Language, key, args...)
}

// AdminCommand opens the admin panel.
func (a *Admin) AdminCommand(s *model.Situation) error {
	if err := a.guard(s); err != nil {
		return nil
	}

	markUp := msgs.NewIlMarkUp(
		msgs.NewIlRow(msgs.NewIlDataButton("admin_broadcast_button", "/admin_broadcast")),
		msgs.NewIlRow(msgs.NewIlDataButton("admin_stats_button", "/admin_stats")),
		msgs.NewIlRow(msgs.NewIlDataButton("admin_ref_button", "/admin_ref")),
	).Build(locales.Texts(s.User.Language))

	return a.msgs.NewParseMarkUpMessage(s.User.ID, &markUp, a.text(s, "admin_panel_text"))
}

// CheckAdminCallback routes the admin panel callbacks. Unknown data
// falls through with ErrCommandNotFound so the caller can report it.
func (a *Admin) CheckAdminCallback(s *model.Situation) error {
	if err := a.guard(s); err != nil {
		return nil
	}

	if s.CallbackQuery != nil {
		if err := a.msgs.SendAnswerCallback(s.CallbackQuery, ""); err != nil {
			a.logger.Warn("failed to answer admin callback: %s", err.Error())
		}
	}

	switch strings.Split(s.Command, "?")[0] {
	case "/admin_broadcast":
		return a.askBroadcastText(s)
	case "/admin_stats":
		return a.SendStatsReport(s)
	case "/admin_ref":
		return a.sendReferralPanel(s)
	case "/admin_ref_bonus":
		return a.askReferralBonus(s)
	case "/admin_ref_welcome":
		return a.askWelcomeBonus(s)
	case "/admin_ref_toggle":
		return a.toggleReferralSystem(s)
	}

	return errors.Errorf("unknown admin callback %q", s.Command)
}

// CheckAdminStep serves the multi-turn admin inputs. It reports false
// when the step is not an admin step.
func (a *Admin) CheckAdminStep(s *model.Situation) (bool, error) {
	switch s.Step {
	case model.StepAdminBroadcast:
		return true, a.broadcastStep(s)
	case model.StepAdminDelay:
		return true, a.delayStep(s)
	case model.StepAdminRefBonus:
		return true, a.referralBonusStep(s)
	case model.StepAdminRefWelcome:
		return true, a.welcomeBonusStep(s)
	}

	return false, nil
}
