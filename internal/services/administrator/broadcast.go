package administrator

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/mystic-bots/gadalka-bot/internal/metrics"
	"github.com/mystic-bots/gadalka-bot/internal/model"
)

// BroadcastCommand handles /broadcast, with the text inline or asked
// for in a follow-up step.
func (a *Admin) BroadcastCommand(s *model.Situation) error {
	if err := a.guard(s); err != nil {
		return nil
	}

	text := strings.TrimSpace(strings.TrimPrefix(s.Message.Text, "/broadcast"))
	if text == "" {
		return a.askBroadcastText(s)
	}

	sent, failed, err := a.Broadcast(text)
	if err != nil {
		return err
	}

	return a.msgs.SendSimpleMsg(s.User.ID, a.text(s, "broadcast_done", sent, failed))
}

func (a *Admin) askBroadcastText(s *model.Situation) error {
	a.state.SetStep(s.User.ID, model.StepAdminBroadcast)
	return a.msgs.SendSimpleMsg(s.User.ID, a.text(s, "broadcast_ask"))
}

func (a *Admin) broadcastStep(s *model.Situation) error {
	if err := a.guard(s); err != nil {
		return nil
	}

	text := strings.TrimSpace(s.Message.Text)
	if text == "" {
		return a.msgs.SendSimpleMsg(s.User.ID, a.text(s, "broadcast_ask"))
	}

	switch strings.ToLower(text) {
	case "отмена", "cancel":
		a.state.Clear(s.User.ID)
		return a.msgs.SendSimpleMsg(s.User.ID, a.text(s, "broadcast_cancelled"))
	}

	a.state.Clear(s.User.ID)

	sent, failed, err := a.Broadcast(text)
	if err != nil {
		return err
	}

	return a.msgs.SendSimpleMsg(s.User.ID, a.text(s, "broadcast_done", sent, failed))
}

// Broadcast delivers text to every known user. Per-recipient failures
// are counted, not fatal: blocked chats are the normal case.
func (a *Admin) Broadcast(text string) (int, int, error) {
	ids, err := a.users.AllIDs()
	if err != nil {
		return 0, 0, errors.Wrap(err, "load recipient list")
	}

	sent, failed := 0, 0
	for _, id := range ids {
		if err := a.msgs.SendSimpleMsg(id, text); err != nil {
			failed++
			metrics.BroadcastFailed.Inc()
			continue
		}
		sent++
		metrics.BroadcastSent.Inc()
	}

	a.logger.Info("broadcast finished: sent %d, failed %d", sent, failed)
	return sent, failed, nil
}

// SetDelayCommand handles /set_delay, with the seconds argument inline
// or asked for in a follow-up step.
func (a *Admin) SetDelayCommand(s *model.Situation) error {
	if err := a.guard(s); err != nil {
		return nil
	}

	arg := strings.TrimSpace(strings.TrimPrefix(s.Message.Text, "/set_delay"))
	if arg == "" {
		a.state.SetStep(s.User.ID, model.StepAdminDelay)
		return a.msgs.SendSimpleMsg(s.User.ID, a.text(s, "delay_usage"))
	}

	return a.applyDelay(s, arg)
}

func (a *Admin) delayStep(s *model.Situation) error {
	if err := a.guard(s); err != nil {
		return nil
	}

	return a.applyDelay(s, strings.TrimSpace(s.Message.Text))
}

func (a *Admin) applyDelay(s *model.Situation, raw string) error {
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 0 {
		return a.msgs.SendSimpleMsg(s.User.ID, a.text(s, "bad_number"))
	}

	if err := a.settings.SetResponseDelay(seconds); err != nil {
		return errors.Wrap(err, "set response delay")
	}

	a.state.Clear(s.User.ID)
	return a.msgs.SendSimpleMsg(s.User.ID, a.text(s, "delay_set", seconds))
}
