package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/roylee0704/gron"
	"github.com/roylee0704/gron/xtime"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mystic-bots/gadalka-bot/internal/locales"
	"github.com/mystic-bots/gadalka-bot/internal/log"
	"github.com/mystic-bots/gadalka-bot/internal/metrics"
	"github.com/mystic-bots/gadalka-bot/internal/model"
	"github.com/mystic-bots/gadalka-bot/internal/services/administrator"
	"github.com/mystic-bots/gadalka-bot/internal/utils"
)

const updatePrintHeader = "update // user: %d // %s"

type MessagesHandlers struct {
	Handlers map[string]model.Handler
}

func (h *MessagesHandlers) GetHandler(command string) model.Handler {
	return h.Handlers[command]
}

func (h *MessagesHandlers) Init(userSrv *Users, adminSrv *administrator.Admin) {
	//Start command
	h.OnCommand("/start", userSrv.StartCommand)
	h.OnCommand("/menu", userSrv.MenuCommand)
	h.OnCommand("/help", userSrv.HelpCommand)

	//Main command
	h.OnCommand("/main_tarot", userSrv.TarotCommand)
	h.OnCommand("/main_numerology", userSrv.NumerologyCommand)
	h.OnCommand("/main_astro", userSrv.AstroCommand)
	h.OnCommand("/main_rune", userSrv.RuneCommand)
	h.OnCommand("/main_metaphor", userSrv.MetaphorCommand)
	h.OnCommand("/main_random", userSrv.RandomCommand)
	h.OnCommand("/main_profile", userSrv.ProfileCommand)

	//Short aliases listed in /help
	h.OnCommand("/tarot", userSrv.TarotCommand)
	h.OnCommand("/numerology", userSrv.NumerologyCommand)
	h.OnCommand("/astro", userSrv.AstroCommand)
	h.OnCommand("/rune", userSrv.RuneCommand)
	h.OnCommand("/metaphor", userSrv.MetaphorCommand)
	h.OnCommand("/random", userSrv.RandomCommand)
	h.OnCommand("/profile", userSrv.ProfileCommand)

	//Admin command
	h.OnCommand("/admin", adminSrv.AdminCommand)
	h.OnCommand("/broadcast", adminSrv.BroadcastCommand)
	h.OnCommand("/set_delay", adminSrv.SetDelayCommand)

	//Dialogue steps
	h.OnCommand(model.StepProfileName, userSrv.profileNameStep)
	h.OnCommand(model.StepProfileBirthdate, userSrv.profileBirthdateStep)
	h.OnCommand(model.StepProfileGender, userSrv.profileGenderStep)
	h.OnCommand(model.StepProfileLanguage, userSrv.profileLanguageStep)
	h.OnCommand(model.StepProfileDelete, userSrv.profileDeleteStep)
	h.OnCommand(model.StepNumerologyBirthdate, userSrv.numerologyBirthdateStep)
	h.OnCommand(model.StepNumerologySecondBirthdate, userSrv.numerologySecondBirthdateStep)
	h.OnCommand(model.StepNumerologyName, userSrv.numerologyNameStep)
	h.OnCommand(model.StepAstroBirthdate, userSrv.astroBirthdateStep)
}

func (h *MessagesHandlers) OnCommand(command string, handler model.Handler) {
	h.Handlers[command] = handler
}

// menuCommands maps a menu button locale key to its command.
var menuCommands = map[string]string{
	"main_tarot":      "/main_tarot",
	"main_numerology": "/main_numerology",
	"main_astro":      "/main_astro",
	"main_rune":       "/main_rune",
	"main_metaphor":   "/main_metaphor",
	"main_random":     "/main_random",
	"main_profile":    "/main_profile",
	"main_help":       "/help",
	"back_button":     "/menu",
}

func (u *Users) ActionsWithUpdates(logger log.Logger, sortCentre *utils.Spreader, cron *gron.Cron) {
	cron.AddFunc(gron.Every(1*xtime.Day).At("20:59"), u.SendDailySummary)

	for update := range u.bot.Updates {
		localUpdate := update

		go u.checkUpdate(&localUpdate, logger, sortCentre)
	}
}

func (u *Users) checkUpdate(update *tgbotapi.Update, logger log.Logger, sortCentre *utils.Spreader) {
	defer u.panicCatcher(update)

	if update.Message == nil && update.CallbackQuery == nil {
		return
	}

	if update.Message != nil && update.Message.PinnedMessage != nil {
		return
	}

	if update.Message != nil {
		metrics.HandleUpdates.WithLabelValues("message").Inc()
		logger.Info(updatePrintHeader, update.Message.From.ID, update.Message.Text)

		situation, err := u.createSituationFromMsg(update.Message)
		if err != nil {
			u.smthWentWrong(update.Message.Chat.ID, u.bot.DefaultLanguage)
			logger.Warn("err with check user: %s", err.Error())
			return
		}

		u.checkMessage(situation, logger, sortCentre)
		return
	}

	metrics.HandleUpdates.WithLabelValues("callback").Inc()
	logger.Info(updatePrintHeader, update.CallbackQuery.From.ID, update.CallbackQuery.Data)

	situation, err := u.createSituationFromCallback(update.CallbackQuery)
	if err != nil {
		u.smthWentWrong(update.CallbackQuery.From.ID, u.bot.DefaultLanguage)
		logger.Warn("err with create situation from callback: %s", err.Error())
		return
	}

	u.checkCallbackQuery(situation, logger, sortCentre)
}

func (u *Users) createSituationFromMsg(message *tgbotapi.Message) (*model.Situation, error) {
	user, firstContact, err := u.auth.ResolveUser(message.From)
	if err != nil {
		return nil, err
	}

	return &model.Situation{
		Message:      message,
		User:         user,
		FirstContact: firstContact,
		Command:      commandFromMessage(message, user.Language),
		Step:         u.state.Step(user.ID),
		Payload:      u.state.Payload(user.ID),
	}, nil
}

func (u *Users) createSituationFromCallback(callbackQuery *tgbotapi.CallbackQuery) (*model.Situation, error) {
	user, _, err := u.auth.ResolveUser(callbackQuery.From)
	if err != nil {
		return nil, err
	}

	return &model.Situation{
		CallbackQuery: callbackQuery,
		User:          user,
		Command:       strings.Split(callbackQuery.Data, "?")[0],
		Step:          u.state.Step(user.ID),
		Payload:       u.state.Payload(user.ID),
	}, nil
}

// commandFromMessage turns the raw text into a dispatchable command:
// slash commands pass through as their first token, menu button labels
// resolve through the locale table, anything else stays empty for the
// step fallback.
func commandFromMessage(message *tgbotapi.Message, lang string) string {
	text := strings.TrimSpace(message.Text)
	if strings.HasPrefix(text, "/") {
		return strings.Fields(text)[0]
	}

	for key, command := range menuCommands {
		if text == locales.Text(lang, key) {
			return command
		}
	}

	return ""
}

func (u *Users) checkMessage(s *model.Situation, logger log.Logger, sortCentre *utils.Spreader) {
	// Explicit commands win over any pending dialogue step.
	if s.Command != "" {
		if handler := u.MessageHandler.GetHandler(s.Command); handler != nil {
			u.serve(handler, s, logger, sortCentre)
			return
		}
	}

	if s.Step != model.StepMain {
		handled := u.serveAdminStep(s, logger, sortCentre)
		if handled {
			return
		}

		if handler := u.MessageHandler.GetHandler(s.Step); handler != nil {
			u.serve(handler, s, logger, sortCentre)
			return
		}

		// Stale step with no handler: reset and show the menu.
		u.state.Clear(s.User.ID)
		_ = u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "state_reset"))
		_ = u.MenuCommand(s)
		return
	}

	_ = u.Msgs.SendSimpleMsg(s.User.ID, u.text(s, "unknown_command"))
	_ = u.HelpCommand(s)
}

func (u *Users) serveAdminStep(s *model.Situation, logger log.Logger, sortCentre *utils.Spreader) bool {
	if !strings.HasPrefix(s.Step, "admin_") {
		return false
	}

	u.serve(func(s *model.Situation) error {
		_, err := u.admin.CheckAdminStep(s)
		return err
	}, s, logger, sortCentre)

	return true
}

func (u *Users) serve(handler model.Handler, s *model.Situation, logger log.Logger, sortCentre *utils.Spreader) {
	sortCentre.ServeHandler(handler, s, func(err error) {
		text := fmt.Sprintf("%s // error with serve user command: %s\ncommand = '%s', step = '%s'",
			u.bot.BotLink,
			err.Error(),
			s.Command,
			s.Step,
		)
		u.Msgs.SendNotificationToDeveloper(text, false)

		logger.Warn(text)
		u.smthWentWrong(s.User.ID, s.User.Language)
	})
}

func (u *Users) smthWentWrong(chatID int64, lang string) {
	_ = u.Msgs.SendSimpleMsg(chatID, locales.Text(lang, "smth_went_wrong"))
}

// SendDailySummary pushes the usage report to every admin once a day.
func (u *Users) SendDailySummary() {
	for _, adminID := range u.bot.AdminIDs() {
		s := &model.Situation{User: &model.User{ID: adminID, Language: u.bot.DefaultLanguage}}
		if err := u.admin.SendStatsReport(s); err != nil {
			u.logger.Warn("failed to send daily summary to %d: %s", adminID, err.Error())
		}
	}
}

// applyResponseDelay holds the reply back by the configured pause.
func (u *Users) applyResponseDelay() {
	delay, err := u.delays.ResponseDelay()
	if err != nil || delay <= 0 {
		return
	}
	time.Sleep(delay)
}
