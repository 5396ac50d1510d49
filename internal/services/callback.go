package services

import (
	"fmt"
	"strings"

	"github.com/mystic-bots/gadalka-bot/internal/log"
	"github.com/mystic-bots/gadalka-bot/internal/model"
	"github.com/mystic-bots/gadalka-bot/internal/utils"
)

type CallBackHandlers struct {
	Handlers map[string]model.Handler
}

func (h *CallBackHandlers) GetHandler(command string) model.Handler {
	return h.Handlers[command]
}

func (h *CallBackHandlers) Init(userSrv *Users) {
	//Main command
	h.OnCommand("/menu", userSrv.MenuCommand)
	h.OnCommand("/another", userSrv.AnotherCallback)

	//Content command
	h.OnCommand("/spread", userSrv.SpreadCallback)
	h.OnCommand("/num", userSrv.NumerologyChoiceCallback)

	//Profile command
	h.OnCommand("/profile_name", userSrv.AskNameCallback)
	h.OnCommand("/profile_birthdate", userSrv.AskBirthdateCallback)
	h.OnCommand("/profile_gender", userSrv.AskGenderCallback)
	h.OnCommand("/profile_language", userSrv.AskLanguageCallback)
	h.OnCommand("/profile_delete", userSrv.AskDeleteCallback)
	h.OnCommand("/language", userSrv.LanguageCallback)
}

func (h *CallBackHandlers) OnCommand(command string, handler model.Handler) {
	h.Handlers[command] = handler
}

func (u *Users) checkCallbackQuery(s *model.Situation, logger log.Logger, sortCentre *utils.Spreader) {
	if strings.HasPrefix(s.Command, "/admin") {
		u.serve(u.admin.CheckAdminCallback, s, logger, sortCentre)
		return
	}

	handler := u.CallbackHandler.GetHandler(s.Command)
	if handler != nil {
		u.serve(func(s *model.Situation) error {
			if err := u.Msgs.SendAnswerCallback(s.CallbackQuery, ""); err != nil {
				u.logger.Warn("failed to answer callback: %s", err.Error())
			}
			return handler(s)
		}, s, logger, sortCentre)
		return
	}

	text := fmt.Sprintf("%s // get callback data='%s', but they didn't react in any way",
		u.bot.BotLink,
		s.CallbackQuery.Data,
	)
	u.Msgs.SendNotificationToDeveloper(text, false)

	logger.Warn(text)
}
