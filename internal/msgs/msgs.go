package msgs

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	"github.com/mystic-bots/gadalka-bot/internal/log"
	"github.com/mystic-bots/gadalka-bot/internal/model"
)

// Service wraps the bot API with error-logged send helpers.
type Service struct {
	bot    *model.Bot
	logger log.Logger

	developerIDs []int64
}

func NewService(bot *model.Bot, developerIDs []int64) *Service {
	return &Service{
		bot:          bot,
		logger:       log.NewDefaultLogger().Prefix("msgs"),
		developerIDs: developerIDs,
	}
}

func (m *Service) SendMsgToUser(msg tgbotapi.Chattable, userID int64) error {
	if _, err := m.bot.API.Send(msg); err != nil {
		m.logger.Warn("failed to send msg to user %d: %s", userID, err.Error())
		return errors.Wrap(err, "send msg")
	}
	return nil
}

func (m *Service) SendSimpleMsg(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)

	return m.SendMsgToUser(msg, chatID)
}

func (m *Service) NewParseMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	return m.SendMsgToUser(msg, chatID)
}

func (m *Service) NewParseMarkUpMessage(chatID int64, markUp interface{}, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = markUp
	msg.DisableWebPagePreview = true

	return m.SendMsgToUser(msg, chatID)
}

func (m *Service) SendAnswerCallback(callbackQuery *tgbotapi.CallbackQuery, text string) error {
	answerCallback := tgbotapi.CallbackConfig{
		CallbackQueryID: callbackQuery.ID,
		Text:            text,
	}

	if _, err := m.bot.API.Request(answerCallback); err != nil {
		return errors.Wrap(err, "answer callback")
	}
	return nil
}

// SendNotificationToDeveloper fans the text out to every configured
// developer chat; delivery failures are logged, not returned.
func (m *Service) SendNotificationToDeveloper(text string, needPin bool) {
	for _, developerID := range m.developerIDs {
		msg := tgbotapi.NewMessage(developerID, text)

		sent, err := m.bot.API.Send(msg)
		if err != nil {
			m.logger.Warn("failed to notify developer %d: %s", developerID, err.Error())
			continue
		}

		if needPin {
			pin := tgbotapi.PinChatMessageConfig{
				ChatID:    developerID,
				MessageID: sent.MessageID,
			}
			if _, err := m.bot.API.Request(pin); err != nil {
				m.logger.Warn("failed to pin notification in chat %d: %s", developerID, err.Error())
			}
		}
	}
}

func (m *Service) SendChatAction(chatID int64, action string) {
	chatAction := tgbotapi.NewChatAction(chatID, action)
	if _, err := m.bot.API.Request(chatAction); err != nil {
		m.logger.Warn("failed to send chat action to %d: %s", chatID, err.Error())
	}
}
