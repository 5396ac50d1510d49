package services

import (
	"math/rand"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mystic-bots/gadalka-bot/internal/locales"
	"github.com/mystic-bots/gadalka-bot/internal/log"
	"github.com/mystic-bots/gadalka-bot/internal/model"
	"github.com/mystic-bots/gadalka-bot/internal/services/administrator"
	"github.com/mystic-bots/gadalka-bot/internal/services/astrology"
	"github.com/mystic-bots/gadalka-bot/internal/services/auth"
	"github.com/mystic-bots/gadalka-bot/internal/services/extra"
	"github.com/mystic-bots/gadalka-bot/internal/services/limits"
	"github.com/mystic-bots/gadalka-bot/internal/services/numerology"
	"github.com/mystic-bots/gadalka-bot/internal/services/tarot"
)

// ProfileStore is the user storage slice the profile flows mutate.
type ProfileStore interface {
	UpdateName(id int64, name string) (*model.User, error)
	UpdateBirthDate(id int64, birthDate time.Time) (*model.User, error)
	UpdateGender(id int64, gender string) (*model.User, error)
	UpdateLanguage(id int64, language string) (*model.User, error)
	Delete(id int64) error
}

// DelayStore reads the artificial response delay.
type DelayStore interface {
	ResponseDelay() (time.Duration, error)
}

// StateStore keeps the per-user dialogue step and its scratch payload.
type StateStore interface {
	SetStep(userID int64, step string)
	Step(userID int64) string
	SetPayload(userID int64, payload map[string]string) error
	Payload(userID int64) map[string]string
	Clear(userID int64)
}

// Messenger is the outbound surface the dialogue talks through.
type Messenger interface {
	SendMsgToUser(msg tgbotapi.Chattable, userID int64) error
	SendSimpleMsg(chatID int64, text string) error
	NewParseMarkUpMessage(chatID int64, markUp interface{}, text string) error
	SendAnswerCallback(callbackQuery *tgbotapi.CallbackQuery, text string) error
	SendNotificationToDeveloper(text string, needPin bool)
}

type Users struct {
	bot    *model.Bot
	logger log.Logger

	auth  *auth.Auth
	admin *administrator.Admin
	Msgs  Messenger

	state    StateStore
	profiles ProfileStore
	limits   *limits.Service
	delays   DelayStore

	tarot      *tarot.Engine
	numerology *numerology.Service
	astrology  *astrology.Service
	extra      *extra.Service

	MessageHandler  *MessagesHandlers
	CallbackHandler *CallBackHandlers

	rnd *rand.Rand
}

func NewUsersService(
	bot *model.Bot,
	authSrv *auth.Auth,
	adminSrv *administrator.Admin,
	msgsSrv Messenger,
	state StateStore,
	profiles ProfileStore,
	limitsSrv *limits.Service,
	delays DelayStore,
	tarotSrv *tarot.Engine,
	numerologySrv *numerology.Service,
	astrologySrv *astrology.Service,
	extraSrv *extra.Service,
	rnd *rand.Rand,
) *Users {
	u := &Users{
		bot:        bot,
		logger:     log.NewDefaultLogger().Prefix("dialogue"),
		auth:       authSrv,
		admin:      adminSrv,
		Msgs:       msgsSrv,
		state:      state,
		profiles:   profiles,
		limits:     limitsSrv,
		delays:     delays,
		tarot:      tarotSrv,
		numerology: numerologySrv,
		astrology:  astrologySrv,
		extra:      extraSrv,
		rnd:        rnd,
	}

	u.MessageHandler = &MessagesHandlers{Handlers: map[string]model.Handler{}}
	u.MessageHandler.Init(u, adminSrv)

	u.CallbackHandler = &CallBackHandlers{Handlers: map[string]model.Handler{}}
	u.CallbackHandler.Init(u)

	return u
}

func (u *Users) text(s *model.Situation, key string, args ...interface{}) string {
	return locales.Text(s.User.Language, key, args...)
}

func (u *Users) texts(s *model.Situation) map[string]string {
	return locales.Texts(s.User.Language)
}
