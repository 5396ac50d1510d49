package administrator

import (
	"time"

	"github.com/mystic-bots/gadalka-bot/internal/db"
	"github.com/mystic-bots/gadalka-bot/internal/log"
	"github.com/mystic-bots/gadalka-bot/internal/model"
	"github.com/mystic-bots/gadalka-bot/internal/msgs"
	"github.com/mystic-bots/gadalka-bot/internal/repository"
)

// UsersStore is the user storage slice the admin surface reads.
type UsersStore interface {
	AllIDs() ([]int64, error)
	CountAll() (int, error)
	CountCreatedSince(since time.Time) (int, error)
}

// HistoryStore supplies the aggregates for the stats report.
type HistoryStore interface {
	CountAll() (int, error)
	CountAllBetween(from, to time.Time) (int, error)
	ActiveUsersBetween(from, to time.Time) (int, error)
	CountByCategory() ([]repository.CategoryCount, error)
	TopVariants(limit int) ([]repository.VariantCount, error)
	TopUsers(limit int) ([]repository.UserCount, error)
	DailyActivity(from, to time.Time) ([]repository.DayCount, error)
}

// SettingsStore reads and writes the runtime-tunable settings.
type SettingsStore interface {
	Referral() (model.ReferralSettings, error)
	SetReferralBonus(amount int) error
	SetReferralWelcomeBonus(amount int) error
	SetReferralEnabled(enabled bool) error
	ResponseDelay() (time.Duration, error)
	SetResponseDelay(seconds int) error
}

type Admin struct {
	bot    *model.Bot
	msgs   *msgs.Service
	logger log.Logger

	users    UsersStore
	history  HistoryStore
	settings SettingsStore
	state    *db.StateStore
}

func NewAdminService(
	bot *model.Bot,
	msgsSrv *msgs.Service,
	users UsersStore,
	history HistoryStore,
	settings SettingsStore,
	state *db.StateStore,
) *Admin {
	return &Admin{
		bot:      bot,
		msgs:     msgsSrv,
		logger:   log.NewDefaultLogger().Prefix("admin"),
		users:    users,
		history:  history,
		settings: settings,
		state:    state,
	}
}

// guard rejects non-admin senders with a denial message. Handlers call
// it before any side effect.
func (a *Admin) guard(s *model.Situation) error {
	if a.bot.CheckAdmin(s.User.ID) {
		return nil
	}

	a.logger.Warn("user %d tried admin action %q", s.User.ID, s.Command)
	_ = a.msgs.SendSimpleMsg(s.User.ID, a.text(s, "admin_denied"))
	return model.ErrNotAdminUser
}
