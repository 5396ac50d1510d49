package limits

import (
	"time"

	"github.com/pkg/errors"

	"github.com/mystic-bots/gadalka-bot/internal/metrics"
	"github.com/mystic-bots/gadalka-bot/internal/model"
)

// Store is the slice of the usage ledger the quota needs.
type Store interface {
	CountBetween(userID int64, from, to time.Time) (int, error)
	Save(rec *model.UsageRecord, dailyLimit int, from, to time.Time) (bool, error)
}

// Service enforces the per-user daily quota. The day boundary is UTC
// midnight.
type Service struct {
	store      Store
	dailyLimit int
	now        func() time.Time
}

func NewService(store Store, dailyLimit int) *Service {
	return &Service{
		store:      store,
		dailyLimit: dailyLimit,
		now:        time.Now,
	}
}

func dayBounds(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return from, from.Add(24 * time.Hour)
}

func (s *Service) CountToday(userID int64) (int, error) {
	from, to := dayBounds(s.now())
	count, err := s.store.CountBetween(userID, from, to)
	return count, errors.Wrap(err, "count today")
}

// Remaining reports how many free requests the user still has today,
// never below zero.
func (s *Service) Remaining(userID int64) (int, error) {
	count, err := s.CountToday(userID)
	if err != nil {
		return 0, err
	}
	remaining := s.dailyLimit - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// Allow reports whether the user may make one more request right now,
// either within the free quota or funded by bonus balance. It does not
// consume anything.
func (s *Service) Allow(user *model.User) (bool, int, error) {
	remaining, err := s.Remaining(user.ID)
	if err != nil {
		return false, 0, err
	}

	if remaining > 0 || user.BonusBalance > 0 {
		return true, remaining, nil
	}

	metrics.QuotaRefusals.Inc()
	return false, 0, nil
}

// Record appends the usage record, consuming one bonus credit when the
// free quota is already spent. It reports whether a credit was used.
func (s *Service) Record(rec *model.UsageRecord) (bool, error) {
	from, to := dayBounds(s.now())
	bonusFunded, err := s.store.Save(rec, s.dailyLimit, from, to)
	return bonusFunded, errors.Wrap(err, "record usage")
}

func (s *Service) DailyLimit() int {
	return s.dailyLimit
}
