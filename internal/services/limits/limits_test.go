package limits

import (
	"testing"
	"time"

	"github.com/mystic-bots/gadalka-bot/internal/model"
)

type fakeStore struct {
	records []*model.UsageRecord
	balance map[int64]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{balance: map[int64]int{}}
}

func (f *fakeStore) CountBetween(userID int64, from, to time.Time) (int, error) {
	count := 0
	for _, rec := range f.records {
		if rec.UserID == userID && !rec.CreatedAt.Before(from) && rec.CreatedAt.Before(to) {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) Save(rec *model.UsageRecord, dailyLimit int, from, to time.Time) (bool, error) {
	count, _ := f.CountBetween(rec.UserID, from, to)

	bonusFunded := false
	if count >= dailyLimit && f.balance[rec.UserID] > 0 {
		f.balance[rec.UserID]--
		bonusFunded = true
	}

	rec.BonusFunded = bonusFunded
	f.records = append(f.records, rec)
	return bonusFunded, nil
}

func fixedNow() time.Time {
	return time.Date(2024, time.May, 10, 15, 30, 0, 0, time.UTC)
}

func newTestService(store *fakeStore, limit int) *Service {
	srv := NewService(store, limit)
	srv.now = fixedNow
	return srv
}

func record(userID int64, at time.Time) *model.UsageRecord {
	return &model.UsageRecord{
		UserID:    userID,
		Category:  model.CategoryTarot,
		CreatedAt: at,
	}
}

func TestRemaining(t *testing.T) {
	store := newFakeStore()
	srv := newTestService(store, 3)

	remaining, err := srv.Remaining(1)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if remaining != 3 {
		t.Errorf("fresh user remaining = %d, want 3", remaining)
	}

	store.records = append(store.records, record(1, fixedNow()), record(1, fixedNow()))

	remaining, _ = srv.Remaining(1)
	if remaining != 1 {
		t.Errorf("remaining after 2 of 3 = %d, want 1", remaining)
	}
}

func TestRemainingIgnoresOtherDays(t *testing.T) {
	store := newFakeStore()
	srv := newTestService(store, 2)

	yesterday := fixedNow().Add(-24 * time.Hour)
	store.records = append(store.records, record(1, yesterday), record(1, yesterday))

	remaining, _ := srv.Remaining(1)
	if remaining != 2 {
		t.Errorf("yesterday's usage must not count: remaining = %d, want 2", remaining)
	}
}

func TestAllowWithinQuota(t *testing.T) {
	store := newFakeStore()
	srv := newTestService(store, 1)

	ok, remaining, err := srv.Allow(&model.User{ID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !ok || remaining != 1 {
		t.Errorf("Allow = (%v, %d), want (true, 1)", ok, remaining)
	}
}

func TestAllowRefusesWithoutQuotaOrBonus(t *testing.T) {
	store := newFakeStore()
	srv := newTestService(store, 1)
	store.records = append(store.records, record(1, fixedNow()))

	ok, _, err := srv.Allow(&model.User{ID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if ok {
		t.Error("exhausted user without bonus must be refused")
	}
}

func TestAllowAcceptsOnBonus(t *testing.T) {
	store := newFakeStore()
	srv := newTestService(store, 1)
	store.records = append(store.records, record(1, fixedNow()))

	ok, remaining, err := srv.Allow(&model.User{ID: 1, BonusBalance: 2})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !ok || remaining != 0 {
		t.Errorf("Allow with bonus = (%v, %d), want (true, 0)", ok, remaining)
	}
}

func TestRecordConsumesBonusPastLimit(t *testing.T) {
	store := newFakeStore()
	store.balance[1] = 1
	srv := newTestService(store, 1)

	bonusFunded, err := srv.Record(record(1, fixedNow()))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if bonusFunded {
		t.Error("first request of the day must be free")
	}

	bonusFunded, err = srv.Record(record(1, fixedNow()))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !bonusFunded {
		t.Error("request past the limit must consume a bonus credit")
	}
	if store.balance[1] != 0 {
		t.Errorf("bonus balance = %d, want 0", store.balance[1])
	}
}
