package utils

import (
	"sync"
	"time"

	"github.com/mystic-bots/gadalka-bot/internal/model"
)

// Spreader serializes handler execution per user so two updates from
// the same chat never race, while different users run concurrently.
// Idle per-user locks are dropped on a cleanup tick.
type Spreader struct {
	mu    sync.Mutex
	users map[int64]*userLane
}

type userLane struct {
	mu       sync.Mutex
	inFlight int
	lastSeen time.Time
}

func NewSpreader(cleanupInterval time.Duration) *Spreader {
	s := &Spreader{
		users: make(map[int64]*userLane),
	}

	go s.cleanup(cleanupInterval)

	return s
}

// ServeHandler runs handler in its own goroutine, holding the lane of
// situation's user for the duration. onErr is invoked with any error
// the handler returns.
func (s *Spreader) ServeHandler(handler model.Handler, situation *model.Situation, onErr func(err error)) {
	lane := s.lane(situation.User.ID)

	go func() {
		lane.mu.Lock()
		defer func() {
			lane.mu.Unlock()
			s.release(lane)
		}()

		if err := handler(situation); err != nil {
			onErr(err)
		}
	}()
}

func (s *Spreader) lane(userID int64) *userLane {
	s.mu.Lock()
	defer s.mu.Unlock()

	lane, ok := s.users[userID]
	if !ok {
		lane = &userLane{}
		s.users[userID] = lane
	}
	lane.inFlight++
	lane.lastSeen = time.Now()

	return lane
}

func (s *Spreader) release(lane *userLane) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lane.inFlight--
	lane.lastSeen = time.Now()
}

func (s *Spreader) cleanup(interval time.Duration) {
	for range time.Tick(interval) {
		deadline := time.Now().Add(-interval)

		s.mu.Lock()
		for id, lane := range s.users {
			// A lane with queued or running work must survive so the
			// next update for the same user keeps waiting on it.
			if lane.inFlight == 0 && lane.lastSeen.Before(deadline) {
				delete(s.users, id)
			}
		}
		s.mu.Unlock()
	}
}
