package utils

import (
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/mystic-bots/gadalka-bot/internal/model"
)

func situationFor(userID int64) *model.Situation {
	return &model.Situation{User: &model.User{ID: userID}}
}

func TestServeHandlerSerializesPerUser(t *testing.T) {
	spreader := NewSpreader(time.Minute)

	var mu sync.Mutex
	running := 0
	maxRunning := 0

	handler := func(s *model.Situation) error {
		mu.Lock()
		running++
		if running > maxRunning {
			maxRunning = running
		}
		mu.Unlock()

		time.Sleep(10 * time.Millisecond)

		mu.Lock()
		running--
		mu.Unlock()
		return nil
	}

	var wg sync.WaitGroup
	done := func(err error) {}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		spreader.ServeHandler(func(s *model.Situation) error {
			defer wg.Done()
			return handler(s)
		}, situationFor(1), done)
	}
	wg.Wait()

	if maxRunning != 1 {
		t.Errorf("handlers for one user overlapped: max concurrency %d", maxRunning)
	}
}

func TestServeHandlerSerializesAcrossCleanupTicks(t *testing.T) {
	spreader := NewSpreader(50 * time.Millisecond)

	var mu sync.Mutex
	running := 0
	maxRunning := 0

	var wg sync.WaitGroup
	slow := func(s *model.Situation) error {
		defer wg.Done()

		mu.Lock()
		running++
		if running > maxRunning {
			maxRunning = running
		}
		mu.Unlock()

		time.Sleep(400 * time.Millisecond)

		mu.Lock()
		running--
		mu.Unlock()
		return nil
	}

	// The first handler outlives several cleanup ticks; the second
	// update for the same user must still queue behind it.
	wg.Add(1)
	spreader.ServeHandler(slow, situationFor(1), func(err error) {})

	time.Sleep(200 * time.Millisecond)

	wg.Add(1)
	spreader.ServeHandler(slow, situationFor(1), func(err error) {})
	wg.Wait()

	if maxRunning != 1 {
		t.Errorf("handlers for the same user overlapped: max concurrency %d", maxRunning)
	}
}

func TestServeHandlerDifferentUsersRunConcurrently(t *testing.T) {
	spreader := NewSpreader(time.Minute)

	started := make(chan int64, 2)
	release := make(chan struct{})

	var wg sync.WaitGroup
	for _, id := range []int64{1, 2} {
		wg.Add(1)
		userID := id
		spreader.ServeHandler(func(s *model.Situation) error {
			defer wg.Done()
			started <- userID
			<-release
			return nil
		}, situationFor(userID), func(err error) {})
	}

	// Both handlers must reach their start before either is released.
	timeout := time.After(time.Second)
	for i := 0; i < 2; i++ {
		select {
		case <-started:
		case <-timeout:
			t.Fatal("handlers for different users blocked each other")
		}
	}
	close(release)
	wg.Wait()
}

func TestServeHandlerReportsError(t *testing.T) {
	spreader := NewSpreader(time.Minute)

	errCh := make(chan error, 1)
	spreader.ServeHandler(func(s *model.Situation) error {
		return errors.New("boom")
	}, situationFor(1), func(err error) {
		errCh <- err
	})

	select {
	case err := <-errCh:
		if err.Error() != "boom" {
			t.Errorf("unexpected error: %s", err)
		}
	case <-time.After(time.Second):
		t.Fatal("onErr was not invoked")
	}
}
