package db

import (
	"encoding/json"
	"strconv"

	"github.com/go-redis/redis"
	"github.com/pkg/errors"

	"github.com/mystic-bots/gadalka-bot/internal/model"
)

// StateStore keeps the per-user dialogue step and its scratch payload in
// redis. The state lives only as long as the active conversation.
type StateStore struct {
	rdb *redis.Client
}

func NewStateStore(addr string) (*StateStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := rdb.Ping().Result(); err != nil {
		return nil, errors.Wrap(err, "ping redis")
	}

	return &StateStore{rdb: rdb}, nil
}

func stepKey(userID int64) string {
	return "step:" + strconv.FormatInt(userID, 10)
}

func payloadKey(userID int64) string {
	return "payload:" + strconv.FormatInt(userID, 10)
}

func (s *StateStore) SetStep(userID int64, step string) {
	_, _ = s.rdb.Set(stepKey(userID), step, 0).Result()
}

// Step returns the user's current dialogue step, or StepMain when none
// is stored.
func (s *StateStore) Step(userID int64) string {
	step, err := s.rdb.Get(stepKey(userID)).Result()
	if err != nil || step == "" {
		return model.StepMain
	}
	return step
}

func (s *StateStore) SetPayload(userID int64, payload map[string]string) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshal payload")
	}

	_, err = s.rdb.Set(payloadKey(userID), data, 0).Result()
	return errors.Wrap(err, "set payload")
}

func (s *StateStore) Payload(userID int64) map[string]string {
	raw, err := s.rdb.Get(payloadKey(userID)).Result()
	if err != nil {
		return map[string]string{}
	}

	payload := map[string]string{}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return map[string]string{}
	}
	return payload
}

// Clear drops the step and payload, returning the user to the idle
// state.
func (s *StateStore) Clear(userID int64) {
	_, _ = s.rdb.Set(stepKey(userID), model.StepMain, 0).Result()
	_, _ = s.rdb.Del(payloadKey(userID)).Result()
}
