package services

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mystic-bots/gadalka-bot/internal/log"
	"github.com/mystic-bots/gadalka-bot/internal/model"
	"github.com/mystic-bots/gadalka-bot/internal/services/administrator"
	"github.com/mystic-bots/gadalka-bot/internal/services/astrology"
	"github.com/mystic-bots/gadalka-bot/internal/services/auth"
	"github.com/mystic-bots/gadalka-bot/internal/services/extra"
	"github.com/mystic-bots/gadalka-bot/internal/services/limits"
	"github.com/mystic-bots/gadalka-bot/internal/services/numerology"
	"github.com/mystic-bots/gadalka-bot/internal/services/tarot"
	"github.com/mystic-bots/gadalka-bot/internal/utils"
)

type fakeState struct {
	steps    map[int64]string
	payloads map[int64]map[string]string
}

func newFakeState() *fakeState {
	return &fakeState{
		steps:    map[int64]string{},
		payloads: map[int64]map[string]string{},
	}
}

func (f *fakeState) SetStep(userID int64, step string) {
	f.steps[userID] = step
}

func (f *fakeState) Step(userID int64) string {
	if step := f.steps[userID]; step != "" {
		return step
	}
	return model.StepMain
}

func (f *fakeState) SetPayload(userID int64, payload map[string]string) error {
	f.payloads[userID] = payload
	return nil
}

func (f *fakeState) Payload(userID int64) map[string]string {
	if payload := f.payloads[userID]; payload != nil {
		return payload
	}
	return map[string]string{}
}

func (f *fakeState) Clear(userID int64) {
	f.steps[userID] = model.StepMain
	delete(f.payloads, userID)
}

type fakeMessenger struct {
	sent []string
}

func (f *fakeMessenger) SendMsgToUser(msg tgbotapi.Chattable, userID int64) error {
	if m, ok := msg.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, m.Text)
	}
	return nil
}

func (f *fakeMessenger) SendSimpleMsg(chatID int64, text string) error {
	f.sent = append(f.sent, text)
	return nil
}

func (f *fakeMessenger) NewParseMarkUpMessage(chatID int64, markUp interface{}, text string) error {
	f.sent = append(f.sent, text)
	return nil
}

func (f *fakeMessenger) SendAnswerCallback(callbackQuery *tgbotapi.CallbackQuery, text string) error {
	return nil
}

func (f *fakeMessenger) SendNotificationToDeveloper(text string, needPin bool) {}

func (f *fakeMessenger) contains(sub string) bool {
	for _, text := range f.sent {
		if strings.Contains(text, sub) {
			return true
		}
	}
	return false
}

type fakeUserStore struct {
	users map[int64]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]*model.User{}}
}

func (f *fakeUserStore) ByID(id int64) (*model.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserStore) GetOrCreate(id int64, username, firstName, language string) (*model.User, bool, error) {
	if user, ok := f.users[id]; ok {
		return user, false, nil
	}
	user := &model.User{ID: id, Username: username, FirstName: firstName, Language: language}
	f.users[id] = user
	return user, true, nil
}

func (f *fakeUserStore) UpdateName(id int64, name string) (*model.User, error) {
	f.users[id].Name = name
	return f.users[id], nil
}

func (f *fakeUserStore) UpdateBirthDate(id int64, birthDate time.Time) (*model.User, error) {
	f.users[id].BirthDate = &birthDate
	return f.users[id], nil
}

func (f *fakeUserStore) UpdateGender(id int64, gender string) (*model.User, error) {
	f.users[id].Gender = gender
	return f.users[id], nil
}

func (f *fakeUserStore) UpdateLanguage(id int64, language string) (*model.User, error) {
	f.users[id].Language = language
	return f.users[id], nil
}

func (f *fakeUserStore) Delete(id int64) error {
	delete(f.users, id)
	return nil
}

type fakeReferrals struct{}

func (f *fakeReferrals) Link(inviterID, invitedID int64, inviterBonus, welcomeBonus int) error {
	return nil
}

func (f *fakeReferrals) Exists(invitedID int64) (bool, error) { return false, nil }

func (f *fakeReferrals) CountByInviter(inviterID int64) (int, error) { return 0, nil }

type fakeRefSettings struct{}

func (f *fakeRefSettings) Referral() (model.ReferralSettings, error) {
	return model.ReferralSettings{}, nil
}

type fakeUsage struct {
	records []*model.UsageRecord
}

func (f *fakeUsage) CountBetween(userID int64, from, to time.Time) (int, error) {
	count := 0
	for _, rec := range f.records {
		if rec.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeUsage) Save(rec *model.UsageRecord, dailyLimit int, from, to time.Time) (bool, error) {
	f.records = append(f.records, rec)
	return false, nil
}

type fakeDeck struct{}

func (f *fakeDeck) Deck() ([]model.TarotCard, error) { return nil, nil }

type fakeSigns struct{}

func (f *fakeSigns) Signs() ([]model.ZodiacSign, error) { return nil, nil }

type fakeTexts struct{}

func (f *fakeTexts) Description(number int, calcType string) (string, error) {
	return "", model.ErrDescriptionNotFound
}

type fakeDelay struct{}

func (f *fakeDelay) ResponseDelay() (time.Duration, error) { return 0, nil }

func newTestUsers() (*Users, *fakeState, *fakeMessenger, *fakeUserStore, *fakeUsage) {
	bot := model.NewBot(nil, "https://t.me/testbot", "ru", 5, []int64{99})
	state := newFakeState()
	messenger := &fakeMessenger{}
	usersRepo := newFakeUserStore()
	usage := &fakeUsage{}
	rnd := rand.New(rand.NewSource(7))

	authSrv := auth.NewAuthService(bot, messenger, usersRepo, &fakeReferrals{}, &fakeRefSettings{})
	adminSrv := administrator.NewAdminService(bot, nil, nil, nil, nil, nil)

	u := NewUsersService(
		bot,
		authSrv,
		adminSrv,
		messenger,
		state,
		usersRepo,
		limits.NewService(usage, 5),
		&fakeDelay{},
		tarot.NewEngine(&fakeDeck{}, rnd),
		numerology.NewService(&fakeTexts{}),
		astrology.NewService(&fakeSigns{}),
		extra.NewService(rnd),
		rnd,
	)

	return u, state, messenger, usersRepo, usage
}

func incoming(userID int64, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text: text,
		From: &tgbotapi.User{ID: userID, UserName: "seeker", FirstName: "Аня", LanguageCode: "ru"},
		Chat: &tgbotapi.Chat{ID: userID},
	}
}

// sendText resolves the handler the way checkMessage does and runs it
// synchronously.
func sendText(t *testing.T, u *Users, userID int64, text string) {
	t.Helper()

	s, err := u.createSituationFromMsg(incoming(userID, text))
	if err != nil {
		t.Fatalf("create situation for %q: %s", text, err)
	}

	var handler model.Handler
	if s.Command != "" {
		handler = u.MessageHandler.GetHandler(s.Command)
	}
	if handler == nil {
		handler = u.MessageHandler.GetHandler(s.Step)
	}
	if handler == nil {
		t.Fatalf("no handler for %q at step %q", text, s.Step)
	}

	if err := handler(s); err != nil {
		t.Fatalf("handle %q: %s", text, err)
	}
}

func sendCallback(t *testing.T, u *Users, userID int64, data string) {
	t.Helper()

	cb := &tgbotapi.CallbackQuery{
		From: &tgbotapi.User{ID: userID, UserName: "seeker", FirstName: "Аня", LanguageCode: "ru"},
		Data: data,
	}
	s, err := u.createSituationFromCallback(cb)
	if err != nil {
		t.Fatalf("create situation for callback %q: %s", data, err)
	}

	handler := u.CallbackHandler.GetHandler(s.Command)
	if handler == nil {
		t.Fatalf("no callback handler for %q", s.Command)
	}
	if err := handler(s); err != nil {
		t.Fatalf("handle callback %q: %s", data, err)
	}
}

func TestOnboardingThenDestinyReading(t *testing.T) {
	u, state, messenger, usersRepo, usage := newTestUsers()
	const userID = int64(42)

	sendText(t, u, userID, "/start")
	if state.Step(userID) != model.StepProfileLanguage {
		t.Fatalf("after /start step = %q, want %q", state.Step(userID), model.StepProfileLanguage)
	}
	if state.Payload(userID)["onboarding"] != "1" {
		t.Fatal("onboarding marker is not set after first /start")
	}

	sendText(t, u, userID, "ru")
	if state.Step(userID) != model.StepProfileName {
		t.Fatalf("after language step = %q, want %q", state.Step(userID), model.StepProfileName)
	}

	sendText(t, u, userID, "Анна")
	if state.Step(userID) != model.StepProfileBirthdate {
		t.Fatalf("after name step = %q, want %q", state.Step(userID), model.StepProfileBirthdate)
	}

	sendText(t, u, userID, "01.01.2000")
	if state.Step(userID) != model.StepProfileGender {
		t.Fatalf("after birthdate step = %q, want %q", state.Step(userID), model.StepProfileGender)
	}

	sendText(t, u, userID, "ж")
	if state.Step(userID) != model.StepMain {
		t.Fatalf("after gender step = %q, want %q", state.Step(userID), model.StepMain)
	}

	user := usersRepo.users[userID]
	if user.Name != "Анна" || user.Gender != "female" {
		t.Errorf("profile not stored: name %q, gender %q", user.Name, user.Gender)
	}
	if user.BirthDate == nil || user.BirthDate.Format("2006-01-02") != "2000-01-01" {
		t.Errorf("birth date not stored: %v", user.BirthDate)
	}

	sendCallback(t, u, userID, "/num?destiny")
	if state.Step(userID) != model.StepNumerologyBirthdate {
		t.Fatalf("after destiny pick step = %q, want %q", state.Step(userID), model.StepNumerologyBirthdate)
	}

	sendText(t, u, userID, "01.01.2000")

	if !messenger.contains("Число судьбы: 4") {
		t.Error("destiny reading for 01.01.2000 does not show number 4")
	}
	if len(usage.records) != 1 {
		t.Fatalf("usage records = %d, want 1", len(usage.records))
	}
	rec := usage.records[0]
	if rec.Category != model.CategoryNumerology || rec.Result == "" {
		t.Errorf("bad usage record: category %q, result %q", rec.Category, rec.Result)
	}
}

func TestPersonalityFlowDeliversThreeNumbers(t *testing.T) {
	u, state, messenger, _, usage := newTestUsers()
	const userID = int64(43)

	sendCallback(t, u, userID, "/num?personality")
	if state.Step(userID) != model.StepNumerologyName {
		t.Fatalf("after personality pick step = %q, want %q", state.Step(userID), model.StepNumerologyName)
	}

	sendText(t, u, userID, "Анна")
	if state.Step(userID) != model.StepNumerologyBirthdate {
		t.Fatalf("after name step = %q, want %q", state.Step(userID), model.StepNumerologyBirthdate)
	}

	sendText(t, u, userID, "01.01.2000")

	for _, want := range []string{"Число судьбы: 4", "Число имени: 5", "Число жизненного цикла: 1"} {
		if !messenger.contains(want) {
			t.Errorf("personality card misses %q", want)
		}
	}
	if len(usage.records) != 1 || usage.records[0].Variant != "personality" {
		t.Errorf("personality usage record not saved: %+v", usage.records)
	}
}

func TestUnknownInputAtStaleStepResetsToMenu(t *testing.T) {
	u, state, messenger, _, _ := newTestUsers()
	const userID = int64(44)

	state.SetStep(userID, model.StepTarotSpread)

	s, err := u.createSituationFromMsg(incoming(userID, "какой расклад выбрать?"))
	if err != nil {
		t.Fatalf("create situation: %s", err)
	}

	u.checkMessage(s, log.NewDefaultLogger().Prefix("test"), utils.NewSpreader(time.Minute))

	if state.Step(userID) != model.StepMain {
		t.Errorf("stale step not cleared: %q", state.Step(userID))
	}
	if !messenger.contains("вернёмся в главное меню") {
		t.Errorf("no reset notice sent: %v", messenger.sent)
	}
}

func TestDescriptionFallbackIsPerCalculationType(t *testing.T) {
	u, _, _, _, _ := newTestUsers()
	s := &model.Situation{User: &model.User{ID: 1, Language: "ru"}}

	destiny := u.describeOrFallback(s, 4, model.CalcDestiny)
	name := u.describeOrFallback(s, 4, model.CalcName)
	lifeCycle := u.describeOrFallback(s, 4, model.CalcLifeCycle)

	if destiny != "Путь развития и ключевые качества." {
		t.Errorf("destiny fallback = %q", destiny)
	}
	if destiny == name || name == lifeCycle || destiny == lifeCycle {
		t.Errorf("fallbacks are not per type: %q / %q / %q", destiny, name, lifeCycle)
	}
}
