package auth

import (
	"testing"

	"github.com/mystic-bots/gadalka-bot/internal/model"
)

type fakeUsers struct {
	users map[int64]*model.User
}

func (f *fakeUsers) ByID(id int64) (*model.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUsers) GetOrCreate(id int64, username, firstName, language string) (*model.User, bool, error) {
	if user, ok := f.users[id]; ok {
		return user, false, nil
	}
	user := &model.User{ID: id, Username: username, FirstName: firstName, Language: language}
	f.users[id] = user
	return user, true, nil
}

type fakeReferrals struct {
	links map[int64]int64
}

func (f *fakeReferrals) Link(inviterID, invitedID int64, inviterBonus, welcomeBonus int) error {
	if _, ok := f.links[invitedID]; ok {
		return model.ErrReferralExists
	}
	f.links[invitedID] = inviterID
	return nil
}

func (f *fakeReferrals) Exists(invitedID int64) (bool, error) {
	_, ok := f.links[invitedID]
	return ok, nil
}

func (f *fakeReferrals) CountByInviter(inviterID int64) (int, error) {
	count := 0
	for _, id := range f.links {
		if id == inviterID {
			count++
		}
	}
	return count, nil
}

type fakeSettings struct {
	settings model.ReferralSettings
}

func (f *fakeSettings) Referral() (model.ReferralSettings, error) {
	return f.settings, nil
}

type fakeMessenger struct {
	sent map[int64][]string
}

func (f *fakeMessenger) SendSimpleMsg(chatID int64, text string) error {
	if f.sent == nil {
		f.sent = map[int64][]string{}
	}
	f.sent[chatID] = append(f.sent[chatID], text)
	return nil
}

func newTestAuth(settings model.ReferralSettings) (*Auth, *fakeUsers, *fakeReferrals, *fakeMessenger) {
	users := &fakeUsers{users: map[int64]*model.User{
		100: {ID: 100, Language: "ru"},
	}}
	referrals := &fakeReferrals{links: map[int64]int64{}}
	messenger := &fakeMessenger{}

	bot := model.NewBot(nil, "https://t.me/gadalka_bot", "ru", 5, nil)
	a := NewAuthService(bot, messenger, users, referrals, &fakeSettings{settings: settings})
	return a, users, referrals, messenger
}

func enabledSettings() model.ReferralSettings {
	return model.ReferralSettings{Bonus: 5, WelcomeBonus: 2, Enabled: true}
}

func TestParseReferralToken(t *testing.T) {
	cases := []struct {
		payload string
		wantID  int64
		wantOK  bool
	}{
		{"ref_100", 100, true},
		{"ref_1", 1, true},
		{"ref_", 0, false},
		{"ref_abc", 0, false},
		{"ref_-5", 0, false},
		{"100", 0, false},
		{"", 0, false},
	}

	for _, c := range cases {
		id, ok := ParseReferralToken(c.payload)
		if id != c.wantID || ok != c.wantOK {
			t.Errorf("ParseReferralToken(%q) = (%d, %v), want (%d, %v)", c.payload, id, ok, c.wantID, c.wantOK)
		}
	}
}

func TestApplyReferral(t *testing.T) {
	a, _, referrals, messenger := newTestAuth(enabledSettings())

	invited := &model.User{ID: 200, Language: "ru"}
	applied, err := a.ApplyReferral(invited, true, "ref_100")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !applied {
		t.Fatal("valid referral must be applied")
	}
	if referrals.links[200] != 100 {
		t.Error("link not stored")
	}
	if invited.ReferredBy == nil || *invited.ReferredBy != 100 {
		t.Error("invited user must carry the inviter id")
	}
	if invited.BonusBalance != 2 {
		t.Errorf("welcome bonus not credited: balance = %d", invited.BonusBalance)
	}
	if len(messenger.sent[100]) != 1 {
		t.Error("inviter must be notified")
	}
}

func TestApplyReferralSkipsReturningUser(t *testing.T) {
	a, _, referrals, _ := newTestAuth(enabledSettings())

	applied, err := a.ApplyReferral(&model.User{ID: 200}, false, "ref_100")
	if err != nil || applied {
		t.Errorf("returning user must not trigger a referral: applied=%v err=%v", applied, err)
	}
	if len(referrals.links) != 0 {
		t.Error("no link expected")
	}
}

func TestApplyReferralSkipsSelfInvite(t *testing.T) {
	a, _, _, _ := newTestAuth(enabledSettings())

	applied, err := a.ApplyReferral(&model.User{ID: 100}, true, "ref_100")
	if err != nil || applied {
		t.Errorf("self invite must be ignored: applied=%v err=%v", applied, err)
	}
}

func TestApplyReferralSkipsUnknownInviter(t *testing.T) {
	a, _, _, _ := newTestAuth(enabledSettings())

	applied, err := a.ApplyReferral(&model.User{ID: 200}, true, "ref_999")
	if err != nil || applied {
		t.Errorf("unknown inviter must be ignored: applied=%v err=%v", applied, err)
	}
}

func TestApplyReferralDisabledSystem(t *testing.T) {
	a, _, _, _ := newTestAuth(model.ReferralSettings{Bonus: 5, Enabled: false})

	applied, err := a.ApplyReferral(&model.User{ID: 200}, true, "ref_100")
	if err != nil || applied {
		t.Errorf("disabled system must not link: applied=%v err=%v", applied, err)
	}
}

func TestApplyReferralAlreadyLinked(t *testing.T) {
	a, _, referrals, _ := newTestAuth(enabledSettings())
	referrals.links[200] = 50

	applied, err := a.ApplyReferral(&model.User{ID: 200}, true, "ref_100")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if applied {
		t.Error("second link for the same invited user must be refused")
	}
	if referrals.links[200] != 50 {
		t.Error("original link must survive")
	}
}

func TestApplyReferralMalformedToken(t *testing.T) {
	a, _, _, _ := newTestAuth(enabledSettings())

	for _, token := range []string{"", "ref_", "ref_x", "start"} {
		applied, err := a.ApplyReferral(&model.User{ID: 200}, true, token)
		if err != nil || applied {
			t.Errorf("token %q must be ignored: applied=%v err=%v", token, applied, err)
		}
	}
}

func TestReferralLink(t *testing.T) {
	a, _, _, _ := newTestAuth(enabledSettings())

	link := a.ReferralLink(42)
	if link != "https://t.me/gadalka_bot?start=ref_42" {
		t.Errorf("ReferralLink = %q", link)
	}
}
