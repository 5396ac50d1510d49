package msgs

import "testing"

var texts = map[string]string{
	"main_tarot": "🃏 Таро",
	"back":       "Назад",
}

func TestMarkUpBuild(t *testing.T) {
	markUp := NewMarkUp(
		NewRow(NewDataButton("main_tarot")),
		NewRow(NewDataButton("back"), NewDataButton("unknown_key")),
	).Build(texts)

	if len(markUp.Keyboard) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(markUp.Keyboard))
	}
	if markUp.Keyboard[0][0].Text != "🃏 Таро" {
		t.Errorf("key not resolved: %q", markUp.Keyboard[0][0].Text)
	}
	if markUp.Keyboard[1][1].Text != "unknown_key" {
		t.Errorf("unknown key must pass through: %q", markUp.Keyboard[1][1].Text)
	}
	if !markUp.ResizeKeyboard {
		t.Error("reply keyboard must be resizable")
	}
}

func TestInlineMarkUpBuild(t *testing.T) {
	markUp := NewIlMarkUp(
		NewIlRow(
			NewIlDataButton("back", "/menu"),
			NewIlURLButton("main_tarot", "https://example.com")),
	).Build(texts)

	row := markUp.InlineKeyboard[0]
	if row[0].CallbackData == nil || *row[0].CallbackData != "/menu" {
		t.Error("data button lost its callback data")
	}
	if row[0].Text != "Назад" {
		t.Errorf("data button text = %q", row[0].Text)
	}
	if row[1].URL == nil || *row[1].URL != "https://example.com" {
		t.Error("url button lost its url")
	}
}
