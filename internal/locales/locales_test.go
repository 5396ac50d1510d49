package locales

import (
	"strings"
	"testing"
)

func TestLanguagesCarrySameKeys(t *testing.T) {
	ru := languages["ru"]
	en := languages["en"]

	for key := range ru {
		if _, ok := en[key]; !ok {
			t.Errorf("key %q missing in en", key)
		}
	}
	for key := range en {
		if _, ok := ru[key]; !ok {
			t.Errorf("key %q missing in ru", key)
		}
	}
}

func TestTextFormatsArgs(t *testing.T) {
	text := Text("ru", "limit_reached", 5)
	if text == "limit_reached" {
		t.Fatal("known key must resolve")
	}
	if !strings.Contains(text, "5") {
		t.Errorf("argument not substituted: %q", text)
	}
}

func TestTextUnknownKey(t *testing.T) {
	if got := Text("ru", "no_such_key"); got != "no_such_key" {
		t.Errorf("unknown key must come back as-is, got %q", got)
	}
}

func TestTextUnknownLanguageFallsBack(t *testing.T) {
	if Text("de", "main_menu_text") != Text("ru", "main_menu_text") {
		t.Error("unknown language must fall back to russian")
	}
}
