package msgs

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MarkUp assembles a reply keyboard from button keys; Build resolves
// the keys against a language map.
type MarkUp struct {
	Rows []Row
}

type Row struct {
	Buttons []Button
}

type Button struct {
	Key string
}

func NewMarkUp(rows ...Row) MarkUp {
	return MarkUp{Rows: rows}
}

func NewRow(buttons ...Button) Row {
	return Row{Buttons: buttons}
}

func NewDataButton(key string) Button {
	return Button{Key: key}
}

func (m MarkUp) Build(texts map[string]string) tgbotapi.ReplyKeyboardMarkup {
	var keyboard [][]tgbotapi.KeyboardButton

	for _, row := range m.Rows {
		var buttons []tgbotapi.KeyboardButton
		for _, button := range row.Buttons {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(resolve(texts, button.Key)))
		}
		keyboard = append(keyboard, buttons)
	}

	markUp := tgbotapi.NewReplyKeyboard(keyboard...)
	markUp.ResizeKeyboard = true
	return markUp
}

// InlineMarkUp mirrors MarkUp for inline keyboards; buttons carry
// either callback data or a URL.
type InlineMarkUp struct {
	Rows []InlineRow
}

type InlineRow struct {
	Buttons []InlineButton
}

type InlineButton struct {
	Key  string
	Data string
	URL  string
}

func NewIlMarkUp(rows ...InlineRow) InlineMarkUp {
	return InlineMarkUp{Rows: rows}
}

func NewIlRow(buttons ...InlineButton) InlineRow {
	return InlineRow{Buttons: buttons}
}

func NewIlDataButton(key, data string) InlineButton {
	return InlineButton{Key: key, Data: data}
}

func NewIlURLButton(key, url string) InlineButton {
	return InlineButton{Key: key, URL: url}
}

func (m InlineMarkUp) Build(texts map[string]string) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton

	for _, row := range m.Rows {
		var buttons []tgbotapi.InlineKeyboardButton
		for _, button := range row.Buttons {
			text := resolve(texts, button.Key)
			if button.URL != "" {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonURL(text, button.URL))
				continue
			}
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(text, button.Data))
		}
		keyboard = append(keyboard, buttons)
	}

	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

func resolve(texts map[string]string, key string) string {
	if text, ok := texts[key]; ok {
		return text
	}
	return key
}
