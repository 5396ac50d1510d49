package model

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot bundles the transport handle with the process-wide configuration
// every handler needs. It is constructed once in main and passed
// explicitly; there are no ambient singletons.
type Bot struct {
	API     *tgbotapi.BotAPI
	Updates tgbotapi.UpdatesChannel

	BotLink         string
	DefaultLanguage string
	DailyFreeLimit  int

	adminIDs map[int64]struct{}
}

func NewBot(api *tgbotapi.BotAPI, botLink, defaultLanguage string, dailyFreeLimit int, adminIDs []int64) *Bot {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}

	return &Bot{
		API:             api,
		BotLink:         botLink,
		DefaultLanguage: defaultLanguage,
		DailyFreeLimit:  dailyFreeLimit,
		adminIDs:        admins,
	}
}

func (b *Bot) CheckAdmin(userID int64) bool {
	_, exist := b.adminIDs[userID]
	return exist
}

func (b *Bot) AdminIDs() []int64 {
	ids := make([]int64, 0, len(b.adminIDs))
	for id := range b.adminIDs {
		ids = append(ids, id)
	}
	return ids
}
