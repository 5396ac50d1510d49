package model

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Situation carries everything a handler needs for one inbound event.
type Situation struct {
	Message       *tgbotapi.Message
	CallbackQuery *tgbotapi.CallbackQuery

	User         *User
	FirstContact bool

	Command string
	Step    string
	Payload map[string]string
}

type Handler func(s *Situation) error

type GlobalHandlers interface {
	GetHandler(command string) Handler
}
