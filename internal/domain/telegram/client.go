// Package telegram defines the messaging port the application talks to.
package telegram

import "gopkg.in/telebot.v3"

// Client sends messages through a Telegram bot on behalf of the
// application layer.
type Client interface {
	SendMessage(recipientChatID int64, text string, options *telebot.SendOptions) error
}
