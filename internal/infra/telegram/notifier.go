// internal/infra/telegram/notifier.go
package telegram

import (
	"github.com/sirupsen/logrus"

	domainTelegram "github.com/MikhailBogachev/homework-bot/internal/domain/telegram"
)

// NotifyError is what the poll loop sees when a send fails. Its text stays
// constant across transport causes; the repeated-error suppression in the
// loop keys on error text. The cause itself is logged where it happens.
type NotifyError struct{}

func (e *NotifyError) Error() string {
	return "failed to send Telegram message"
}

// Notifier delivers review status messages to the single configured chat.
type Notifier struct {
	client domainTelegram.Client
	chatID int64
	logger *logrus.Entry
}

func NewNotifier(client domainTelegram.Client, chatID int64, logger *logrus.Entry) *Notifier {
	return &Notifier{
		client: client,
		chatID: chatID,
		logger: logger,
	}
}

// Send delivers text to the subscriber chat.
func (n *Notifier) Send(text string) error {
	if err := n.client.SendMessage(n.chatID, text, nil); err != nil {
		n.logger.WithError(err).WithField("chat_id", n.chatID).Error("Failed to send Telegram message")
		return &NotifyError{}
	}

	n.logger.WithField("chat_id", n.chatID).Debugf("Bot sent message: %s", text)
	return nil
}
