package tfa

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/adminconsole/internal/logging"
)

var ErrDelivery = errors.New("could not deliver the one-time code, try again later")

// Sender delivers a code to an admin's Telegram chat.
type Sender interface {
	Send(ctx context.Context, chatID string, code string) error
}

// LogSender writes codes to the log instead of a chat. It is meant for local
// runs where no bot is configured.
type LogSender struct {
	logger logging.Logger
}

func NewLogSender(l logging.Logger) *LogSender {
	return &LogSender{logger: l.With("component", "tfa_sender")}
}

func (s *LogSender) Send(ctx context.Context, chatID string, code string) error {
	if chatID == "" {
		return ErrDelivery
	}
	s.logger.Info(ctx, "one-time code issued", "chat_id", chatID, "code", code)
	return nil
}
