// internal/writer/telegram/alert.go
package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	"github.com/tamzrod/loadpanel/internal/panel"
)

// Sender is the part of the bot API the alert uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Alert posts to a chat when the memory warning appears and when it clears.
// It implements panel.Sink. Only edges are sent, never the steady state.
type Alert struct {
	bot    Sender
	chatID int64
	name   string

	warned bool
}

// New logs in to the bot API and returns an alert for chatID.
func New(token string, chatID int64, panelName string) (*Alert, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, errors.Wrap(err, "telegram: login")
	}
	return NewWithSender(bot, chatID, panelName), nil
}

// NewWithSender returns an alert that sends through s.
func NewWithSender(s Sender, chatID int64, panelName string) *Alert {
	return &Alert{bot: s, chatID: chatID, name: panelName}
}

// Write checks the last applied poll for a warning edge.
// A failed send is retried on the next view.
func (a *Alert) Write(v panel.View) error {
	if v.Frame == nil || v.Frame.Warning == a.warned {
		return nil
	}

	var text string
	if v.Frame.Warning {
		text = fmt.Sprintf("⚠️ %s: memory at %s with load tests running", a.name, v.Frame.Memory.Text)
	} else {
		text = fmt.Sprintf("✅ %s: memory warning cleared (%s)", a.name, v.Frame.Memory.Text)
	}

	if _, err := a.bot.Send(tgbotapi.NewMessage(a.chatID, text)); err != nil {
		return errors.Wrap(err, "telegram: send")
	}

	a.warned = v.Frame.Warning
	return nil
}
