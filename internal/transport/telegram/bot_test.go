package telegram

import (
	"context"
	"errors"
	"testing"

	"github.com/sandevgo/footix/internal/config"
	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

func TestUtterance(t *testing.T) {
	u := utterance(-100123, &tele.User{ID: 42}, "how are you?")
	assert.Equal(t, "-100123", u.ChannelID)
	assert.Equal(t, "42", u.SenderID)
	assert.Equal(t, "how are you?", u.Text)

	anon := utterance(7, nil, "hi")
	assert.Empty(t, anon.SenderID)
}

func TestAllowed(t *testing.T) {
	open := &Bot{cfg: &config.TelegramConfig{}}
	assert.True(t, open.allowed(1))

	closed := &Bot{cfg: &config.TelegramConfig{AllowedChats: []int64{5, -100}}}
	assert.True(t, closed.allowed(-100))
	assert.False(t, closed.allowed(1))
}

func TestClassify(t *testing.T) {
	blocked := &tele.Error{Code: 403, Description: "Forbidden: bot was blocked by the user"}
	err := classify(blocked)
	assert.ErrorIs(t, err, blocked)

	var perm interface{ Unwrap() error }
	assert.ErrorAs(t, err, &perm)

	transient := errors.New("connection reset")
	assert.Same(t, transient, classify(transient))
}

func TestSender_InvalidChatID(t *testing.T) {
	s := newSender(nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	err := s.Send(ctx, "not-a-number", "hi")
	assert.ErrorContains(t, err, "invalid telegram chat id")
}
