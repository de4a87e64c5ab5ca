package telegram_test

import (
	"fmt"

	tb "gopkg.in/telebot.v3"
)

const chatID = int64(123)

// tbContext implements the parts of tb.Context the handlers touch.
type tbContext struct {
	tb.Context

	chat    *tb.Chat
	message *tb.Message
	sendErr error

	sent []string
}

func stubContext(payload string) *tbContext {
	return &tbContext{
		chat:    &tb.Chat{ID: chatID},
		message: &tb.Message{Payload: payload},
	}
}

func (c *tbContext) Chat() *tb.Chat {
	return c.chat
}

func (c *tbContext) Message() *tb.Message {
	return c.message
}

func (c *tbContext) Text() string {
	if c.message == nil {
		return ""
	}
	return c.message.Text
}

func (c *tbContext) Send(what interface{}, _ ...interface{}) error {
	c.sent = append(c.sent, fmt.Sprint(what))
	return c.sendErr
}
