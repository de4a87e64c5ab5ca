package telegram

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

type MessageSender interface {
	SendMessage(ctx context.Context, chatID, msg string) error
}

// ThrottledSender spaces outgoing messages so that timer bursts stay within Telegram limits.
type ThrottledSender struct {
	next    MessageSender
	limiter *rate.Limiter
}

// NewThrottledSender allows perSecond messages per second with a burst of the same size.
func NewThrottledSender(next MessageSender, perSecond int) *ThrottledSender {
	if perSecond <= 0 {
		perSecond = 1
	}
	return &ThrottledSender{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), perSecond),
	}
}

func (s *ThrottledSender) SendMessage(ctx context.Context, chatID, msg string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wait for send slot: %w", err)
	}
	return s.next.SendMessage(ctx, chatID, msg)
}
