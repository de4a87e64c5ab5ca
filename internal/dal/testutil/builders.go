package testutil

import (
	"time"

	"github.com/Roma7-7-7/node-notifier/internal/dal"
)

// SubscriptionBuilder provides fluent API for building test subscriptions
type SubscriptionBuilder struct {
	sub dal.Subscription
}

// NewSubscription creates a builder for chatID with a 10 minute interval
func NewSubscription(chatID int64) *SubscriptionBuilder {
	now := time.Now()
	return &SubscriptionBuilder{
		sub: dal.Subscription{
			ChatID:          chatID,
			IntervalMinutes: 10,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}

func (b *SubscriptionBuilder) WithInterval(minutes int) *SubscriptionBuilder {
	b.sub.IntervalMinutes = minutes
	return b
}

func (b *SubscriptionBuilder) WithCreatedAt(t time.Time) *SubscriptionBuilder {
	b.sub.CreatedAt = t
	return b
}

func (b *SubscriptionBuilder) Build() dal.Subscription {
	return b.sub
}
