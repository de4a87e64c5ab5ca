package dal

// SubscriptionBuilder provides fluent API for building test subscriptions
type SubscriptionBuilder struct {
	sub Subscription
}

func NewSubscription(chatID int64) *SubscriptionBuilder {
	return &SubscriptionBuilder{
		sub: Subscription{
			ChatID:          chatID,
			IntervalMinutes: 10,
		},
	}
}

func (b *SubscriptionBuilder) WithInterval(minutes int) *SubscriptionBuilder {
	b.sub.IntervalMinutes = minutes
	return b
}

func (b *SubscriptionBuilder) Build() Subscription {
	return b.sub
}
