package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Roma7-7-7/node-notifier/internal/dal"
)

// SubscriptionMatcher compares subscriptions ignoring the timestamps maintained by the store.
type SubscriptionMatcher struct {
	t    *testing.T
	want dal.Subscription
}

func NewSubscriptionMatcher(t *testing.T, want dal.Subscription) *SubscriptionMatcher {
	return &SubscriptionMatcher{
		t:    t,
		want: want,
	}
}

func (m SubscriptionMatcher) Matches(x interface{}) bool {
	actual, ok := x.(dal.Subscription)
	if !ok {
		m.t.Fatalf("SubscriptionMatcher.Matches: expected dal.Subscription, got %T", x)
		return false
	}

	m.want.CreatedAt = actual.CreatedAt
	m.want.UpdatedAt = actual.UpdatedAt
	return assert.Equal(m.t, m.want, actual)
}

func (m SubscriptionMatcher) String() string {
	return "SubscriptionMatcher.Matches"
}
