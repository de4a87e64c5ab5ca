package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const subscriptionsBucket = "subscriptions"

// Subscription is the persisted auto send state of a single chat.
type Subscription struct {
	ChatID          int64     `json:"chat_id"`
	IntervalMinutes int       `json:"interval_minutes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (s *BoltDB) CountSubscriptions() (int, error) {
	var res int
	err := s.db.View(func(tx *bbolt.Tx) error {
		res = tx.Bucket([]byte(subscriptionsBucket)).Stats().KeyN
		return nil
	})
	return res, err
}

func (s *BoltDB) GetSubscription(chatID int64) (Subscription, bool, error) {
	var res Subscription
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(subscriptionsBucket)).Get(i64tob(chatID))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

func (s *BoltDB) GetAllSubscriptions() ([]Subscription, error) {
	var res []Subscription

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(subscriptionsBucket)).ForEach(func(_, v []byte) error {
			var sub Subscription
			if err := json.Unmarshal(v, &sub); err != nil {
				return fmt.Errorf("unmarshal subscription: %w", err)
			}
			res = append(res, sub)
			return nil
		})
	})

	return res, err
}

// PutSubscription stores sub keeping CreatedAt of an existing record. UpdatedAt is always refreshed.
func (s *BoltDB) PutSubscription(sub Subscription) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(subscriptionsBucket))
		id := i64tob(sub.ChatID)
		now := s.clock.Now()

		sub.CreatedAt = now
		if existing := b.Get(id); existing != nil {
			var prev Subscription
			if err := json.Unmarshal(existing, &prev); err != nil {
				return fmt.Errorf("unmarshal existing subscription for chatID=%d: %w", sub.ChatID, err)
			}
			sub.CreatedAt = prev.CreatedAt
		}
		sub.UpdatedAt = now

		data, err := json.Marshal(&sub)
		if err != nil {
			return fmt.Errorf("marshal subscription for chatID=%d: %w", sub.ChatID, err)
		}
		if err := b.Put(id, data); err != nil {
			return fmt.Errorf("put subscription for chatID=%d: %w", sub.ChatID, err)
		}

		return nil
	})
}

func (s *BoltDB) PurgeSubscription(chatID int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket([]byte(subscriptionsBucket)).Delete(i64tob(chatID)); err != nil {
			return fmt.Errorf("delete subscription for chatID=%d: %w", chatID, err)
		}
		return nil
	})
}
