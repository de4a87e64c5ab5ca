package dal

import (
	"time"
)

func (s *BoltDBTestSuite) TestBoltDB_CountSubscriptions() {
	count, err := s.store.CountSubscriptions()
	s.Require().NoError(err)
	s.Require().Equal(0, count)

	s.Require().NoError(s.store.PutSubscription(NewSubscription(1).Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription(2).Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription(1).WithInterval(5).Build())) // same chat ID

	count, err = s.store.CountSubscriptions()
	s.Require().NoError(err)
	s.Require().Equal(2, count)
}

func (s *BoltDBTestSuite) TestBoltDB_GetSubscription() {
	now := time.Date(2025, time.November, 11, 18, 19, 20, 0, time.UTC)
	s.clock.Set(now)
	s.Require().NoError(s.store.PutSubscription(NewSubscription(1).WithInterval(3).Build()))

	actual, ok, err := s.store.GetSubscription(1)
	s.Require().NoError(err)
	if s.True(ok) {
		s.Equal(Subscription{
			ChatID:          1,
			IntervalMinutes: 3,
			CreatedAt:       now,
			UpdatedAt:       now,
		}, actual)
	}

	_, ok, err = s.store.GetSubscription(2)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *BoltDBTestSuite) TestBoltDB_PutSubscription_KeepsCreatedAt() {
	createdAt := time.Date(2025, time.November, 9, 18, 19, 20, 0, time.UTC)
	updatedAt := createdAt.Add(48 * time.Hour)

	s.clock.Set(createdAt)
	s.Require().NoError(s.store.PutSubscription(NewSubscription(-100123).WithInterval(1).Build()))

	s.clock.Set(updatedAt)
	s.Require().NoError(s.store.PutSubscription(NewSubscription(-100123).WithInterval(15).Build()))

	actual, ok, err := s.store.GetSubscription(-100123)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(Subscription{
		ChatID:          -100123,
		IntervalMinutes: 15,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}, actual)
}

func (s *BoltDBTestSuite) TestBoltDB_GetAllSubscriptions() {
	now := time.Date(2025, time.November, 11, 18, 19, 20, 0, time.UTC)
	s.clock.Set(now)

	s.Require().NoError(s.store.PutSubscription(NewSubscription(1).WithInterval(1).Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription(2).WithInterval(2).Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription(3).WithInterval(3).Build()))

	actual, err := s.store.GetAllSubscriptions()
	s.Require().NoError(err)
	s.Equal([]Subscription{
		{ChatID: 1, IntervalMinutes: 1, CreatedAt: now, UpdatedAt: now},
		{ChatID: 2, IntervalMinutes: 2, CreatedAt: now, UpdatedAt: now},
		{ChatID: 3, IntervalMinutes: 3, CreatedAt: now, UpdatedAt: now},
	}, actual)
}

func (s *BoltDBTestSuite) TestBoltDB_GetAllSubscriptions_Empty() {
	actual, err := s.store.GetAllSubscriptions()
	s.Require().NoError(err)
	s.Empty(actual)
}

func (s *BoltDBTestSuite) TestBoltDB_PurgeSubscription() {
	s.Require().NoError(s.store.PutSubscription(NewSubscription(1).Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription(2).Build()))

	s.Require().NoError(s.store.PurgeSubscription(1))
	s.Require().NoError(s.store.PurgeSubscription(42)) // missing key is not an error

	_, ok, err := s.store.GetSubscription(1)
	s.Require().NoError(err)
	s.False(ok)

	count, err := s.store.CountSubscriptions()
	s.Require().NoError(err)
	s.Equal(1, count)
}
