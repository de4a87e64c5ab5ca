package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roma7-7-7/node-notifier/pkg/clock"
)

func TestClock_Now(t *testing.T) {
	c := clock.New()
	require.NotNil(t, c)

	startAt := time.Now()
	assert.False(t, c.Now().Before(startAt))

	loc := time.FixedZone("UTC+5", 5*60*60)
	c = clock.NewWithLocation(loc)

	startAt = time.Now()
	now := c.Now()
	assert.False(t, now.Before(startAt))
	assert.Equal(t, loc, now.Location())
}

func TestMock(t *testing.T) {
	start := time.Date(2025, time.November, 20, 17, 7, 0, 0, time.UTC)
	m := clock.NewMock(start)

	assert.Equal(t, start, m.Now())
	assert.Equal(t, start, m.Now())

	assert.Equal(t, start.Add(time.Minute), m.Add(time.Minute))
	assert.Equal(t, start.Add(time.Minute), m.Now())

	next := time.Date(2025, time.November, 21, 0, 0, 0, 0, time.UTC)
	m.Set(next)
	assert.Equal(t, next, m.Now())
}
