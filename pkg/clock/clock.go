package clock

import (
	"sync"
	"time"
)

type Clock struct {
	loc *time.Location
}

func New() *Clock {
	return &Clock{}
}

func NewWithLocation(loc *time.Location) *Clock {
	return &Clock{loc: loc}
}

func (c *Clock) Now() time.Time {
	now := time.Now()
	if c.loc != nil {
		now = now.In(c.loc)
	}
	return now
}

// Mock is a manually driven clock safe for use from several goroutines.
type Mock struct {
	mx  sync.Mutex
	now time.Time
}

func NewMock(value time.Time) *Mock {
	return &Mock{now: value}
}

func (m *Mock) Now() time.Time {
	m.mx.Lock()
	defer m.mx.Unlock()
	return m.now
}

func (m *Mock) Set(t time.Time) {
	m.mx.Lock()
	defer m.mx.Unlock()
	m.now = t
}

func (m *Mock) Add(d time.Duration) time.Time {
	m.mx.Lock()
	defer m.mx.Unlock()
	m.now = m.now.Add(d)
	return m.now
}
