package replica

import (
	"sync"
	"sync/atomic"
)

// subscription is the feed handle shared by the backends
type subscription struct {
	once     sync.Once
	stopping atomic.Bool
	stop     func() error
	err      error
}

func newSubscription(stop func() error) *subscription {
	return &subscription{stop: stop}
}

// Unsubscribe stops the feed
func (s *subscription) Unsubscribe() error {
	s.once.Do(func() {
		s.stopping.Store(true)
		s.err = s.stop()
	})
	return s.err
}

// ended reports the end of the feed to OnClose unless it was requested
func (s *subscription) ended(onClose func()) {
	if s.stopping.Load() || onClose == nil {
		return
	}
	onClose()
}
