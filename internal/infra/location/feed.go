// Package location provides the push-fed location source used by navigation sessions.
package location

import (
	"sync"

	"wildnav/internal/domain/service"
	"wildnav/internal/errors"
)

// ErrFeedStopped is returned by Push once the feed has been stopped.
var ErrFeedStopped = errors.New("location feed is stopped")

// Feed is a LocationSource holding only the latest fix. Each subscriber gets its own
// goroutine and a one-slot mailbox; a newer fix replaces an undelivered older one.
type Feed struct {
	mu      sync.Mutex
	started bool
	stopped bool
	latest  service.LocationFix
	hasFix  bool
	subs    map[*subscription]struct{}
}

func NewFeed() *Feed {
	return &Feed{subs: make(map[*subscription]struct{})}
}

// Start enables delivery. Fixes pushed before Start are kept as the latest value.
func (f *Feed) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stopped || f.started {
		return
	}
	f.started = true
	if f.hasFix {
		for s := range f.subs {
			s.offer(f.latest)
		}
	}
}

// Stop cancels every subscription. A stopped feed cannot be restarted.
func (f *Feed) Stop() {
	f.mu.Lock()
	subs := f.subs
	f.subs = make(map[*subscription]struct{})
	f.stopped = true
	f.mu.Unlock()

	for s := range subs {
		s.close()
	}
}

// Push publishes fix as the latest value.
func (f *Feed) Push(fix service.LocationFix) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stopped {
		return ErrFeedStopped
	}
	f.latest = fix
	f.hasFix = true
	if !f.started {
		return nil
	}
	for s := range f.subs {
		s.offer(fix)
	}

	return nil
}

// Latest returns the most recent fix.
func (f *Feed) Latest() (service.LocationFix, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.latest, f.hasFix
}

// Subscribe registers fn. If the feed is running and has a fix, fn receives it first.
func (f *Feed) Subscribe(fn func(service.LocationFix)) service.Subscription {
	s := &subscription{
		feed:    f,
		fn:      fn,
		mailbox: make(chan service.LocationFix, 1),
		done:    make(chan struct{}),
	}

	f.mu.Lock()
	if f.stopped {
		f.mu.Unlock()
		s.close()

		return s
	}
	f.subs[s] = struct{}{}
	if f.started && f.hasFix {
		s.offer(f.latest)
	}
	f.mu.Unlock()

	go s.run()

	return s
}

func (f *Feed) remove(s *subscription) {
	f.mu.Lock()
	delete(f.subs, s)
	f.mu.Unlock()
}

type subscription struct {
	feed    *Feed
	fn      func(service.LocationFix)
	mailbox chan service.LocationFix
	done    chan struct{}
	once    sync.Once
}

// offer replaces any undelivered fix with fix. Callers hold the feed mutex, which makes
// the drain and the send atomic with respect to other offers.
func (s *subscription) offer(fix service.LocationFix) {
	select {
	case <-s.mailbox:
	default:
	}
	s.mailbox <- fix
}

func (s *subscription) run() {
	for {
		select {
		case <-s.done:
			return
		case fix := <-s.mailbox:
			// A cancel racing with a pending fix wins.
			select {
			case <-s.done:
				return
			default:
			}
			s.fn(fix)
		}
	}
}

func (s *subscription) close() {
	s.once.Do(func() { close(s.done) })
}

// Cancel stops delivery to this subscriber. It is idempotent.
func (s *subscription) Cancel() {
	s.feed.remove(s)
	s.close()
}

// Factory creates one Feed per navigation session.
type Factory struct{}

func NewFactory() service.LocationSourceFactory {
	return Factory{}
}

func (Factory) NewSource() service.LocationSource {
	return NewFeed()
}
