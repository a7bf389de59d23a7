package lokat

import "sync"

// signal is a minimal observable cell: subscribers are notified synchronously,
// in subscription order, every time a value is emitted. It carries no current
// value; state lives in the Switcher that owns it.
type signal[T any] struct {
	mu   sync.Mutex
	subs []subscriber[T]
	next int
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// subscribe registers fn and returns a cancel function that removes it.
// Cancel is idempotent.
func (s *signal[T]) subscribe(fn func(T)) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// emit delivers v to every subscriber. Callbacks run outside the lock, so a
// subscriber may subscribe or cancel from within its callback.
func (s *signal[T]) emit(v T) {
	s.mu.Lock()
	snapshot := make([]subscriber[T], len(s.subs))
	copy(snapshot, s.subs)
	s.mu.Unlock()

	for _, sub := range snapshot {
		sub.fn(v)
	}
}
