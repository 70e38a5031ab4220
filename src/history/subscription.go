package history

const eventBufferSize = 16

// Subscription delivers the current value after every effective transition of
// the store it was created from. Sends never block: when a subscriber does not
// drain its channel in time, events are dropped.
type Subscription[T any] struct {
	Changed <-chan T
	Done    <-chan struct{}

	changedCh chan T
	doneCh    chan struct{}
}

func newSubscription[T any]() *Subscription[T] {
	sub := &Subscription[T]{
		changedCh: make(chan T, eventBufferSize),
		doneCh:    make(chan struct{}),
	}
	sub.Changed = sub.changedCh
	sub.Done = sub.doneCh
	return sub
}

func (sub *Subscription[T]) send(value T) {
	select {
	case sub.changedCh <- value:
	default:
		// Drop if buffer full
	}
}

// Subscribe registers a new subscriber with the store.
func (s *Store[T]) Subscribe() *Subscription[T] {
	sub := newSubscription[T]()
	s.mu.Lock()
	s.subscribers[sub] = struct{}{}
	s.mu.Unlock()
	return sub
}

// Unsubscribe removes a subscriber and closes its Done channel. Unsubscribing
// a subscription twice does nothing the second time.
func (s *Store[T]) Unsubscribe(sub *Subscription[T]) {
	s.mu.Lock()
	_, subscribed := s.subscribers[sub]
	if subscribed {
		delete(s.subscribers, sub)
	}
	s.mu.Unlock()
	if subscribed {
		close(sub.doneCh)
	}
}

func (s *Store[T]) notify(value T) {
	s.mu.Lock()
	subs := make([]*Subscription[T], 0, len(s.subscribers))
	for sub := range s.subscribers {
		subs = append(subs, sub)
	}
	s.mu.Unlock()
	for _, sub := range subs {
		sub.send(value)
	}
}
