package history

import (
	"fmt"
	"sync"
)

const DEFAULT_MAX_STACK_SIZE = 10

type InvalidStackSize struct {
	Size int
}

func (e InvalidStackSize) Error() string {
	return fmt.Sprintf("Invalid max stack size %d, must be positive", e.Size)
}

// Store keeps a current value of type T together with a bounded stack of past
// values and a stack of undone values. The past stack always contains at least
// one entry; its oldest entry is evicted when a new value would push it past
// maxStackSize.
type Store[T any] struct {
	mu      sync.Mutex
	initial T
	current T
	// Oldest value first. Seeded with the initial value, never empty.
	past []T
	// Most recently undone value first. Invalidated by every Set.
	redo []T

	maxStackSize int
	onUndo       func()
	onRedo       func()

	subscribers map[*Subscription[T]]struct{}
}

type Option[T any] func(*Store[T])

// WithMaxStackSize sets the maximum number of past values the store retains.
func WithMaxStackSize[T any](size int) Option[T] {
	return func(s *Store[T]) {
		s.maxStackSize = size
	}
}

// WithOnUndo sets an observer which is called after every effective undo.
func WithOnUndo[T any](observer func()) Option[T] {
	return func(s *Store[T]) {
		s.onUndo = observer
	}
}

// WithOnRedo sets an observer which is called after every effective redo.
func WithOnRedo[T any](observer func()) Option[T] {
	return func(s *Store[T]) {
		s.onRedo = observer
	}
}

func New[T any](initial T, opts ...Option[T]) (*Store[T], error) {
	s := &Store[T]{
		initial:      initial,
		current:      initial,
		past:         []T{initial},
		maxStackSize: DEFAULT_MAX_STACK_SIZE,
		subscribers:  map[*Subscription[T]]struct{}{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.maxStackSize < 1 {
		return nil, InvalidStackSize{s.maxStackSize}
	}
	return s, nil
}

// Value returns the current value.
func (s *Store[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set makes newValue the current value. The previous current value is pushed
// onto the past stack and the redo stack is discarded, since its values belong
// to a timeline that no longer exists.
func (s *Store[T]) Set(newValue T) {
	s.mu.Lock()
	s.pushPast(s.current)
	s.current = newValue
	s.redo = nil
	s.mu.Unlock()

	s.notify(newValue)
}

// Undo replaces the current value with the most recent past value. The seeded
// floor entry is never popped: calling Undo with nothing left to undo does
// nothing, and no observer fires.
func (s *Store[T]) Undo() {
	s.mu.Lock()
	if len(s.past) < 2 {
		s.mu.Unlock()
		return
	}
	prior := s.past[len(s.past)-1]
	s.past = s.past[:len(s.past)-1]
	s.redo = append([]T{s.current}, s.redo...)
	s.current = prior
	onUndo := s.onUndo
	s.mu.Unlock()

	if onUndo != nil {
		onUndo()
	}
	s.notify(prior)
}

// Redo replaces the current value with the most recently undone value. Does
// nothing when the redo stack is empty.
func (s *Store[T]) Redo() {
	s.mu.Lock()
	if len(s.redo) == 0 {
		s.mu.Unlock()
		return
	}
	next := s.redo[0]
	s.redo = s.redo[1:]
	s.pushPast(s.current)
	s.current = next
	onRedo := s.onRedo
	s.mu.Unlock()

	if onRedo != nil {
		onRedo()
	}
	s.notify(next)
}

// Reset restores the store to its state right after construction: the current
// value becomes the initial value again and all history is discarded.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	s.current = s.initial
	s.past = []T{s.initial}
	s.redo = nil
	initial := s.initial
	s.mu.Unlock()

	s.notify(initial)
}

// Clear discards all history while leaving the current value untouched.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	s.past = []T{s.current}
	s.redo = nil
	current := s.current
	s.mu.Unlock()

	s.notify(current)
}

// CanUndo reports whether a call to Undo would change the current value.
func (s *Store[T]) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.past) >= 2
}

// CanRedo reports whether a call to Redo would change the current value.
func (s *Store[T]) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.redo) > 0
}

// UndoCount returns the number of undo steps available.
func (s *Store[T]) UndoCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.past) - 1
}

// RedoCount returns the number of redo steps available.
func (s *Store[T]) RedoCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.redo)
}

func (s *Store[T]) MaxStackSize() int {
	return s.maxStackSize
}

// PastValues returns a copy of the past stack, oldest value first.
func (s *Store[T]) PastValues() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	values := make([]T, len(s.past))
	copy(values, s.past)
	return values
}

// RedoValues returns a copy of the redo stack, most recently undone value first.
func (s *Store[T]) RedoValues() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	values := make([]T, len(s.redo))
	copy(values, s.redo)
	return values
}

// pushPast must be called with the lock held. Pushing and evicting are paired,
// so at most one entry is dropped per call.
func (s *Store[T]) pushPast(value T) {
	s.past = append(s.past, value)
	if len(s.past) > s.maxStackSize {
		s.past = s.past[1:]
	}
}
