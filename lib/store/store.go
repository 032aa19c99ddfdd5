// Package store holds the pieces shared by the client state stores.
package store

import (
	"sync"

	"hours-dashboard/lib/backend"

	log "github.com/sirupsen/logrus"
)

// Listeners is a set of subscriber callbacks. The zero value is ready to use.
type Listeners[T any] struct {
	mu   sync.Mutex
	next int
	fns  map[int]func(T)

	delivered  uint64
	pending    *versioned[T]
	delivering bool
}

type versioned[T any] struct {
	version uint64
	value   T
}

// Add registers fn and returns the func that removes it again.
func (l *Listeners[T]) Add(fn func(T)) (remove func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fns == nil {
		l.fns = map[int]func(T){}
	}
	id := l.next
	l.next++
	l.fns[id] = fn
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.fns, id)
	}
}

// Notify calls every listener with v in registration order. Snapshots not newer than
// the last delivered version are dropped. While one caller is delivering, later
// snapshots wait and only the newest of them is delivered next, so listeners never see
// versions go backwards. Listeners run without the set's lock held, so they may
// unsubscribe themselves or trigger another Notify.
func (l *Listeners[T]) Notify(version uint64, v T) {
	l.mu.Lock()
	if version <= l.delivered || (l.pending != nil && version <= l.pending.version) {
		l.mu.Unlock()
		return
	}
	l.pending = &versioned[T]{version: version, value: v}
	if l.delivering {
		l.mu.Unlock()
		return
	}
	l.delivering = true
	l.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			l.mu.Lock()
			l.delivering = false
			l.mu.Unlock()
			panic(r)
		}
	}()
	for {
		l.mu.Lock()
		next := l.pending
		if next == nil {
			l.delivering = false
			l.mu.Unlock()
			return
		}
		l.pending = nil
		l.delivered = next.version
		fns := l.ordered()
		l.mu.Unlock()
		for _, fn := range fns {
			fn(next.value)
		}
	}
}

// ordered returns the listeners in registration order. Callers hold l.mu.
func (l *Listeners[T]) ordered() []func(T) {
	fns := make([]func(T), 0, len(l.fns))
	for id := 0; id < l.next; id++ {
		if fn, ok := l.fns[id]; ok {
			fns = append(fns, fn)
		}
	}
	return fns
}

func (l *Listeners[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.fns)
}

func (l *Listeners[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fns = nil
}

// OpError is a failed store operation. Message is what the user gets to see,
// Err the cause reachable through errors.Is / errors.As.
type OpError struct {
	Op      string
	Message string
	Err     error
}

func (e *OpError) Error() string {
	return e.Op + ": " + e.Message
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func (e *OpError) Cause() error {
	return e.Err
}

// Fail logs err and wraps it with the message the store keeps in its error field.
// The server's own message wins over fallback.
func Fail(op, fallback string, err error) *OpError {
	log.WithField("op", op).WithError(err).Error("store operation failed")
	return &OpError{Op: op, Message: backend.Message(err, fallback), Err: err}
}
