// Package notify is the fire-and-forget user notification channel (toast-style).
package notify

import (
	"context"
	"sync"
	"time"

	pkgLog "pr-notes/pkg/log"
)

// Kind classifies a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notifier delivers a message to the user. Implementations must not block on I/O.
type Notifier interface {
	Notify(ctx context.Context, kind Kind, message string)
}

// Func adapts a function to Notifier.
type Func func(ctx context.Context, kind Kind, message string)

func (f Func) Notify(ctx context.Context, kind Kind, message string) { f(ctx, kind, message) }

// Nop discards every notification.
var Nop Notifier = Func(func(context.Context, Kind, string) {})

// Message is one queued notification.
type Message struct {
	Kind    Kind      `json:"kind"`
	Text    string    `json:"message"`
	Created time.Time `json:"created_at"`
}

// Queue buffers notifications until a UI drains them. Oldest entries are dropped past capacity.
type Queue struct {
	mu       sync.Mutex
	items    []Message
	capacity int
	now      func() time.Time
}

// NewQueue creates a Queue holding at most capacity messages.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = 50
	}
	return &Queue{capacity: capacity, now: time.Now}
}

func (q *Queue) Notify(_ context.Context, kind Kind, message string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = append(q.items, Message{Kind: kind, Text: message, Created: q.now()})
	if over := len(q.items) - q.capacity; over > 0 {
		q.items = append([]Message(nil), q.items[over:]...)
	}
}

// Drain returns and clears every queued message.
func (q *Queue) Drain() []Message {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.items
	q.items = nil
	return out
}

// Logging writes notifications to the logger. Errors log at warn level.
type Logging struct {
	l pkgLog.Logger
}

// NewLogging creates a Logging notifier.
func NewLogging(l pkgLog.Logger) *Logging {
	return &Logging{l: l}
}

func (n *Logging) Notify(ctx context.Context, kind Kind, message string) {
	if kind == KindError {
		n.l.Warnf(ctx, "notify[%s]: %s", kind, message)
		return
	}
	n.l.Infof(ctx, "notify[%s]: %s", kind, message)
}

// Multi fans a notification out to every notifier in order.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, kind Kind, message string) {
	for _, n := range m {
		if n != nil {
			n.Notify(ctx, kind, message)
		}
	}
}
