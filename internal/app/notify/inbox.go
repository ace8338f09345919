// Package notify holds per-session notification inboxes. Command failures
// that should not disrupt the board (a rejected card or column) are posted
// here and drained by the viewer on its next poll.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/retro-board/internal/ports"
)

// DefaultCapacity is used when an Inbox is created with a non-positive
// capacity.
const DefaultCapacity = 32

var _ ports.MessageSink = (*Inbox)(nil)

// Inbox is a bounded FIFO of messages. When full, the oldest message is
// discarded to make room. Safe for concurrent use.
type Inbox struct {
	mu       sync.Mutex
	capacity int
	items    []ports.Message
	dropped  int
	now      func() time.Time
}

// NewInbox creates an Inbox holding at most capacity messages.
func NewInbox(capacity int) *Inbox {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Inbox{
		capacity: capacity,
		items:    make([]ports.Message, 0, capacity),
		now:      time.Now,
	}
}

// AddMessage appends text. Empty text is ignored.
func (b *Inbox) AddMessage(_ context.Context, text string) {
	if text == "" {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.items) == b.capacity {
		copy(b.items, b.items[1:])
		b.items = b.items[:len(b.items)-1]
		b.dropped++
	}
	b.items = append(b.items, ports.Message{Text: text, CreatedAt: b.now()})
}

// Drain returns the queued messages oldest first and empties the inbox.
func (b *Inbox) Drain() []ports.Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]ports.Message, len(b.items))
	copy(out, b.items)
	clear(b.items)
	b.items = b.items[:0]
	return out
}

// Len returns the number of queued messages.
func (b *Inbox) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Dropped returns how many messages were discarded because the inbox was
// full.
func (b *Inbox) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}
