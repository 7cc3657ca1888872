package service

import (
	"sync"
	"time"
)

// ReplyScheduler owns the deferred auto-reply timers, at most one pending
// per conversation. A re-send while a reply is pending resets the timer
// instead of stacking a second reply. Timers are keyed by conversation so
// they can be cancelled if the thread goes away.
type ReplyScheduler struct {
	mu      sync.Mutex
	delay   time.Duration
	deliver func(conversationID string)
	timers  map[string]*time.Timer
	stopped bool
}

func NewReplyScheduler(delay time.Duration, deliver func(conversationID string)) *ReplyScheduler {
	return &ReplyScheduler{
		delay:   delay,
		deliver: deliver,
		timers:  make(map[string]*time.Timer),
	}
}

// Schedule arms the reply timer for a conversation, replacing any pending
// one.
func (r *ReplyScheduler) Schedule(conversationID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	if t, ok := r.timers[conversationID]; ok {
		t.Stop()
	}
	r.timers[conversationID] = time.AfterFunc(r.delay, func() {
		r.mu.Lock()
		delete(r.timers, conversationID)
		stopped := r.stopped
		r.mu.Unlock()
		if stopped {
			return
		}
		r.deliver(conversationID)
	})
}

// Cancel drops the pending reply for a conversation, if any.
func (r *ReplyScheduler) Cancel(conversationID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.timers[conversationID]; ok {
		t.Stop()
		delete(r.timers, conversationID)
	}
}

// Stop cancels every pending reply and rejects new ones.
func (r *ReplyScheduler) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
	for id, t := range r.timers {
		t.Stop()
		delete(r.timers, id)
	}
}
