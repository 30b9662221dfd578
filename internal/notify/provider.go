package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Provider is a notification scope: an ordered registry plus the expiry timers of its
// entries. Create one with NewProvider and tear it down with Close.
type Provider struct {
	mu     sync.Mutex
	items  []Notification
	timers map[string]*time.Timer
	closed bool

	displayer       Displayer
	defaultDuration time.Duration
	newID           func() string
	now             func() time.Time
}

// Option configures a Provider.
type Option func(*Provider)

// WithDisplayer sets the sink for display side effects.
func WithDisplayer(d Displayer) Option {
	return func(p *Provider) {
		if d != nil {
			p.displayer = d
		}
	}
}

// WithDefaultDuration overrides DefaultDuration for Add.
func WithDefaultDuration(d time.Duration) Option {
	return func(p *Provider) {
		p.defaultDuration = d
	}
}

func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		timers:          make(map[string]*time.Timer),
		displayer:       nopDisplayer{},
		defaultDuration: DefaultDuration,
		newID:           uuid.NewString,
		now:             time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Add appends a notification with the provider's default duration.
func (p *Provider) Add(message string, t Type) (Notification, error) {
	return p.AddWithDuration(message, t, p.defaultDuration)
}

// AddWithDuration appends a notification, displays it and, when d > 0, schedules its
// removal after d.
func (p *Provider) AddWithDuration(message string, t Type, d time.Duration) (Notification, error) {
	if !t.Valid() {
		return Notification{}, ErrInvalidType
	}

	n := Notification{
		ID:        p.newID(),
		Message:   message,
		Type:      t,
		Duration:  d,
		CreatedAt: p.now(),
	}

	if p.Closed() {
		return Notification{}, ErrProviderClosed
	}

	// Show runs before the entry is registered, so no Hide can precede it.
	p.displayer.Show(n)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.displayer.Hide(n, ReasonClosed)
		return Notification{}, ErrProviderClosed
	}
	p.items = append(p.items, n)
	if d > 0 {
		id := n.ID
		p.timers[id] = time.AfterFunc(d, func() { p.expire(id) })
	}
	p.mu.Unlock()

	return n, nil
}

// Remove dismisses the notification with the given id and cancels its timer.
// Unknown ids are ignored.
func (p *Provider) Remove(id string) {
	n, ok := p.take(id)
	if ok {
		p.displayer.Hide(n, ReasonDismissed)
	}
}

// List returns a snapshot of the registry in display order.
func (p *Provider) List() []Notification {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]Notification, len(p.items))
	copy(out, p.items)
	return out
}

// Closed reports whether Close has been called.
func (p *Provider) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// Close cancels every pending timer and empties the registry. Further Add calls fail
// with ErrProviderClosed. Close is idempotent.
func (p *Provider) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	for id, t := range p.timers {
		t.Stop()
		delete(p.timers, id)
	}
	removed := p.items
	p.items = nil
	p.mu.Unlock()

	for _, n := range removed {
		p.displayer.Hide(n, ReasonClosed)
	}
}

// expire runs on the timer goroutine. A timer that lost the race against Remove finds
// nothing to take.
func (p *Provider) expire(id string) {
	n, ok := p.take(id)
	if ok {
		p.displayer.Hide(n, ReasonExpired)
	}
}

func (p *Provider) take(id string) (Notification, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if t, ok := p.timers[id]; ok {
		t.Stop()
		delete(p.timers, id)
	}

	for i, n := range p.items {
		if n.ID == id {
			p.items = append(p.items[:i:i], p.items[i+1:]...)
			return n, true
		}
	}
	return Notification{}, false
}
