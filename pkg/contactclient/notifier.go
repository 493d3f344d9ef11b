package contactclient

import (
	"sync"
	"time"
)

// DefaultDismissAfter is how long a notification stays visible.
const DefaultDismissAfter = 5 * time.Second

// Kind selects a notification's icon and color.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Icon returns the glyph shown next to the message.
func (k Kind) Icon() string {
	switch k {
	case KindSuccess:
		return "✓"
	case KindError:
		return "⚠"
	default:
		return "ℹ"
	}
}

// Notification is one visible message.
type Notification struct {
	ID      uint64
	Kind    Kind
	Message string
	ShownAt time.Time
}

// Notifier shows at most one notification at a time. A new one replaces the
// current one; each is dismissed after a fixed delay or by Close.
type Notifier struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	onChange func(*Notification)

	seq     uint64
	current *Notification
	timer   *time.Timer
}

// NotifierOption configures a Notifier.
type NotifierOption func(*Notifier)

// WithDismissAfter overrides DefaultDismissAfter.
func WithDismissAfter(d time.Duration) NotifierOption {
	return func(n *Notifier) {
		if d > 0 {
			n.ttl = d
		}
	}
}

// WithOnChange registers fn to be called with the visible notification after
// every change, or nil when it is dismissed. fn runs outside the notifier's
// lock and may be called from the dismiss timer goroutine.
func WithOnChange(fn func(*Notification)) NotifierOption {
	return func(n *Notifier) { n.onChange = fn }
}

func NewNotifier(opts ...NotifierOption) *Notifier {
	n := &Notifier{ttl: DefaultDismissAfter, now: time.Now}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Show replaces the current notification and schedules its dismissal.
func (n *Notifier) Show(kind Kind, message string) Notification {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.seq++
	id := n.seq
	shown := Notification{ID: id, Kind: kind, Message: message, ShownAt: n.now()}
	n.current = &shown
	n.timer = time.AfterFunc(n.ttl, func() { n.dismiss(id) })
	n.mu.Unlock()

	n.notify(&shown)
	return shown
}

// Close dismisses the current notification, if any.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.current == nil {
		n.mu.Unlock()
		return
	}
	id := n.current.ID
	n.mu.Unlock()

	n.dismiss(id)
}

// Current returns the visible notification.
func (n *Notifier) Current() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Notification{}, false
	}
	return *n.current, true
}

// dismiss removes notification id if it is still the visible one.
func (n *Notifier) dismiss(id uint64) {
	n.mu.Lock()
	if n.current == nil || n.current.ID != id {
		n.mu.Unlock()
		return
	}
	n.current = nil
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.mu.Unlock()

	n.notify(nil)
}

func (n *Notifier) notify(current *Notification) {
	if n.onChange != nil {
		n.onChange(current)
	}
}
