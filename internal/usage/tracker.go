// Package usage records which classes a render or scan pass referenced.
package usage

import (
	"errors"
	"sync"

	"github.com/elliotchance/orderedmap/v3"
	"github.com/google/uuid"
)

var (
	// ErrAlreadyCollecting is returned when a session is already open.
	ErrAlreadyCollecting = errors.New("usage: collection already in progress")
	// ErrSessionMismatch is returned when stopping a session that is not the
	// active one.
	ErrSessionMismatch = errors.New("usage: session is not active")
)

// MediaUsage lists the classes referenced under one media selector.
type MediaUsage struct {
	Selector string
	Classes  map[string]struct{}
}

// Snapshot is a point-in-time copy of collected usage. MediaQueries keeps
// the order in which selectors were first seen.
type Snapshot struct {
	UsedClasses  map[string]struct{}
	MediaQueries []MediaUsage
}

// Tracker collects usage for one session at a time. The zero value is not
// usable; call NewTracker.
type Tracker struct {
	mu      sync.Mutex
	active  *Session
	classes map[string]struct{}
	media   *orderedmap.OrderedMap[string, map[string]struct{}]
}

// NewTracker creates an idle tracker.
func NewTracker() *Tracker {
	return &Tracker{
		classes: make(map[string]struct{}),
		media:   orderedmap.NewOrderedMap[string, map[string]struct{}](),
	}
}

// Session is the handle of one collection window.
type Session struct {
	id      uuid.UUID
	tracker *Tracker
}

// ID identifies the session.
func (s *Session) ID() uuid.UUID { return s.id }

// TrackClass records name if the session is still active.
func (s *Session) TrackClass(name string) {
	t := s.tracker
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active == s {
		t.addClass(name)
	}
}

// TrackMediaQuery records name under selector if the session is still active.
func (s *Session) TrackMediaQuery(selector, name string) {
	t := s.tracker
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active == s {
		t.addMedia(selector, name)
	}
}

// Stop closes the session.
func (s *Session) Stop() error {
	return s.tracker.StopCollecting(s)
}

// StartCollecting opens a collection window.
func (t *Tracker) StartCollecting() (*Session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active != nil {
		return nil, ErrAlreadyCollecting
	}
	t.active = &Session{id: uuid.New(), tracker: t}
	return t.active, nil
}

// StopCollecting closes s. It fails for a stale or foreign session.
func (t *Tracker) StopCollecting(s *Session) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if s == nil || t.active != s {
		return ErrSessionMismatch
	}
	t.active = nil
	return nil
}

// Collecting reports whether a session is open.
func (t *Tracker) Collecting() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active != nil
}

// TrackClass records name into the open session. It does nothing when idle.
func (t *Tracker) TrackClass(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active != nil {
		t.addClass(name)
	}
}

// TrackMediaQuery records name under selector into the open session. It
// does nothing when idle.
func (t *Tracker) TrackMediaQuery(selector, name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active != nil {
		t.addMedia(selector, name)
	}
}

// Clear empties everything collected so far, whether or not a session is open.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.classes = make(map[string]struct{})
	t.media = orderedmap.NewOrderedMap[string, map[string]struct{}]()
}

// UsedClasses returns a copy of the collected class set.
func (t *Tracker) UsedClasses() map[string]struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	return copySet(t.classes)
}

// MediaQueries returns a copy of the collected media usage.
func (t *Tracker) MediaQueries() []MediaUsage {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mediaCopy()
}

// Snapshot returns a consistent copy of both collections.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{
		UsedClasses:  copySet(t.classes),
		MediaQueries: t.mediaCopy(),
	}
}

func (t *Tracker) addClass(name string) {
	if name != "" {
		t.classes[name] = struct{}{}
	}
}

func (t *Tracker) addMedia(selector, name string) {
	if selector == "" || name == "" {
		return
	}
	set, ok := t.media.Get(selector)
	if !ok {
		set = make(map[string]struct{})
		t.media.Set(selector, set)
	}
	set[name] = struct{}{}
}

func (t *Tracker) mediaCopy() []MediaUsage {
	out := make([]MediaUsage, 0, t.media.Len())
	for el := t.media.Front(); el != nil; el = el.Next() {
		out = append(out, MediaUsage{Selector: el.Key, Classes: copySet(el.Value)})
	}
	return out
}

func copySet(in map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(in))
	for k := range in {
		out[k] = struct{}{}
	}
	return out
}
