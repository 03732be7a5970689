package search

import (
	"sync"
	"time"
)

// OverlayIdle is how long an untouched overlay is kept before it is swept.
const OverlayIdle = 30 * time.Minute

// Overlays keeps one keyboard navigator per shopper session. An overlay is
// dropped when it closes, when it navigates away, or after OverlayIdle.
type Overlays struct {
	mu   sync.Mutex
	navs map[string]*overlay
	idle time.Duration
	now  func() time.Time
}

type overlay struct {
	mu       sync.Mutex
	nav      *Navigator
	lastSeen time.Time
}

func NewOverlays() *Overlays {
	return &Overlays{navs: make(map[string]*overlay), idle: OverlayIdle, now: time.Now}
}

// Show replaces the session's visible results.
func (o *Overlays) Show(sessionID string, res QuickResult) {
	o.mu.Lock()
	now := o.now()
	o.sweepLocked(now)
	ov, ok := o.navs[sessionID]
	if !ok {
		ov = &overlay{nav: NewNavigator()}
		o.navs[sessionID] = ov
	}
	ov.lastSeen = now
	ov.mu.Lock()
	o.mu.Unlock()
	ov.nav.SetResults(res.Query, res.Results)
	ov.mu.Unlock()
}

// Press applies a key to the session's overlay and returns the action, the
// destination (if any) and the new cursor. Sessions without an open overlay
// get an empty one that is not stored.
func (o *Overlays) Press(sessionID string, k Key) (Action, string, int) {
	o.mu.Lock()
	ov, ok := o.navs[sessionID]
	if !ok {
		o.mu.Unlock()
		a, dest := NewNavigator().Handle(k)
		return a, dest, -1
	}
	ov.lastSeen = o.now()
	ov.mu.Lock()
	o.mu.Unlock()
	a, dest := ov.nav.Handle(k)
	cursor := ov.nav.Cursor()
	ov.mu.Unlock()
	if a == ActionClose {
		cursor = -1
	}

	if a == ActionClose || a == ActionNavigate {
		o.mu.Lock()
		if o.navs[sessionID] == ov {
			delete(o.navs, sessionID)
		}
		o.mu.Unlock()
	}
	return a, dest, cursor
}

func (o *Overlays) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.navs)
}

func (o *Overlays) sweepLocked(now time.Time) {
	for id, ov := range o.navs {
		if now.Sub(ov.lastSeen) > o.idle {
			delete(o.navs, id)
		}
	}
}
