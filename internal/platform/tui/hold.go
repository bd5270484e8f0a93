package tui

import (
	"sort"
	"time"
)

type keyPress struct {
	at        time.Time
	repeating bool
}

// HoldTracker emulates key release for terminals, which only report presses.
// A first press is a tap. The key counts as held once the terminal repeats
// it inside window, and stays held until window passes without a repeat.
type HoldTracker struct {
	window time.Duration
	keys   map[string]keyPress
}

// NewHoldTracker creates a tracker with the given release window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		keys:   make(map[string]keyPress),
	}
}

// Press records a key press at now and reports whether it repeats an
// earlier press inside the window. A false result is a fresh tap.
func (h *HoldTracker) Press(key string, now time.Time) bool {
	prev, ok := h.keys[key]
	repeating := ok && now.Sub(prev.at) < h.window
	h.keys[key] = keyPress{at: now, repeating: repeating}
	return repeating
}

// IsHeld reports whether key is still considered down at now.
func (h *HoldTracker) IsHeld(key string, now time.Time) bool {
	p, ok := h.keys[key]
	return ok && p.repeating && now.Sub(p.at) < h.window
}

// Held returns the keys down at now in sorted order and forgets released ones.
func (h *HoldTracker) Held(now time.Time) []string {
	var keys []string
	for k, p := range h.keys {
		if now.Sub(p.at) >= h.window {
			delete(h.keys, k)
			continue
		}
		if p.repeating {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Reset releases every key.
func (h *HoldTracker) Reset() {
	clear(h.keys)
}
