// Package tern provides keyboard focus management: an ordered focusable
// set with wrapping next/prev traversal.
package tern

import "sort"

// ComponentID is the opaque identity the focus manager and event router
// hand out.
type ComponentID uint64

// focusEntry is one registration, sorted by tab order.
type focusEntry struct {
	id        ComponentID
	tabOrder  int
	focusable bool
}

// FocusManager tracks which component has keyboard focus. Registrations
// are kept sorted by tab order; Tab and Shift+Tab walk the focusable
// subset, wrapping at either end.
type FocusManager struct {
	entries []focusEntry
	current ComponentID
	hasCur  bool
	nextID  ComponentID
}

// NewFocusManager creates an empty manager.
func NewFocusManager() *FocusManager {
	return &FocusManager{nextID: 1}
}

// NewID hands out a fresh component id.
func (m *FocusManager) NewID() ComponentID {
	id := m.nextID
	m.nextID++
	return id
}

// Register adds (or replaces) a registration. The list stays sorted by
// tab order. If nothing is focused yet and the entry is focusable, it
// becomes current.
func (m *FocusManager) Register(id ComponentID, tabOrder int, focusable bool) {
	m.remove(id)
	m.entries = append(m.entries, focusEntry{id: id, tabOrder: tabOrder, focusable: focusable})
	sort.SliceStable(m.entries, func(i, j int) bool {
		return m.entries[i].tabOrder < m.entries[j].tabOrder
	})

	if !m.hasCur && focusable {
		m.current = id
		m.hasCur = true
	}
}

// Unregister removes a registration. If it held focus, focus is cleared
// and re-seated on the first focusable entry in tab order.
func (m *FocusManager) Unregister(id ComponentID) {
	m.remove(id)

	if m.hasCur && m.current == id {
		m.hasCur = false
		if len(m.entries) > 0 {
			m.FocusNext()
		}
	}
}

func (m *FocusManager) remove(id ComponentID) {
	for i, e := range m.entries {
		if e.id == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return
		}
	}
}

// Current returns the focused id; ok is false when nothing is focused.
func (m *FocusManager) Current() (ComponentID, bool) {
	return m.current, m.hasCur
}

// IsFocused reports whether id holds focus.
func (m *FocusManager) IsFocused(id ComponentID) bool {
	return m.hasCur && m.current == id
}

// Focus moves focus to id. Fails when id is absent or not focusable.
func (m *FocusManager) Focus(id ComponentID) bool {
	for _, e := range m.entries {
		if e.id == id && e.focusable {
			m.current = id
			m.hasCur = true
			return true
		}
	}
	return false
}

// FocusNext advances to the next focusable entry in tab order, wrapping.
func (m *FocusManager) FocusNext() bool {
	if len(m.entries) == 0 {
		return false
	}

	start := 0
	if idx, ok := m.currentIndex(); ok {
		start = idx + 1
	}

	for offset := 0; offset < len(m.entries); offset++ {
		e := m.entries[(start+offset)%len(m.entries)]
		if e.focusable {
			m.current = e.id
			m.hasCur = true
			return true
		}
	}
	return false
}

// FocusPrev moves to the previous focusable entry in tab order, wrapping.
func (m *FocusManager) FocusPrev() bool {
	n := len(m.entries)
	if n == 0 {
		return false
	}

	start := n - 1
	if idx, ok := m.currentIndex(); ok {
		start = (idx - 1 + n) % n
	}

	for offset := 0; offset < n; offset++ {
		e := m.entries[(start-offset+n)%n]
		if e.focusable {
			m.current = e.id
			m.hasCur = true
			return true
		}
	}
	return false
}

func (m *FocusManager) currentIndex() (int, bool) {
	if !m.hasCur {
		return 0, false
	}
	for i, e := range m.entries {
		if e.id == m.current {
			return i, true
		}
	}
	return 0, false
}

// Clear drops focus without touching registrations.
func (m *FocusManager) Clear() {
	m.hasCur = false
}

// Count returns the number of registrations.
func (m *FocusManager) Count() int {
	return len(m.entries)
}

// FocusableCount returns the number of focusable registrations.
func (m *FocusManager) FocusableCount() int {
	n := 0
	for _, e := range m.entries {
		if e.focusable {
			n++
		}
	}
	return n
}
