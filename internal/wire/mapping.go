package wire

import (
	"fmt"
	"sync"
	"unicode/utf8"
)

// MaxSymbolLen bounds user-assigned wire strings.
const MaxSymbolLen = 12

// Mapping holds the active action -> wire string table plus a working
// copy for edits. The active table is what transmission resolves
// against; edits accumulate in the working copy until Commit or
// Discard. No action ever resolves to the empty string.
type Mapping struct {
	mu      sync.RWMutex
	active  [actionCount]string
	working [actionCount]string
	editing bool
}

// NewMapping returns a mapping with the factory symbol assignment.
func NewMapping() *Mapping {
	return &Mapping{active: defaultSymbols}
}

// Resolve returns the active wire string for an action.
func (m *Mapping) Resolve(a Action) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active[a]
}

// BeginEdit snapshots the active table into the working copy. Calling
// it again restarts the edit from the current active table.
func (m *Mapping) BeginEdit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.working = m.active
	m.editing = true
}

// SetSymbol assigns value to action in the working copy. Values must
// be 1 to MaxSymbolLen characters; a rejected value leaves the working
// entry unchanged.
func (m *Mapping) SetSymbol(a Action, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.editing {
		return fmt.Errorf("no edit in progress for %s", a)
	}
	if n := utf8.RuneCountInString(value); n == 0 || n > MaxSymbolLen {
		return fmt.Errorf("symbol for %s must be 1-%d characters, got %d", a, MaxSymbolLen, n)
	}
	m.working[a] = value
	return nil
}

// Commit replaces the active table with the working copy.
func (m *Mapping) Commit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.editing {
		return
	}
	m.active = m.working
	m.editing = false
}

// Discard drops the working copy; the active table is untouched.
func (m *Mapping) Discard() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.editing = false
}

// Working returns the working-copy value for an action. Outside an
// edit it mirrors the active table.
func (m *Mapping) Working(a Action) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.editing {
		return m.working[a]
	}
	return m.active[a]
}
