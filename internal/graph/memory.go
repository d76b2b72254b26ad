package graph

import "sync"

// Memory is an in-memory statement set with a subject index. Safe for
// concurrent use; the graph writer additionally serializes its own
// check-then-insert sequences so type/label emission stays atomic per
// identifier.
type Memory struct {
	mu       sync.RWMutex
	set      map[Statement]struct{}
	subjects map[string][]Statement
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		set:      make(map[Statement]struct{}),
		subjects: make(map[string][]Statement),
	}
}

// Add inserts a statement, returning true if it was new.
func (m *Memory) Add(st Statement) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.set[st]; ok {
		return false
	}
	m.set[st] = struct{}{}
	m.subjects[st.Subject] = append(m.subjects[st.Subject], st)
	return true
}

// Has reports whether the statement is present.
func (m *Memory) Has(st Statement) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.set[st]
	return ok
}

// BySubject returns a copy of all statements with the given subject.
func (m *Memory) BySubject(subject string) []Statement {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sts := m.subjects[subject]
	out := make([]Statement, len(sts))
	copy(out, sts)
	return out
}

// Len returns the number of distinct statements.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.set)
}

// ForEach visits every statement in unspecified order.
func (m *Memory) ForEach(fn func(st Statement) error) error {
	m.mu.RLock()
	snapshot := make([]Statement, 0, len(m.set))
	for st := range m.set {
		snapshot = append(snapshot, st)
	}
	m.mu.RUnlock()

	for _, st := range snapshot {
		if err := fn(st); err != nil {
			return err
		}
	}
	return nil
}
