package value

import "github.com/profusion/cppgraphqlgen/errors"

// MapEntry is one (key, Value) pair of a Map, exposed in insertion order.
type MapEntry struct {
	Key   string
	Value Value
}

// orderedMap backs a KindMap Value: a vector of pairs for stable,
// insertion-ordered iteration, plus a side hash index for O(1) Find, per
// spec.md §9 ("Ordered maps with fast lookup"). The two must only be
// mutated together, which is why every write goes through emplace.
type orderedMap struct {
	pairs []MapEntry
	index map[string]int
}

func newOrderedMap(capHint int) *orderedMap {
	return &orderedMap{
		pairs: make([]MapEntry, 0, capHint),
		index: make(map[string]int, capHint),
	}
}

func (m *orderedMap) reserve(n int) {
	if cap(m.pairs)-len(m.pairs) < n {
		grown := make([]MapEntry, len(m.pairs), len(m.pairs)+n)
		copy(grown, m.pairs)
		m.pairs = grown
	}
}

func (m *orderedMap) size() int {
	return len(m.pairs)
}

func (m *orderedMap) emplace(key string, v Value) error {
	if _, ok := m.index[key]; ok {
		return duplicateKey(key)
	}
	m.index[key] = len(m.pairs)
	m.pairs = append(m.pairs, MapEntry{Key: key, Value: v})
	return nil
}

func (m *orderedMap) find(key string) (*Value, bool) {
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return &m.pairs[i].Value, true
}

// ordered returns the entries in insertion order.
func (m *orderedMap) ordered() []MapEntry { return m.pairs }

func (m *orderedMap) clone() *orderedMap {
	out := newOrderedMap(len(m.pairs))
	for _, p := range m.pairs {
		out.index[p.Key] = len(out.pairs)
		out.pairs = append(out.pairs, MapEntry{Key: p.Key, Value: p.Value.Clone()})
	}
	return out
}

func (m *orderedMap) equal(other *orderedMap) bool {
	if len(m.pairs) != len(other.pairs) {
		return false
	}
	for i, p := range m.pairs {
		op := other.pairs[i]
		if p.Key != op.Key || !Equal(p.Value, op.Value) {
			return false
		}
	}
	return true
}

func duplicateKey(key string) error {
	return errors.Errorf("map already contains key %q", key).WithRule("DuplicateKey")
}
