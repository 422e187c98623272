package sim

// Ref identifies a spawned entity. Refs stay valid after removal;
// lookups on a removed entity simply fail.
type Ref struct {
	ID   uint64
	Kind Kind
}

// Store owns every entity of a world, one insertion-ordered collection per kind.
// Removal is two-phase: Kill marks, Compact drops. A pass over a collection
// never sees entities killed earlier in that pass nor ones spawned during it.
type Store struct {
	lists  [kindCount][]*Entity
	byID   map[uint64]*Entity
	nextID uint64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{byID: make(map[uint64]*Entity), nextID: 1}
}

// Spawn adds a copy of e under e.Kind. Entities with non-finite or negative
// geometry are rejected and ok is false.
func (s *Store) Spawn(e Entity) (ref Ref, ok bool) {
	if !e.valid() {
		return Ref{}, false
	}
	if e.Life == 0 {
		e.Life = Forever
	}
	if e.MaxLife == 0 && e.Life > 0 {
		e.MaxLife = e.Life
	}
	e.ID = s.nextID
	s.nextID++
	e.Prev = e.Pos
	e.dead = false

	p := &e
	s.lists[e.Kind] = append(s.lists[e.Kind], p)
	s.byID[e.ID] = p
	return Ref{ID: e.ID, Kind: e.Kind}, true
}

// Get returns the live entity for ref.
func (s *Store) Get(ref Ref) (*Entity, bool) {
	e, ok := s.byID[ref.ID]
	if !ok || e.dead {
		return nil, false
	}
	return e, true
}

// Kill marks the entity for removal. Killing a removed entity is a no-op.
func (s *Store) Kill(e *Entity) {
	if e != nil {
		e.dead = true
	}
}

// KillRef marks the referenced entity for removal, if it still exists.
func (s *Store) KillRef(ref Ref) {
	if e, ok := s.byID[ref.ID]; ok {
		e.dead = true
	}
}

// ForEach calls fn for each live entity of kind in insertion order.
func (s *Store) ForEach(kind Kind, fn func(e *Entity)) {
	if kind >= kindCount {
		return
	}
	n := len(s.lists[kind])
	for i := 0; i < n; i++ {
		if e := s.lists[kind][i]; !e.dead {
			fn(e)
		}
	}
}

// First returns the first live entity of kind.
func (s *Store) First(kind Kind) (*Entity, bool) {
	if kind >= kindCount {
		return nil, false
	}
	for _, e := range s.lists[kind] {
		if !e.dead {
			return e, true
		}
	}
	return nil, false
}

// RemoveWhere marks every live entity of kind matching pred and returns how many.
func (s *Store) RemoveWhere(kind Kind, pred func(e *Entity) bool) int {
	n := 0
	s.ForEach(kind, func(e *Entity) {
		if pred(e) {
			e.dead = true
			n++
		}
	})
	return n
}

// Count returns the number of live entities of kind.
func (s *Store) Count(kind Kind) int {
	n := 0
	s.ForEach(kind, func(*Entity) { n++ })
	return n
}

// Compact drops every marked entity, preserving the order of the rest.
func (s *Store) Compact() {
	for k := range s.lists {
		live := s.lists[k][:0]
		for _, e := range s.lists[k] {
			if e.dead {
				delete(s.byID, e.ID)
				continue
			}
			live = append(live, e)
		}
		clear(s.lists[k][len(live):])
		s.lists[k] = live
	}
}
