package resource

import (
	"slices"
)

// store is the handle-indexed slot storage behind Table. It is not
// synchronized; Table holds its lock around every call.
type store struct {
	entries  []entry
	freeList []Handle
	seq      uint64
}

type entry struct {
	guard Guard
	name  string
	seq   uint64
	valid bool
}

func newStore() *store {
	return &store{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// insert stores a guard and returns its handle.
func (s *store) insert(name string, g Guard) Handle {
	s.seq++
	e := entry{
		guard: g,
		name:  name,
		seq:   s.seq,
		valid: true,
	}

	if len(s.freeList) > 0 {
		handle := s.freeList[len(s.freeList)-1]
		s.freeList = s.freeList[:len(s.freeList)-1]
		s.entries[handle-1] = e
		return handle
	}

	s.entries = append(s.entries, e)
	return Handle(len(s.entries))
}

func (s *store) lookup(handle Handle) *entry {
	if handle == 0 {
		return nil
	}
	idx := handle - 1
	if int(idx) >= len(s.entries) {
		return nil
	}
	e := &s.entries[idx]
	if !e.valid {
		return nil
	}
	return e
}

// get retrieves a guard by handle.
func (s *store) get(handle Handle) (Guard, string, bool) {
	e := s.lookup(handle)
	if e == nil {
		return nil, "", false
	}
	return e.guard, e.name, true
}

// take removes a guard and returns it. The slot is recycled.
func (s *store) take(handle Handle) (Guard, string, bool) {
	e := s.lookup(handle)
	if e == nil {
		return nil, "", false
	}

	g, name := e.guard, e.name
	*e = entry{}
	s.freeList = append(s.freeList, handle)
	return g, name, true
}

// len returns the number of stored guards.
func (s *store) len() int {
	count := 0
	for _, e := range s.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// slot identifies one stored guard: a handle together with the insertion
// sequence that was live in it. A recycled handle carries a new seq.
type slot struct {
	handle Handle
	seq    uint64
}

// takeSlot is take restricted to the guard sl was recorded for.
func (s *store) takeSlot(sl slot) (Guard, string, bool) {
	e := s.lookup(sl.handle)
	if e == nil || e.seq != sl.seq {
		return nil, "", false
	}
	return s.take(sl.handle)
}

// newestFirst returns the live slots, most recently inserted first.
func (s *store) newestFirst() []slot {
	slots := make([]slot, 0, len(s.entries))
	for i, e := range s.entries {
		if e.valid {
			slots = append(slots, slot{handle: Handle(i + 1), seq: e.seq})
		}
	}
	slices.SortFunc(slots, func(a, b slot) int {
		switch {
		case a.seq > b.seq:
			return -1
		case a.seq < b.seq:
			return 1
		default:
			return 0
		}
	})
	return slots
}
