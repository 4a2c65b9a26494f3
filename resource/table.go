package resource

import (
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/scoped/errors"
)

// Table holds guards by handle and releases whatever is left on Close.
// It is safe for concurrent use; the guards themselves are only touched
// by one goroutine at a time through the table.
type Table struct {
	store     *store
	observers []subscription
	nextSub   uint64
	obsMu     sync.RWMutex
	mu        sync.Mutex
	closed    bool
}

type subscription struct {
	o  Observer
	id uint64
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		store: newStore(),
	}
}

// Insert adds a guard and returns its handle. The table owns the guard
// from now on. Inserting into a closed table fails and leaves the guard
// with the caller.
func (t *Table) Insert(name string, g Guard) (Handle, error) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0, errors.Closed(errors.PhaseTable, "table")
	}
	handle := t.store.insert(name, g)
	t.mu.Unlock()

	t.notify(Event{
		Type:   EventInserted,
		Handle: handle,
		Name:   name,
		Guard:  g,
	})

	return handle, nil
}

// Get retrieves a guard by handle.
func (t *Table) Get(handle Handle) (Guard, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	g, _, ok := t.store.get(handle)
	return g, ok
}

// Remove takes a guard out of the table without releasing it. The caller
// becomes responsible for closing it.
func (t *Table) Remove(handle Handle) (Guard, bool) {
	t.mu.Lock()
	g, name, ok := t.store.take(handle)
	t.mu.Unlock()
	if !ok {
		return nil, false
	}

	t.notify(Event{
		Type:   EventRemoved,
		Handle: handle,
		Name:   name,
		Guard:  g,
	})

	return g, true
}

// Drop takes a guard out of the table and closes it.
func (t *Table) Drop(handle Handle) error {
	t.mu.Lock()
	g, name, ok := t.store.take(handle)
	t.mu.Unlock()
	if !ok {
		return errors.InvalidHandle(errors.PhaseTable, uint32(handle))
	}

	return t.release(handle, name, g)
}

// Subscribe adds an observer for lifecycle events and returns a function
// that removes it.
func (t *Table) Subscribe(o Observer) (unsubscribe func()) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()

	t.nextSub++
	id := t.nextSub
	t.observers = append(t.observers, subscription{o: o, id: id})

	return func() {
		t.obsMu.Lock()
		defer t.obsMu.Unlock()
		for i, s := range t.observers {
			if s.id == id {
				t.observers = append(t.observers[:i], t.observers[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of guards in the table.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.store.len()
}

// Each calls fn for every guard, newest first, until fn returns false.
// fn must not call back into the table.
func (t *Table) Each(fn func(Handle, string, Guard) bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, sl := range t.store.newestFirst() {
		g, name, _ := t.store.get(sl.handle)
		if !fn(sl.handle, name, g) {
			return
		}
	}
}

// Clear releases every guard present when it is called, newest first, and
// leaves the table open. Guards inserted while Clear runs stay in the table.
// Every guard is released even when a deleter panics; the panic is
// re-raised after the rest have run.
func (t *Table) Clear() error {
	t.mu.Lock()
	slots := t.store.newestFirst()
	t.mu.Unlock()

	return t.clear(slots)
}

func (t *Table) clear(slots []slot) (err error) {
	for len(slots) > 0 {
		sl := slots[0]
		slots = slots[1:]

		t.mu.Lock()
		g, name, ok := t.store.takeSlot(sl)
		t.mu.Unlock()
		if !ok {
			// Dropped or removed concurrently.
			continue
		}

		defer func(rest []slot) {
			err = multierr.Append(err, t.clear(rest))
		}(slots)
		return t.release(sl.handle, name, g)
	}
	return nil
}

// Close releases every guard, newest first, and stops accepting inserts.
// Closing a closed table is a no-op.
func (t *Table) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	t.mu.Unlock()

	return t.Clear()
}

func (t *Table) release(handle Handle, name string, g Guard) error {
	err := wrapRelease(errors.PhaseTable, name, g.Close())

	if err != nil {
		Logger().Warn("guard release failed",
			zap.Uint32("handle", uint32(handle)),
			zap.String("guard", name),
			zap.Error(err))
	}

	t.notify(Event{
		Type:   EventDropped,
		Handle: handle,
		Name:   name,
		Guard:  g,
		Err:    err,
	})

	return err
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, s := range t.observers {
		s.o.OnGuardEvent(e)
	}
}
