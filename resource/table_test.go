package resource

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serrors "github.com/wippyai/scoped/errors"
	"github.com/wippyai/scoped/guard"
)

type testObserver struct {
	events []Event
}

func (o *testObserver) OnGuardEvent(e Event) {
	o.events = append(o.events, e)
}

func recorder(order *[]string, name string) *guard.Guard1[string] {
	return guard.New1(func(s string) error {
		*order = append(*order, s)
		return nil
	}, name)
}

func TestTable_Basic(t *testing.T) {
	table := NewTable()
	var order []string

	g := recorder(&order, "a")
	h, err := table.Insert("a", g)
	require.NoError(t, err)
	require.NotZero(t, h)

	got, ok := table.Get(h)
	require.True(t, ok)
	assert.Same(t, g, got)
	assert.Equal(t, 1, table.Len())

	require.NoError(t, table.Drop(h))
	assert.Equal(t, []string{"a"}, order)
	assert.Zero(t, table.Len())

	_, ok = table.Get(h)
	assert.False(t, ok)
}

func TestTable_DropInvalid(t *testing.T) {
	table := NewTable()

	err := table.Drop(42)
	require.Error(t, err)
	assert.ErrorIs(t, err, &serrors.Error{Phase: serrors.PhaseTable, Kind: serrors.KindInvalidHandle})
}

func TestTable_RemoveDoesNotRelease(t *testing.T) {
	table := NewTable()
	var order []string

	h, _ := table.Insert("a", recorder(&order, "a"))
	g, ok := table.Remove(h)
	require.True(t, ok)
	assert.True(t, g.Armed(), "removed guard keeps its arming")

	require.NoError(t, table.Close())
	assert.Empty(t, order, "table must not release a removed guard")

	require.NoError(t, g.Close())
	assert.Equal(t, []string{"a"}, order)

	_, ok = table.Remove(h)
	assert.False(t, ok)
}

func TestTable_CloseReleasesNewestFirst(t *testing.T) {
	table := NewTable()
	var order []string

	for _, name := range []string{"a", "b", "c"} {
		_, err := table.Insert(name, recorder(&order, name))
		require.NoError(t, err)
	}

	require.NoError(t, table.Close())
	assert.Equal(t, []string{"c", "b", "a"}, order)
	assert.Zero(t, table.Len())

	// Second close is a no-op.
	require.NoError(t, table.Close())
	assert.Len(t, order, 3)
}

func TestTable_InsertAfterClose(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Close())

	g := nopGuard()
	_, err := table.Insert("late", g)
	assert.ErrorIs(t, err, &serrors.Error{Phase: serrors.PhaseTable, Kind: serrors.KindClosed})
	assert.True(t, g.Armed(), "guard stays with the caller")
}

func TestTable_ClearKeepsTableOpen(t *testing.T) {
	table := NewTable()
	var order []string

	table.Insert("a", recorder(&order, "a"))
	require.NoError(t, table.Clear())
	assert.Equal(t, []string{"a"}, order)

	_, err := table.Insert("b", recorder(&order, "b"))
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

func TestTable_PanicStillReleasesRest(t *testing.T) {
	table := NewTable()
	var order []string

	_, err := table.Insert("a", recorder(&order, "a"))
	require.NoError(t, err)
	_, err = table.Insert("boom", guard.New0(func() error { panic("deleter panic") }))
	require.NoError(t, err)

	assert.Panics(t, func() { table.Close() })
	assert.Equal(t, []string{"a"}, order)
	assert.Zero(t, table.Len())
	assert.NoError(t, table.Close())
}

func TestTable_ClearSkipsRecycledHandle(t *testing.T) {
	table := NewTable()
	var order []string

	_, err := table.Insert("a", recorder(&order, "a"))
	require.NoError(t, err)
	hb, err := table.Insert("b", recorder(&order, "b"))
	require.NoError(t, err)
	_, err = table.Insert("c", recorder(&order, "c"))
	require.NoError(t, err)

	var late Handle
	table.Subscribe(ObserverFunc(func(e Event) {
		if e.Type != EventDropped || e.Name != "c" {
			return
		}
		require.NoError(t, table.Drop(hb))
		late, err = table.Insert("late", recorder(&order, "late"))
		require.NoError(t, err)
	}))

	require.NoError(t, table.Clear())
	assert.Equal(t, hb, late, "dropped handle should be reused")
	assert.Equal(t, []string{"c", "b", "a"}, order)

	g, ok := table.Get(late)
	require.True(t, ok)
	assert.True(t, g.Armed())
}

func TestTable_CloseCombinesErrors(t *testing.T) {
	table := NewTable()
	errA := errors.New("a failed")
	errC := errors.New("c failed")
	var order []string

	table.Insert("a", guard.New0(func() error { order = append(order, "a"); return errA }))
	table.Insert("b", recorder(&order, "b"))
	table.Insert("c", guard.New0(func() error { order = append(order, "c"); return errC }))

	err := table.Close()
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errC)
	assert.Equal(t, []string{"c", "b", "a"}, order, "a failure must not stop later releases")

	var gerr *serrors.Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, serrors.KindDeleterFailed, gerr.Kind)
}

func TestTable_Observer(t *testing.T) {
	table := NewTable()
	obs := &testObserver{}
	table.Subscribe(obs)

	h, _ := table.Insert("a", nopGuard())
	require.Len(t, obs.events, 1)
	assert.Equal(t, EventInserted, obs.events[0].Type)
	assert.Equal(t, h, obs.events[0].Handle)
	assert.Equal(t, "a", obs.events[0].Name)

	table.Drop(h)
	require.Len(t, obs.events, 2)
	assert.Equal(t, EventDropped, obs.events[1].Type)
	assert.NoError(t, obs.events[1].Err)

	h, _ = table.Insert("b", nopGuard())
	table.Remove(h)
	require.Len(t, obs.events, 4)
	assert.Equal(t, EventRemoved, obs.events[3].Type)
}

func TestTable_ObserverSeesError(t *testing.T) {
	table := NewTable()
	var dropped []Event
	table.Subscribe(ObserverFunc(func(e Event) {
		if e.Type == EventDropped {
			dropped = append(dropped, e)
		}
	}))

	boom := errors.New("boom")
	h, _ := table.Insert("bad", guard.New0(func() error { return boom }))
	table.Drop(h)

	require.Len(t, dropped, 1)
	assert.ErrorIs(t, dropped[0].Err, boom)
}

func TestTable_Unsubscribe(t *testing.T) {
	table := NewTable()
	obs1 := &testObserver{}
	count := 0
	unsub1 := table.Subscribe(obs1)
	unsub2 := table.Subscribe(ObserverFunc(func(Event) { count++ }))

	table.Insert("a", nopGuard())
	unsub1()
	unsub2()
	table.Insert("b", nopGuard())

	assert.Len(t, obs1.events, 1)
	assert.Equal(t, 1, count)
}

func TestTable_Each(t *testing.T) {
	table := NewTable()
	table.Insert("a", nopGuard())
	table.Insert("b", nopGuard())
	table.Insert("c", nopGuard())

	var names []string
	table.Each(func(h Handle, name string, g Guard) bool {
		names = append(names, name)
		return len(names) < 2
	})
	assert.Equal(t, []string{"c", "b"}, names)
}

func TestTable_Concurrent(t *testing.T) {
	table := NewTable()
	var mu sync.Mutex
	released := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h, err := table.Insert("g", guard.New0(func() error {
				mu.Lock()
				released++
				mu.Unlock()
				return nil
			}))
			if err != nil {
				return
			}
			if h%2 == 0 {
				table.Drop(h)
			}
		}()
	}
	wg.Wait()

	require.NoError(t, table.Close())
	assert.Equal(t, 50, released, "every guard released exactly once")
}
