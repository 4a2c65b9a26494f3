// Package resource manages groups of guards whose number is only known at
// run time.
//
// A single guard covers a resource whose lifetime matches one scope. When a
// loop opens N files, or a server accepts connections until shutdown, the
// guards need a container that releases them together. This package
// provides two:
//
//	Stack  - scope-local, LIFO release, not safe for concurrent use
//	Table  - handle-indexed, safe for concurrent use, with observers
//
// # Stack
//
// A Stack is the dynamic form of several deferred Close calls:
//
//	var s resource.Stack
//	defer s.Close()
//
//	for _, name := range names {
//	    f, err := os.Open(name)
//	    if err != nil {
//	        return err // every file opened so far is closed
//	    }
//	    resource.Push(&s, name, guard.New1((*os.File).Close, f))
//	}
//
// Call Release to keep every resource on success:
//
//	s.Release()
//
// # Handle Table
//
// A Table maps integer handles to guards:
//
//	table := resource.NewTable()
//	defer table.Close()
//
//	// Insert a guard, get a handle
//	h, err := table.Insert("conn", guard.New1((*net.TCPConn).Close, conn))
//
//	// Release early
//	err = table.Drop(h)
//
//	// Or take the guard back without releasing it
//	g, ok := table.Remove(h)
//
// Handle 0 is never issued. Handles of dropped guards are reused.
//
// # Observers
//
// Register observers to track guard lifecycle events:
//
//	table.Subscribe(resource.ObserverFunc(func(e resource.Event) {
//	    switch e.Type {
//	    case resource.EventInserted:
//	        log.Printf("guard %d (%s) inserted", e.Handle, e.Name)
//	    case resource.EventDropped:
//	        log.Printf("guard %d (%s) released: %v", e.Handle, e.Name, e.Err)
//	    }
//	})
//
// # Ordering
//
// Stack.Close and Table.Close release the most recently added guard first,
// matching deferred Close calls. Errors from every deleter are combined with
// multierr; one failing or panicking deleter does not stop the others.
package resource
