// Command demo walks through the guard lifecycle: scope-exit release,
// multi-resource deleters, checked construction, explicit release and
// ordered teardown of a wasm runtime.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/scoped/closers"
	"github.com/wippyai/scoped/guard"
	"github.com/wippyai/scoped/resource"
)

// emptyModule is the smallest valid wasm binary: magic and version only.
var emptyModule = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

func main() {
	var (
		verbose = flag.Bool("v", false, "Log guard lifecycle to stderr")
		plain   = flag.Bool("plain", false, "Disable styled section headers")
	)
	flag.Parse()

	log := zap.NewNop()
	if *verbose {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer log.Sync()
	}
	guard.SetLogger(log)
	resource.SetLogger(log)

	d := &demo{
		log:    log,
		styled: !*plain && isTerminal(os.Stdout),
	}
	if err := d.run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type demo struct {
	log    *zap.Logger
	styled bool
}

func (d *demo) run(ctx context.Context) (err error) {
	runs := 0
	doneHere := guard.New0(func() error {
		fmt.Println("Done with tests, last run:", runs)
		return nil
	})
	defer doneHere.Close()

	d.section("Scope exit")
	d.s1("Should be 2nd")
	runs++

	d.section("Two resources, one deleter")
	if err := d.s2(); err != nil {
		return err
	}
	runs++

	d.section("Plain work")
	for _, s := range []string{"Test", "Test 2", "Test 3"} {
		fmt.Println(s)
	}
	runs++

	d.section("Checked construction")
	d.checked()
	runs++

	d.section("Explicit release")
	d.release()
	runs++

	d.section("Ordered teardown")
	if err := d.wasm(ctx); err != nil {
		return err
	}
	runs++

	return nil
}

// s1 prints its own message before the guard's.
func (d *demo) s1(msg string) {
	res := guard.New0(func() error {
		fmt.Println("strMessage:")
		fmt.Println(msg)
		return nil
	})
	defer res.Close()

	fmt.Println("Should be first...")
}

// release takes the resource back, so the deleter never runs.
func (d *demo) release() {
	token := guard.New1(func(tok string) error {
		fmt.Println("revoking", tok)
		return nil
	}, "session-42")
	defer token.Close()

	kept := token.Release()
	fmt.Printf("kept %s, guard %v\n", kept, token)
}

// wasm tears down a module before the runtime that owns it.
func (d *demo) wasm(ctx context.Context) (err error) {
	table := resource.NewTable()
	defer func() {
		err = multierr.Append(err, table.Close())
	}()

	table.Subscribe(resource.ObserverFunc(func(e resource.Event) {
		fmt.Printf("%s %s (handle %d)\n", e.Type, e.Name, e.Handle)
	}))

	rt := wazero.NewRuntime(ctx)
	if _, err := table.Insert("runtime", guard.New1(closers.Context[wazero.Runtime](ctx), rt)); err != nil {
		rt.Close(ctx)
		return err
	}

	mod, err := rt.Instantiate(ctx, emptyModule)
	if err != nil {
		return fmt.Errorf("instantiate: %w", err)
	}
	modGuard := guard.New1(closers.Logged1(d.log, "module", closers.Context[api.Module](ctx)), mod)
	if _, err := table.Insert("module", modGuard); err != nil {
		modGuard.Close()
		return err
	}

	fmt.Println("guards in table:", table.Len())
	return nil
}
