package guard_test

import (
	"fmt"

	"github.com/wippyai/scoped/guard"
)

func Example() {
	func() {
		g := guard.New0(func() error {
			fmt.Println("released")
			return nil
		})
		defer g.Close()
		fmt.Println("working")
	}()

	// Output:
	// working
	// released
}

// Deleters receive the resources in the order they were given.
func ExampleNew2() {
	writeThenClose := func(fd int, msg string) error {
		fmt.Printf("write(%d, %q)\n", fd, msg)
		fmt.Printf("close(%d)\n", fd)
		return nil
	}

	g := guard.New2(writeThenClose, 7, "Final Message")
	defer g.Close()
	fmt.Println("using fd", g.First())

	// Output:
	// using fd 7
	// write(7, "Final Message")
	// close(7)
}

func ExampleNewChecked() {
	closeFD := func(fd int) error {
		fmt.Println("close", fd)
		return nil
	}

	bad := guard.NewChecked(closeFD, -1, -1)
	fmt.Println(bad)
	bad.Close()

	good := guard.NewChecked(closeFD, 4, -1)
	fmt.Println(good)
	good.Close()

	// Output:
	// Guard1(disarmed)
	// Guard1(armed)
	// close 4
}

// Release hands the resource back when the work succeeded.
func ExampleGuard1_Release() {
	open := func() (int, error) {
		g := guard.New1(func(fd int) error {
			fmt.Println("rollback: close", fd)
			return nil
		}, 3)
		defer g.Close()

		// ... configure the descriptor; any early return closes it ...

		return g.Release(), nil
	}

	fd, _ := open()
	fmt.Println("caller owns", fd)

	// Output:
	// caller owns 3
}

func ExampleGuard1_Reset() {
	g := guard.New1(func(name string) error {
		fmt.Println("close", name)
		return nil
	}, "a.log")
	defer g.Close()

	g.Reset("b.log")
	fmt.Println("now guarding", g.First())

	// Output:
	// close a.log
	// now guarding b.log
	// close b.log
}

func ExampleGuard1_Move() {
	newConn := func() *guard.Guard1[string] {
		g := guard.New1(func(c string) error {
			fmt.Println("close", c)
			return nil
		}, "conn-1")
		defer g.Close()

		return g.Move()
	}

	c := newConn()
	fmt.Println("received", c.First())
	c.Close()

	// Output:
	// received conn-1
	// close conn-1
}
