//go:build unix

package main

import (
	"fmt"

	"go.uber.org/multierr"
	"golang.org/x/sys/unix"

	"github.com/wippyai/scoped/closers"
	"github.com/wippyai/scoped/guard"
)

// writeThenClose stands in for a cleanup call that takes two arguments.
func writeThenClose(fd int, final string) error {
	_, err := unix.Write(fd, []byte(final))
	return multierr.Append(err, unix.Close(fd))
}

// s2 writes through a duplicated stdout and leaves the final message to
// the deleter.
func (d *demo) s2() (err error) {
	const finalMsg = "Final Message\n"

	fd, err := unix.Dup(1)
	if err != nil {
		return fmt.Errorf("dup stdout: %w", err)
	}
	file := guard.New2(closers.Logged2(d.log, "s2", writeThenClose), fd, finalMsg)
	defer func() {
		err = multierr.Append(err, file.Close())
	}()

	if _, err := unix.Write(file.First(), []byte("s2 begin\n")); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	fmt.Println("leaving s2 with file ==", file.First())
	return nil
}

// checked opens a path that does not exist; the guard is never armed.
func (d *demo) checked() {
	fd, err := unix.Open("/nonexistent/scoped-demo", unix.O_RDONLY, 0)
	if err != nil {
		fd = closers.InvalidFD
	}
	g := guard.NewChecked(closers.FD, fd, closers.InvalidFD)
	defer g.Close()

	fmt.Printf("open failed: %v, guard %v\n", err, g)
}
