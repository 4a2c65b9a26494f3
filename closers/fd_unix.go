//go:build unix

package closers

import (
	"golang.org/x/sys/unix"
)

// InvalidFD is the sentinel returned by descriptor-allocating calls on
// failure. Pass it to guard.NewChecked.
const InvalidFD = -1

// FD closes a raw file descriptor.
func FD(fd int) error {
	return unix.Close(fd)
}
