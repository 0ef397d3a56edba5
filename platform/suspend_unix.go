//go:build !rp2040 && !rp2350 && unix

package platform

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// reexec sleeps then replaces the process with a fresh copy of itself, so
// nothing from the previous wake survives.
func reexec(d time.Duration) error {
	time.Sleep(d)
	exe, err := os.Executable()
	if err != nil {
		return err
	}
	return unix.Exec(exe, os.Args, os.Environ())
}
