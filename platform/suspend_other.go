//go:build !rp2040 && !rp2350 && !unix

package platform

import "time"

// reexec only sleeps here; the next cycle runs in the same process.
func reexec(d time.Duration) error {
	time.Sleep(d)
	return nil
}
