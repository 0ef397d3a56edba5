//go:build (rp2040 || rp2350) && !nano_rp2040

package platform

import "envnode-go/services/wifi"

// The plain Pico has no radio.
func openLink() wifi.Linker { return nil }
