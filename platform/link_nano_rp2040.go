//go:build nano_rp2040

package platform

import (
	"tinygo.org/x/drivers/netlink/probe"

	"envnode-go/services/wifi"
)

// openLink probes the board's NINA module.
func openLink() wifi.Linker {
	link, _ := probe.Probe()
	return link
}
