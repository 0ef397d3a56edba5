// Package wifi keeps the node associated with its access point. Association
// is idempotent: Ensure returns at once while the link is up, otherwise it
// retries NetConnect on a fixed period until it succeeds or ctx ends.
package wifi

import (
	"context"
	"net"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"tinygo.org/x/drivers/netlink"

	"envnode-go/errcode"
	"envnode-go/x/logx"
)

// Linker is the subset of netlink.Netlinker the node uses.
type Linker interface {
	NetConnect(params *netlink.ConnectParams) error
	NetNotify(cb func(netlink.Event))
}

type hwAddresser interface {
	GetHardwareAddr() (net.HardwareAddr, error)
}

type Station struct {
	link   Linker
	params netlink.ConnectParams
	every  time.Duration

	up       atomic.Bool
	watching bool
}

// New returns a Station for ssid. every is the retry period (1 s on the
// stock firmware). A nil link makes every Ensure fail.
func New(link Linker, ssid, passphrase string, every time.Duration) *Station {
	if every <= 0 {
		every = time.Second
	}
	return &Station{
		link:   link,
		params: netlink.ConnectParams{Ssid: ssid, Passphrase: passphrase},
		every:  every,
	}
}

// Up reports whether the link is currently believed associated.
func (s *Station) Up() bool { return s.up.Load() }

func (s *Station) onEvent(e netlink.Event) {
	switch e {
	case netlink.EventNetUp:
		s.up.Store(true)
	case netlink.EventNetDown:
		s.up.Store(false)
		logx.Line("net", "link down")
	}
}

// Ensure blocks until associated. It only gives up when ctx is done.
func (s *Station) Ensure(ctx context.Context) error {
	const op = "associate"
	if s.link == nil {
		return errcode.New(errcode.NotAssociated, op, "no network link")
	}
	if !s.watching {
		s.link.NetNotify(s.onEvent)
		s.watching = true
	}
	if s.up.Load() {
		return nil
	}

	logx.Line("net", "connecting to WiFi", s.params.Ssid)
	connect := func() error { return s.link.NetConnect(&s.params) }
	notify := func(err error, _ time.Duration) { logx.Line("net", "not connected yet:", err.Error()) }
	b := backoff.WithContext(backoff.NewConstantBackOff(s.every), ctx)
	if err := backoff.RetryNotify(connect, b, notify); err != nil {
		return errcode.Wrap(errcode.MapDriverErr(err, errcode.NotAssociated), op, err)
	}
	s.up.Store(true)

	if h, ok := s.link.(hwAddresser); ok {
		if mac, err := h.GetHardwareAddr(); err == nil {
			logx.Line("net", "network config: ssid", s.params.Ssid, "mac", mac.String())
			return nil
		}
	}
	logx.Line("net", "network config: ssid", s.params.Ssid)
	return nil
}
