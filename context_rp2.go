//go:build rp2040 || rp2350

package main

import "context"

// rootContext never ends; the board runs until power is removed.
func rootContext() (context.Context, context.CancelFunc) {
	return context.WithCancel(context.Background())
}
