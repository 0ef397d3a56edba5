// Command envnode is the monitoring node firmware. The same entry runs on
// the Pico (tinygo flash -target=pico .) and on a host bench (go run .).
package main

import (
	"time"

	"github.com/google/uuid"

	"envnode-go/errcode"
	"envnode-go/platform"
	"envnode-go/services/config"
	"envnode-go/x/logx"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Line("main", "config rejected, using defaults:", err.Error())
		s := cfg.Secrets
		cfg = config.Defaults()
		cfg.Secrets = s
	}

	// Without hardware there is nothing to recover with; keep trying.
	var hw platform.Hardware
	for {
		if hw, err = platform.Open(cfg); err == nil {
			break
		}
		logx.Line("main", "open:", string(errcode.Of(err)), err.Error())
		time.Sleep(cfg.LogInterval)
	}
	time.Sleep(hw.BootDelay)

	session := uuid.NewString()
	logx.Line("main", "boot", hw.Board.Name, "session", session)

	ctx, stop := rootContext()
	defer stop()
	n := platform.Build(cfg, hw, session)
	_ = n.Run(ctx)
}
