package basic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/datera/ddct/pkg/config"
	"github.com/datera/ddct/pkg/util/poll"
	"github.com/datera/ddct/pkg/util/shell"
	"github.com/datera/ddct/pkg/validate/check"
)

// arpPoll bounds the wait for a neighbor entry to become REACHABLE.
//
//nolint:gochecknoglobals
var arpPoll = poll.Settings{Attempts: 6, Interval: time.Second}

var errNoConfig = errors.New("run configuration is not set")

type endpoint struct {
	id       string
	name     string
	label    string
	address  func(*config.Config) string
	pingCode string
	arpCode  string
}

// NewMgmtCheck verifies the management address answers pings and ARP.
func NewMgmtCheck() check.Definition {
	return newConnectionCheck(endpoint{
		id:       "basic.mgmt",
		name:     "MGMT",
		label:    "management",
		address:  func(c *config.Config) string { return c.MgmtIP },
		pingCode: CodeMgmtPing,
		arpCode:  CodeMgmtARP,
	})
}

// NewVIP1Check verifies the first access VIP answers pings and ARP.
func NewVIP1Check() check.Definition {
	return newConnectionCheck(endpoint{
		id:       "basic.vip1",
		name:     "VIP1",
		label:    "vip1",
		address:  func(c *config.Config) string { return c.VIP1IP },
		pingCode: CodeVIP1Ping,
		arpCode:  CodeVIP1ARP,
	})
}

// NewVIP2Check verifies the second access VIP, when one is configured.
func NewVIP2Check() check.Definition {
	return newConnectionCheck(endpoint{
		id:       "basic.vip2",
		name:     "VIP2",
		label:    "vip2",
		address:  func(c *config.Config) string { return c.VIP2IP },
		pingCode: CodeVIP2Ping,
		arpCode:  CodeVIP2ARP,
	})
}

func newConnectionCheck(ep endpoint) check.Definition {
	return check.Definition{
		ID:       ep.id,
		Name:     ep.name,
		Category: check.CategoryNetwork,
		Tags:     []string{check.TagBasic, check.TagConnection},
		Func: func(ctx context.Context, target check.Target, report *check.Reporter) error {
			if target.Config == nil {
				return errNoConfig
			}

			ip := ep.address(target.Config)
			if ip == "" {
				return nil
			}

			target.Progressf("Checking %s connectivity to %s", ep.label, ip)

			if !shell.Succeeds(ctx, target.Shell, fmt.Sprintf("ping -c 2 -W 1 %s", ip)) {
				_ = report.Failf(ep.pingCode, MsgPingFailed, ep.label, ip)
			}

			reachable := poll.Until(ctx, arpPoll, func(ctx context.Context) bool {
				return shell.Succeeds(ctx, target.Shell, fmt.Sprintf("ip neigh show %s | grep REACHABLE", ip))
			})

			if !reachable {
				_ = report.Failf(ep.arpCode, MsgARPNotReachable, ep.label, ip)
			}

			return nil
		},
	}
}
