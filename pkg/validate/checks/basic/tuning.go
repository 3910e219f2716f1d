package basic

import (
	"context"
	"fmt"

	"github.com/datera/ddct/pkg/util/shell"
	"github.com/datera/ddct/pkg/validate/check"
)

// Shell commands used by the kernel tuning checks.
const (
	sysctlGrep         = "sysctl --all 2>/dev/null | grep '%s'"
	arpAnnounceSetting = "net.ipv4.conf.all.arp_announce = 2"
	arpIgnoreSetting   = "net.ipv4.conf.all.arp_ignore = 1"
	governorsCmd       = "cpupower frequency-info --governors | grep performance"
)

// NewARPCheck verifies the kernel ARP settings needed for multi-VIP setups.
func NewARPCheck() check.Definition {
	return check.Definition{
		ID:       "basic.arp",
		Name:     "ARP",
		Category: check.CategoryNetwork,
		Tags:     []string{check.TagBasic, tagARP},
		Func: func(ctx context.Context, target check.Target, report *check.Reporter) error {
			target.Progressf("Checking ARP settings")

			if !shell.Succeeds(ctx, target.Shell, fmt.Sprintf(sysctlGrep, arpAnnounceSetting)) {
				_ = report.Fail(MsgARPAnnounce, CodeARPAnnounce)
			}

			if !shell.Succeeds(ctx, target.Shell, fmt.Sprintf(sysctlGrep, arpIgnoreSetting)) {
				_ = report.Fail(MsgARPIgnore, CodeARPIgnore)
			}

			return nil
		},
	}
}

// NewIRQCheck verifies irqbalance is turned off.
func NewIRQCheck() check.Definition {
	return check.Definition{
		ID:       "basic.irq",
		Name:     "IRQ",
		Category: check.CategoryOS,
		Tags:     []string{check.TagBasic, tagIRQ},
		Func: func(ctx context.Context, target check.Target, report *check.Reporter) error {
			target.Progressf("Checking irqbalance settings, (should be turned off)")

			if serviceActive(ctx, target.Shell, "irqbalance") {
				return report.Fail(MsgIRQBalanceActive, CodeIRQBalanceActive)
			}

			return nil
		},
	}
}

// NewCPUFreqCheck verifies the performance CPU governor is available.
func NewCPUFreqCheck() check.Definition {
	return check.Definition{
		ID:       "basic.cpufreq",
		Name:     "CPUFREQ",
		Category: check.CategoryOS,
		Tags:     []string{check.TagBasic, tagCPUFreq},
		Func: func(ctx context.Context, target check.Target, report *check.Reporter) error {
			target.Progressf("Checking cpufreq settings")

			if !shell.HasBinary(ctx, target.Shell, "cpupower") {
				return report.Fail(MsgCPUPowerMissing, CodeCPUPowerMissing)
			}

			if !shell.Succeeds(ctx, target.Shell, governorsCmd) {
				return report.Fail(MsgPerformanceGovernorNA, CodePerformanceGovernorNA)
			}

			return nil
		},
	}
}

// serviceActive reports whether the named service is running, using
// systemctl where available and the SysV service wrapper otherwise.
func serviceActive(ctx context.Context, r shell.Runner, name string) bool {
	if shell.HasBinary(ctx, r, "systemctl") {
		return shell.Succeeds(ctx, r, fmt.Sprintf("systemctl status %s | grep 'Active: active'", name))
	}

	return shell.Succeeds(ctx, r, fmt.Sprintf("service %s status | grep 'Active: active'", name))
}
