// Package basic holds the built-in host checks that every run includes
// unless filtered out by tag.
package basic

import (
	"github.com/datera/ddct/pkg/validate/check"
)

// Checks returns the built-in check definitions in reporting order.
func Checks() []check.Definition {
	return []check.Definition{
		NewOSCheck(),
		NewISCSICheck(),
		NewUdevCheck(),
		NewARPCheck(),
		NewIRQCheck(),
		NewCPUFreqCheck(),
		NewBlockDeviceCheck(),
		NewMultipathCheck(),
		NewMultipathConfCheck(),
		NewMgmtCheck(),
		NewVIP1Check(),
		NewVIP2Check(),
		NewCallhomeCheck(),
	}
}
