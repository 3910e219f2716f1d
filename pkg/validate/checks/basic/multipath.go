package basic

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/datera/ddct/pkg/util/mpconf"
	"github.com/datera/ddct/pkg/util/osinfo"
	"github.com/datera/ddct/pkg/util/shell"
	"github.com/datera/ddct/pkg/validate/check"
)

// Expected values of the Datera entries in multipath.conf.
const (
	dateraVendor           = "DATERA"
	dateraProduct          = "IBLOCK"
	dateraExceptionVendor  = "DATERA.*"
	dateraExceptionProduct = "IBLOCK.*"
)

// NewMultipathCheck verifies multipath is installed and multipathd runs.
func NewMultipathCheck() check.Definition {
	return check.Definition{
		ID:       "basic.multipath",
		Name:     "Multipath",
		Category: check.CategoryStorage,
		Tags:     []string{check.TagBasic, tagMultipath},
		Func: func(ctx context.Context, target check.Target, report *check.Reporter) error {
			target.Progressf("Checking multipath settings")

			if !shell.HasBinary(ctx, target.Shell, "multipath") {
				_ = report.Fail(MsgMultipathMissing, CodeMultipathMissing)
			}

			if !serviceActive(ctx, target.Shell, "multipathd") {
				_ = report.Fail(MsgMultipathdNotActive, CodeMultipathdNotActive)
			}

			return nil
		},
	}
}

// NewMultipathConfCheck verifies multipath.conf carries the defaults,
// device and blacklist exception entries Datera volumes need.
func NewMultipathConfCheck() check.Definition {
	return check.Definition{
		ID:       "basic.multipath_conf",
		Name:     "Multipath Conf",
		Category: check.CategoryStorage,
		Tags:     []string{check.TagBasic, tagMultipath},
		Func:     checkMultipathConf,
	}
}

func checkMultipathConf(_ context.Context, target check.Target, report *check.Reporter) error {
	found, err := fileExists(target.Path(multipathConfPath))
	if err != nil {
		return err
	}

	if !found {
		return report.Fail(MsgMultipathConfMissing, CodeMultipathConfMissing)
	}

	content, err := os.ReadFile(target.Path(multipathConfPath))
	if err != nil {
		return fmt.Errorf("reading %s: %w", multipathConfPath, err)
	}

	conf, err := mpconf.Parse(string(content))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", multipathConfPath, err)
	}

	osID, err := osinfo.Detect(target.Root)
	if err != nil {
		return fmt.Errorf("detecting operating system: %w", err)
	}

	checkDefaults(conf, osID, report)

	if err := checkDevices(conf, report); err != nil {
		return err
	}

	checkBlacklistExceptions(conf, report)

	return nil
}

func checkDefaults(conf *mpconf.Config, osID string, report *check.Reporter) {
	defaults, ok := conf.Section("defaults")
	if !ok {
		_ = report.Fail(MsgDefaultsMissing, CodeDefaultsMissing)

		return
	}

	// Ubuntu's multipath-tools spells the option differently.
	attr, code := "checker_timeout", CodeCheckerTimeoutMissing
	if osID == osinfo.Ubuntu {
		attr, code = "checker_timer", CodeCheckerTimerMissing
	}

	if !defaults.Has(attr) {
		_ = report.Failf(code, MsgDefaultsAttrMissing, attr)
	}
}

func checkDevices(conf *mpconf.Config, report *check.Reporter) error {
	devices, ok := conf.Section("devices")
	if !ok {
		_ = report.Fail(MsgDevicesMissing, CodeDevicesMissing)

		return nil
	}

	var datera *mpconf.Block

	for _, device := range devices.Children("device") {
		if vendor, _ := device.Get("vendor"); vendor == dateraVendor {
			datera = &device
		}
	}

	if datera == nil {
		return report.Fail(MsgDateraDeviceMissing, CodeDateraDeviceMissing)
	}

	if product, _ := datera.Get("product"); product != dateraProduct {
		_ = report.Fail(MsgDateraProductInvalid, CodeDateraProductInvalid)
	}

	return nil
}

func checkBlacklistExceptions(conf *mpconf.Config, report *check.Reporter) {
	exceptions, ok := conf.Section("blacklist_exceptions")
	if !ok {
		_ = report.Fail(MsgBlacklistExcMissing, CodeBlacklistExceptionsMissing)

		return
	}

	var datera *mpconf.Block

	for _, device := range exceptions.Children("device") {
		if vendor, _ := device.Get("vendor"); strings.HasPrefix(strings.ToUpper(vendor), dateraVendor) {
			datera = &device
		}
	}

	if datera == nil {
		_ = report.Fail(MsgDateraExceptionMissing, CodeDateraExceptionMissing)

		return
	}

	if vendor, _ := datera.Get("vendor"); vendor != dateraExceptionVendor {
		_ = report.Fail(MsgExceptionVendorInvalid, CodeDateraExceptionVendorInvalid)
	}

	if product, _ := datera.Get("product"); product != dateraExceptionProduct {
		_ = report.Fail(MsgExceptionProductBad, CodeDateraExceptionProductBad)
	}
}
