package basic

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/datera/ddct/pkg/util/osinfo"
	"github.com/datera/ddct/pkg/util/shell"
	"github.com/datera/ddct/pkg/validate/check"
)

// NewOSCheck verifies the host runs a supported Linux distribution.
func NewOSCheck() check.Definition {
	return check.Definition{
		ID:       "basic.os",
		Name:     "OS",
		Category: check.CategoryOS,
		Tags:     []string{check.TagBasic, tagOS},
		Func: func(_ context.Context, target check.Target, report *check.Reporter) error {
			id, err := osinfo.Detect(target.Root)
			if err != nil {
				return fmt.Errorf("detecting operating system: %w", err)
			}

			if id == "" {
				return report.Fail(MsgUnsupportedOS, CodeUnsupportedOS)
			}

			return nil
		},
	}
}

// NewISCSICheck verifies the open-iscsi tooling is installed.
func NewISCSICheck() check.Definition {
	return check.Definition{
		ID:       "basic.iscsi",
		Name:     "ISCSI",
		Category: check.CategoryStorage,
		Tags:     []string{check.TagBasic, tagISCSI},
		Func: func(ctx context.Context, target check.Target, report *check.Reporter) error {
			target.Progressf("Checking ISCSI settings")

			if !shell.HasBinary(ctx, target.Shell, "iscsiadm") {
				return report.Fail(MsgISCSIAdmMissing, CodeISCSIAdmMissing)
			}

			return nil
		},
	}
}

// NewUdevCheck verifies the Datera udev rules and their helper script are
// installed.
func NewUdevCheck() check.Definition {
	return check.Definition{
		ID:       "basic.udev",
		Name:     "UDEV",
		Category: check.CategoryStorage,
		Tags:     []string{check.TagBasic, tagUdev},
		Func: func(_ context.Context, target check.Target, report *check.Reporter) error {
			target.Progressf("Checking udev rules config")

			rulesFound, err := fileExists(target.Path(udevRulesPath))
			if err != nil {
				return err
			}

			if !rulesFound {
				_ = report.Fail(MsgUdevRulesMissing, CodeUdevRulesMissing)
			}

			scriptFound, err := fileExists(target.Path(serialScriptPath))
			if err != nil {
				return err
			}

			if !scriptFound {
				_ = report.Fail(MsgSerialScriptMissing, CodeSerialScriptMissing)
			}

			return nil
		},
	}
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
}
