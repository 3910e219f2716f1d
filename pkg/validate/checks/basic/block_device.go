package basic

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/datera/ddct/pkg/validate/check"
)

// NewBlockDeviceCheck verifies the kernel command line selects the noop
// I/O scheduler.
func NewBlockDeviceCheck() check.Definition {
	return check.Definition{
		ID:       "basic.block_device",
		Name:     "Block Devices",
		Category: check.CategoryStorage,
		Tags:     []string{check.TagBasic, tagBlockDevice},
		Func: func(_ context.Context, target check.Target, report *check.Reporter) error {
			target.Progressf("Checking block device settings")

			found, err := fileExists(target.Path(grubDefaultsPath))
			if err != nil {
				return err
			}

			if !found {
				return report.Failf(CodeGrubMissing, MsgGrubMissing, grubDefaultsPath)
			}

			content, err := os.ReadFile(target.Path(grubDefaultsPath))
			if err != nil {
				return fmt.Errorf("reading %s: %w", grubDefaultsPath, err)
			}

			var cmdlines []string

			scanner := bufio.NewScanner(bytes.NewReader(content))
			for scanner.Scan() {
				if line := scanner.Text(); strings.HasPrefix(line, grubCmdlinePrefix) {
					cmdlines = append(cmdlines, line)
				}
			}

			if len(cmdlines) != 1 {
				return report.Fail(MsgGrubCmdlineMissing, CodeGrubCmdlineMissing)
			}

			if !strings.Contains(cmdlines[0], noopSchedulerParam) {
				return report.Fail(MsgSchedulerNotNoop, CodeSchedulerNotNoop)
			}

			return nil
		},
	}
}
