package basic

import (
	"context"
	"errors"
	"fmt"

	"github.com/datera/ddct/pkg/util/jq"
	"github.com/datera/ddct/pkg/validate/check"
)

var errNoAPI = errors.New("management API client is not set")

// NewCallhomeCheck warns when the cluster does not phone home.
func NewCallhomeCheck() check.Definition {
	return check.Definition{
		ID:       "basic.callhome",
		Name:     "CALLHOME",
		Category: check.CategorySetup,
		Tags:     []string{check.TagBasic, tagSetup},
		Func: func(ctx context.Context, target check.Target, report *check.Reporter) error {
			if target.API == nil {
				return errNoAPI
			}

			system, err := target.API.System(ctx)
			if err != nil {
				return fmt.Errorf("fetching system info: %w", err)
			}

			enabled, err := jq.Query[bool](system, ".callhome_enabled")
			if err != nil && !errors.Is(err, jq.ErrNotFound) {
				return fmt.Errorf("reading callhome_enabled: %w", err)
			}

			if !enabled {
				report.Warn(MsgCallhomeDisabled, CodeCallhomeDisabled)
			}

			return nil
		},
	}
}
