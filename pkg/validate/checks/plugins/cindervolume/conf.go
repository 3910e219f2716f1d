package cindervolume

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/ini.v1"

	"github.com/datera/ddct/pkg/validate/check"
)

const cinderConfPath = "/etc/cinder/cinder.conf"

// cinderConfOptions loads the oslo.config INI dialect: section names are
// case-sensitive, '#' is a literal inside values and bare keys are allowed.
//
//nolint:gochecknoglobals
var cinderConfOptions = ini.LoadOptions{
	IgnoreInlineComment: true,
	AllowBooleanKeys:    true,
}

func readCinderConf(target check.Target) (*ini.File, error) {
	conf, err := ini.LoadSources(cinderConfOptions, target.Path(cinderConfPath))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", cinderConfPath, err)
	}

	return conf, nil
}

// defaultSection returns [DEFAULT] when it holds any key. The library always
// materializes the default section, so an empty one counts as missing.
func defaultSection(conf *ini.File) (*ini.Section, bool) {
	sec := conf.Section(ini.DefaultSection)

	return sec, len(sec.Keys()) > 0
}

func dateraSection(conf *ini.File) (*ini.Section, bool) {
	for _, name := range []string{"datera", "Datera"} {
		if sec, err := conf.GetSection(name); err == nil {
			return sec, true
		}
	}

	return nil, false
}

// value returns the trimmed value of key and whether the key is present.
func value(sec *ini.Section, key string) (string, bool) {
	if !sec.HasKey(key) {
		return "", false
	}

	return sec.Key(key).String(), true
}

func isTrue(sec *ini.Section, key string) bool {
	if !sec.HasKey(key) {
		return false
	}

	enabled, err := sec.Key(key).Bool()

	return err == nil && enabled
}

func newVolumeConfCheck() check.Definition {
	return check.Definition{
		ID:       "cinder_volume.conf",
		Name:     "Cinder Volume Conf",
		Category: check.CategoryDriver,
		Tags:     []string{check.TagDriver, check.TagPlugin, check.TagConfig},
		Func:     checkVolumeConf,
	}
}

func checkVolumeConf(_ context.Context, target check.Target, report *check.Reporter) error {
	target.Progressf("Checking %s", cinderConfPath)

	conf, err := readCinderConf(target)
	if err != nil {
		return err
	}

	if defaults, ok := defaultSection(conf); !ok {
		_ = report.Failf(CodeDefaultSectionMissing, "[DEFAULT] section missing from %s", cinderConfPath)
	} else {
		if backends, ok := value(defaults, "enabled_backends"); ok && !strings.Contains(backends, "datera") {
			_ = report.Failf(CodeBackendNotEnabled, "datera is not set under enabled_backends in %s", cinderConfPath)
		}

		if volumeType, ok := value(defaults, "default_volume_type"); ok && !strings.Contains(volumeType, "datera") {
			report.Warnf(CodeNotDefaultVolumeType, "datera is not set as default_volume_type in %s", cinderConfPath)
		}
	}

	datera, ok := dateraSection(conf)
	if !ok {
		return report.Failf(CodeDateraSectionMissing, "[datera] section missing from %s", cinderConfPath)
	}

	cfg := target.Config

	if v, _ := value(datera, "san_ip"); cfg.MgmtIP == "" || !strings.Contains(v, cfg.MgmtIP) {
		_ = report.Failf(CodeSanIPMismatch, "san_ip line is missing or not matching ip address: %s", cfg.MgmtIP)
	}

	if v, _ := value(datera, "san_login"); cfg.Username == "" || !strings.Contains(v, cfg.Username) {
		_ = report.Failf(CodeSanLoginMismatch, "san_login line is missing or not matching username: %s", cfg.Username)
	}

	if v, _ := value(datera, "san_password"); cfg.Password == "" || !strings.Contains(v, cfg.Password) {
		_ = report.Fail("san_password line is missing or not matching the configured password", CodeSanPasswordMismatch)
	}

	if v, _ := value(datera, "volume_backend_name"); !strings.Contains(v, "datera") {
		_ = report.Fail("volume_backend_name is not set", CodeBackendNameMissing)
	}

	if !isTrue(datera, "datera_debug") {
		report.Warn("datera_debug is not enabled", CodeDebugDisabled)
	}

	if !datera.HasKey("datera_volume_type_defaults") {
		report.Warn("datera_volume_type_defaults is not set, consider setting minimum QoS values here",
			CodeTypeDefaultsMissing)
	}

	return nil
}

func newImageCacheConfCheck() check.Definition {
	return check.Definition{
		ID:       "cinder_volume.image_cache_conf",
		Name:     "Cinder Image Cache Conf",
		Category: check.CategoryDriver,
		Tags:     []string{check.TagDriver, check.TagPlugin, check.TagConfig, tagImage},
		Func: func(_ context.Context, target check.Target, report *check.Reporter) error {
			conf, err := readCinderConf(target)
			if err != nil {
				return err
			}

			datera, ok := dateraSection(conf)
			if !ok {
				return report.Failf(CodeDateraSectionMissing, "[datera] section missing from %s", cinderConfPath)
			}

			if !isTrue(datera, "datera_enable_image_cache") {
				_ = report.Fail("datera_enable_image_cache not set in cinder.conf", CodeImageCacheDisabled)
			}

			if v, _ := value(datera, "datera_image_cache_volume_type_id"); !isVolumeTypeID(v) {
				_ = report.Fail("datera_image_cache_volume_type_id is not set to a valid volume type id in cinder.conf",
					CodeImageCacheTypeInvalid)
			}

			return nil
		},
	}
}

// isVolumeTypeID reports whether s is a random (version 4) UUID, the form
// Cinder assigns to volume types.
func isVolumeTypeID(s string) bool {
	id, err := uuid.Parse(s)

	return err == nil && id.Version() == 4
}
