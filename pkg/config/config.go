package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	"sigs.k8s.io/yaml"
)

// Config keys, shared by files, environment overrides and the decoder.
const (
	KeyMgmtIP     = "mgmt_ip"
	KeyVIP1IP     = "vip1_ip"
	KeyVIP2IP     = "vip2_ip"
	KeyUsername   = "username"
	KeyPassword   = "password"
	KeyTenant     = "tenant"
	KeyAPIVersion = "api_version"
)

const (
	DefaultAPIVersion = "2.2"
	DefaultTenant     = "/root"
)

// Config is the run configuration shared, read-only, by every check.
type Config struct {
	MgmtIP     string `json:"mgmt_ip"     mapstructure:"mgmt_ip"`
	VIP1IP     string `json:"vip1_ip"     mapstructure:"vip1_ip"`
	VIP2IP     string `json:"vip2_ip"     mapstructure:"vip2_ip"`
	Username   string `json:"username"    mapstructure:"username"`
	Password   string `json:"-"           mapstructure:"password"`
	Tenant     string `json:"tenant"      mapstructure:"tenant"`
	APIVersion string `json:"api_version" mapstructure:"api_version"`
}

//nolint:gochecknoglobals
var envKeys = map[string]string{
	"DAT_MGMT":   KeyMgmtIP,
	"DAT_VIP1":   KeyVIP1IP,
	"DAT_VIP2":   KeyVIP2IP,
	"DAT_USER":   KeyUsername,
	"DAT_PASS":   KeyPassword,
	"DAT_TENANT": KeyTenant,
	"DAT_API":    KeyAPIVersion,
}

// SearchPaths returns the locations searched for a config file when none is
// given explicitly, in priority order.
func SearchPaths() []string {
	paths := []string{"datera-config.json"}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, "datera-config.json"),
			filepath.Join(home, ".datera-config.json"),
			filepath.Join(home, ".datera-config"),
		)
	}

	return paths
}

// Options controls how Load assembles a Config.
type Options struct {
	// Path is an explicit config file. When empty, SearchPaths are searched
	// and a missing file is not an error.
	Path string

	// Environ is consulted for DAT_* overrides. Defaults to os.Environ.
	Environ []string

	// Overrides take precedence over file and environment values.
	// Empty values are ignored.
	Overrides map[string]string
}

// Load reads the config file, applies environment and explicit overrides,
// and decodes the merged key map.
func Load(opts Options) (*Config, error) {
	values := map[string]any{
		KeyTenant:     DefaultTenant,
		KeyAPIVersion: DefaultAPIVersion,
	}

	path, err := resolvePath(opts.Path)
	if err != nil {
		return nil, err
	}

	if path != "" {
		fileValues, err := readFile(path)
		if err != nil {
			return nil, err
		}

		for k, v := range fileValues {
			values[k] = v
		}
	}

	environ := opts.Environ
	if environ == nil {
		environ = os.Environ()
	}

	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || value == "" {
			continue
		}

		if key, known := envKeys[name]; known {
			values[key] = value
		}
	}

	for k, v := range opts.Overrides {
		if v != "" {
			values[k] = v
		}
	}

	cfg := &Config{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating config decoder: %w", err)
	}

	if err := decoder.Decode(values); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the keys every catalog check relies on are present.
func (c *Config) Validate() error {
	var missing []string

	if c.MgmtIP == "" {
		missing = append(missing, KeyMgmtIP)
	}
	if c.VIP1IP == "" {
		missing = append(missing, KeyVIP1IP)
	}
	if c.Username == "" {
		missing = append(missing, KeyUsername)
	}
	if c.Password == "" {
		missing = append(missing, KeyPassword)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required config values: %s", strings.Join(missing, ", "))
	}

	return nil
}

func resolvePath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}

		return explicit, nil
	}

	for _, p := range SearchPaths() {
		info, err := os.Stat(p)

		switch {
		case err == nil && !info.IsDir():
			return p, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("config file %s: %w", p, err)
		}
	}

	return "", nil
}

// readFile parses a TOML file by extension, anything else as YAML (a superset of JSON).
func readFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	values := make(map[string]any)

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("parsing TOML config %s: %w", path, err)
		}

		return values, nil
	}

	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return values, nil
}
