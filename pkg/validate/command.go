// Package validate implements the check, tags and list commands.
package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"k8s.io/cli-runtime/pkg/genericiooptions"

	"github.com/datera/ddct/pkg/cmd"
	"github.com/datera/ddct/pkg/config"
	"github.com/datera/ddct/pkg/doctor"
	"github.com/datera/ddct/pkg/util/api"
	"github.com/datera/ddct/pkg/util/shell"
	"github.com/datera/ddct/pkg/validate/check"
)

// Verify commands implement cmd.Command interface at compile time.
var (
	_ cmd.Command = (*CheckCommand)(nil)
	_ cmd.Command = (*TagsCommand)(nil)
	_ cmd.Command = (*ListCommand)(nil)
)

// CheckCommand runs the selected checks against the local host.
type CheckCommand struct {
	*SharedOptions

	// ConfigPath is an explicit config file, searched for when empty.
	ConfigPath string

	// Config overrides, applied over file and environment values.
	MgmtIP   string
	VIP1IP   string
	VIP2IP   string
	Username string
	Password string
	Tenant   string

	// IncludeTags and ExcludeTags select the checks to run.
	IncludeTags []string
	ExcludeTags []string

	// Root is the filesystem root host files are read from.
	Root string

	// Config is the merged run configuration (populated during Complete)
	Config *config.Config
}

// NewCheckCommand creates a CheckCommand with defaults.
func NewCheckCommand(streams genericiooptions.IOStreams, options ...CommandOption) *CheckCommand {
	c := &CheckCommand{
		SharedOptions: NewSharedOptions(streams),
		Root:          "/",
	}

	for _, opt := range options {
		opt(c.SharedOptions)
	}

	return c
}

// AddFlags registers command-specific flags with the provided FlagSet.
func (c *CheckCommand) AddFlags(fs *pflag.FlagSet) {
	c.SharedOptions.AddFlags(fs)

	fs.StringVar(&c.ConfigPath, "config", "", flagDescConfig)
	fs.StringVar(&c.MgmtIP, "mgmt-ip", "", flagDescMgmtIP)
	fs.StringVar(&c.VIP1IP, "vip1-ip", "", flagDescVIP1IP)
	fs.StringVar(&c.VIP2IP, "vip2-ip", "", flagDescVIP2IP)
	fs.StringVar(&c.Username, "username", "", flagDescUsername)
	fs.StringVar(&c.Password, "password", "", flagDescPassword)
	fs.StringVar(&c.Tenant, "tenant", "", flagDescTenant)
	fs.StringSliceVar(&c.IncludeTags, "tags", nil, flagDescTags)
	fs.StringSliceVar(&c.ExcludeTags, "not-tags", nil, flagDescNotTags)
	fs.StringVar(&c.Root, "root", c.Root, flagDescRoot)
}

// Complete loads the configuration and builds the host and API handles.
func (c *CheckCommand) Complete() error {
	if err := c.SharedOptions.Complete(); err != nil {
		return fmt.Errorf("completing shared options: %w", err)
	}

	cfg, err := config.Load(config.Options{
		Path: c.ConfigPath,
		Overrides: map[string]string{
			config.KeyMgmtIP:   c.MgmtIP,
			config.KeyVIP1IP:   c.VIP1IP,
			config.KeyVIP2IP:   c.VIP2IP,
			config.KeyUsername: c.Username,
			config.KeyPassword: c.Password,
			config.KeyTenant:   c.Tenant,
		},
	})
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	c.Config = cfg

	if c.api == nil {
		c.api = api.NewHTTPClient(api.Options{
			Host:       cfg.MgmtIP,
			Username:   cfg.Username,
			Password:   cfg.Password,
			Tenant:     cfg.Tenant,
			APIVersion: cfg.APIVersion,
		})
	}

	if c.shell == nil {
		c.shell = shell.NewExec()
	}

	return nil
}

// Validate checks that all required options are valid.
func (c *CheckCommand) Validate() error {
	if err := c.SharedOptions.Validate(); err != nil {
		return fmt.Errorf("validating shared options: %w", err)
	}

	if c.Root == "" {
		return errors.New("root cannot be empty")
	}

	if c.Config == nil {
		return errors.New("config not loaded")
	}

	if err := c.Config.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	return nil
}

// Run executes the selected checks, prints the report and returns
// ErrChecksFailed when the verdict is FAIL. Every selected check runs to
// completion.
func (c *CheckCommand) Run(ctx context.Context) error {
	target := check.Target{
		Config: c.Config,
		API:    c.api,
		Shell:  c.shell,
		Root:   c.Root,
		IO:     c.IO,
	}

	c.IO.Errorf("Running checks against %s", c.Config.MgmtIP)

	report, err := c.runner.RunChecks(ctx, target, doctor.RunOptions{
		Plugins:     c.Plugins,
		IncludeTags: c.IncludeTags,
		ExcludeTags: c.ExcludeTags,
	})
	if err != nil {
		return fmt.Errorf("running checks: %w", err)
	}

	if err := c.newPrinter().PrintReport(report); err != nil {
		return fmt.Errorf("printing report: %w", err)
	}

	if !report.Verdict.Success() {
		return ErrChecksFailed
	}

	return nil
}

// TagsCommand lists the tags available for selection.
type TagsCommand struct {
	*SharedOptions
}

// NewTagsCommand creates a TagsCommand with defaults.
func NewTagsCommand(streams genericiooptions.IOStreams, options ...CommandOption) *TagsCommand {
	c := &TagsCommand{
		SharedOptions: NewSharedOptions(streams),
	}

	for _, opt := range options {
		opt(c.SharedOptions)
	}

	return c
}

// AddFlags registers command-specific flags with the provided FlagSet.
func (c *TagsCommand) AddFlags(fs *pflag.FlagSet) {
	c.SharedOptions.AddFlags(fs)
}

// Complete populates Options and performs pre-validation setup.
func (c *TagsCommand) Complete() error {
	if err := c.SharedOptions.Complete(); err != nil {
		return fmt.Errorf("completing shared options: %w", err)
	}

	return nil
}

// Validate checks that all required options are valid.
func (c *TagsCommand) Validate() error {
	if err := c.SharedOptions.Validate(); err != nil {
		return fmt.Errorf("validating shared options: %w", err)
	}

	return nil
}

// Run prints the sorted union of tags. No check is executed.
func (c *TagsCommand) Run(_ context.Context) error {
	tags, err := c.runner.ListTags(c.Plugins)
	if err != nil {
		return fmt.Errorf("listing tags: %w", err)
	}

	if err := c.newPrinter().PrintTags(tags); err != nil {
		return fmt.Errorf("printing tags: %w", err)
	}

	return nil
}

// ListCommand lists the checks a run would choose from.
type ListCommand struct {
	*SharedOptions

	IncludeTags []string
	ExcludeTags []string
}

// NewListCommand creates a ListCommand with defaults.
func NewListCommand(streams genericiooptions.IOStreams, options ...CommandOption) *ListCommand {
	c := &ListCommand{
		SharedOptions: NewSharedOptions(streams),
	}

	for _, opt := range options {
		opt(c.SharedOptions)
	}

	return c
}

// AddFlags registers command-specific flags with the provided FlagSet.
func (c *ListCommand) AddFlags(fs *pflag.FlagSet) {
	c.SharedOptions.AddFlags(fs)

	fs.StringSliceVar(&c.IncludeTags, "tags", nil, flagDescListTags)
	fs.StringSliceVar(&c.ExcludeTags, "not-tags", nil, flagDescListNoTags)
}

// Complete populates Options and performs pre-validation setup.
func (c *ListCommand) Complete() error {
	if err := c.SharedOptions.Complete(); err != nil {
		return fmt.Errorf("completing shared options: %w", err)
	}

	return nil
}

// Validate checks that all required options are valid.
func (c *ListCommand) Validate() error {
	if err := c.SharedOptions.Validate(); err != nil {
		return fmt.Errorf("validating shared options: %w", err)
	}

	return nil
}

// Run prints the checks matching the tag selection. No check is executed.
func (c *ListCommand) Run(_ context.Context) error {
	checks, err := c.runner.ListChecks(c.Plugins)
	if err != nil {
		return fmt.Errorf("listing checks: %w", err)
	}

	selected := check.Select(checks, c.IncludeTags, c.ExcludeTags)

	if err := c.newPrinter().PrintChecks(selected); err != nil {
		return fmt.Errorf("printing checks: %w", err)
	}

	return nil
}
