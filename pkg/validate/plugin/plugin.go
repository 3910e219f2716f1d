// Package plugin resolves optional check plugins by name from a static
// catalog and registers their checks.
package plugin

import (
	"fmt"
	"slices"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/datera/ddct/pkg/validate/check"
	"github.com/datera/ddct/pkg/validate/checks/plugins/cindervolume"
)

// LoadFunc produces the check definitions contributed by one plugin.
type LoadFunc func() []check.Definition

// Catalog maps plugin names to their loaders.
type Catalog map[string]LoadFunc

// Names returns the plugin names in sorted order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// DefaultCatalog returns the plugins shipped with the tool.
func DefaultCatalog() Catalog {
	return Catalog{
		cindervolume.PluginName: cindervolume.LoadChecks,
	}
}

// UnknownPluginError is returned when a requested plugin is not in the catalog.
type UnknownPluginError struct {
	Name      string
	Available []string
}

func (e *UnknownPluginError) Error() string {
	return fmt.Sprintf("unrecognized check plugin requested: %s (available: %s)",
		e.Name, strings.Join(e.Available, ", "))
}

// Resolve returns the definitions of the named plugins, in request order.
// Every name is resolved before any loader runs; duplicates are loaded once.
func Resolve(catalog Catalog, names []string) ([]check.Definition, error) {
	seen := sets.New[string]()
	loaders := make([]LoadFunc, 0, len(names))

	for _, name := range names {
		if seen.Has(name) {
			continue
		}

		load, ok := catalog[name]
		if !ok {
			return nil, &UnknownPluginError{Name: name, Available: catalog.Names()}
		}

		seen.Insert(name)
		loaders = append(loaders, load)
	}

	var defs []check.Definition
	for _, load := range loaders {
		defs = append(defs, load()...)
	}

	return defs, nil
}

// Load resolves the named plugins and registers their checks. Nothing is
// registered when a name is unknown.
func Load(registry *check.CheckRegistry, catalog Catalog, names []string) error {
	defs, err := Resolve(catalog, names)
	if err != nil {
		return err
	}

	for _, def := range defs {
		if err := registry.Register(def); err != nil {
			return fmt.Errorf("registering plugin check: %w", err)
		}
	}

	return nil
}
