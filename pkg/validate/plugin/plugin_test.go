package plugin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/datera/ddct/pkg/validate/check"
	"github.com/datera/ddct/pkg/validate/plugin"

	. "github.com/onsi/gomega"
)

func definition(id string, tags ...string) check.Definition {
	return check.Definition{
		ID:       id,
		Name:     id,
		Category: check.CategoryDriver,
		Tags:     tags,
		Func: func(context.Context, check.Target, *check.Reporter) error {
			return nil
		},
	}
}

func testCatalog(loads map[string]*int) plugin.Catalog {
	return plugin.Catalog{
		"p1": func() []check.Definition {
			*loads["p1"]++

			return []check.Definition{definition("p1.a", "driver"), definition("p1.b", "driver", "config")}
		},
		"p2": func() []check.Definition {
			*loads["p2"]++

			return []check.Definition{definition("p2.a", "image")}
		},
	}
}

func counters() map[string]*int {
	return map[string]*int{"p1": new(int), "p2": new(int)}
}

func TestCatalog_Names(t *testing.T) {
	g := NewWithT(t)

	g.Expect(testCatalog(counters()).Names()).To(Equal([]string{"p1", "p2"}))
	g.Expect(plugin.Catalog{}.Names()).To(BeEmpty())
}

func TestDefaultCatalog(t *testing.T) {
	g := NewWithT(t)

	catalog := plugin.DefaultCatalog()

	g.Expect(catalog.Names()).To(Equal([]string{"cinder_volume"}))
	g.Expect(catalog["cinder_volume"]()).To(HaveLen(3))
}

func TestLoad_RegistersInRequestOrder(t *testing.T) {
	g := NewWithT(t)

	loads := counters()
	registry := check.NewRegistry()

	g.Expect(plugin.Load(registry, testCatalog(loads), []string{"p2", "p1"})).To(Succeed())

	ids := make([]string, 0)
	for _, def := range registry.ListAll() {
		ids = append(ids, def.ID)
	}

	g.Expect(ids).To(Equal([]string{"p2.a", "p1.a", "p1.b"}))
}

func TestLoad_DuplicateNamesLoadOnce(t *testing.T) {
	g := NewWithT(t)

	loads := counters()
	registry := check.NewRegistry()

	g.Expect(plugin.Load(registry, testCatalog(loads), []string{"p1", "p1"})).To(Succeed())
	g.Expect(*loads["p1"]).To(Equal(1))
	g.Expect(registry.ListAll()).To(HaveLen(2))
}

func TestLoad_UnknownPlugin(t *testing.T) {
	g := NewWithT(t)

	loads := counters()
	registry := check.NewRegistry()

	err := plugin.Load(registry, testCatalog(loads), []string{"p1", "nonexistent"})

	var unknown *plugin.UnknownPluginError
	g.Expect(errors.As(err, &unknown)).To(BeTrue())
	g.Expect(unknown.Name).To(Equal("nonexistent"))
	g.Expect(unknown.Available).To(Equal([]string{"p1", "p2"}))
	g.Expect(err.Error()).To(Equal("unrecognized check plugin requested: nonexistent (available: p1, p2)"))

	// Resolution happens before any loader runs or anything is registered.
	g.Expect(*loads["p1"]).To(BeZero())
	g.Expect(registry.ListAll()).To(BeEmpty())
}

func TestLoad_NoPlugins(t *testing.T) {
	g := NewWithT(t)

	registry := check.NewRegistry()

	g.Expect(plugin.Load(registry, testCatalog(counters()), nil)).To(Succeed())
	g.Expect(registry.ListAll()).To(BeEmpty())
}

func TestLoad_CollidingIDsFail(t *testing.T) {
	g := NewWithT(t)

	registry := check.NewRegistry()
	registry.MustRegister(definition("p2.a", "basic"))

	err := plugin.Load(registry, testCatalog(counters()), []string{"p2"})

	g.Expect(err).To(MatchError(ContainSubstring("already registered")))
}
