package basic_test

import (
	"testing"

	"github.com/datera/ddct/pkg/validate/check"
	"github.com/datera/ddct/pkg/validate/checks/basic"

	. "github.com/onsi/gomega"
)

func TestChecks(t *testing.T) {
	g := NewWithT(t)

	registry := check.NewRegistry()
	for _, def := range basic.Checks() {
		g.Expect(registry.Register(def)).To(Succeed(), "check %s", def.ID)
	}

	all := registry.ListAll()
	g.Expect(all).To(HaveLen(13))

	for _, def := range all {
		g.Expect(def.Tags).To(ContainElement(check.TagBasic), "check %s", def.ID)
	}

	g.Expect(check.ListTags(all)).To(Equal([]string{
		"arp", "basic", "block_device", "connection", "cpufreq", "irq",
		"iscsi", "multipath", "os", "setup", "udev",
	}))
}

func TestChecks_FreshDefinitionsPerCall(t *testing.T) {
	g := NewWithT(t)

	registry := check.NewRegistry()
	for _, def := range basic.Checks() {
		registry.MustRegister(def)
	}

	for _, def := range basic.Checks() {
		g.Expect(registry.Register(def)).To(MatchError(ContainSubstring("already registered")))
	}
}
