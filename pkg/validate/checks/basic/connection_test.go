package basic_test

import (
	"testing"
	"time"

	"github.com/datera/ddct/pkg/config"
	"github.com/datera/ddct/pkg/util/poll"
	mocks "github.com/datera/ddct/pkg/util/test/mocks/shell"
	"github.com/datera/ddct/pkg/validate/check"
	"github.com/datera/ddct/pkg/validate/check/testutil"
	"github.com/datera/ddct/pkg/validate/checks/basic"

	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"
)

func fastARPPoll(t *testing.T) {
	t.Helper()

	t.Cleanup(basic.SetARPPoll(poll.Settings{Attempts: 6, Interval: time.Millisecond}))
}

func TestMgmtCheck_Reachable(t *testing.T) {
	g := NewWithT(t)
	fastARPPoll(t)

	runner := mocks.NewMockRunner()
	runner.Succeed("ping -c 2 -W 1 172.19.1.41", "2 packets received")
	runner.Succeed("ip neigh show 172.19.1.41 | grep REACHABLE", "172.19.1.41 dev eth0 REACHABLE")

	target, _ := testutil.NewTarget(t, testutil.TargetConfig{Shell: runner})

	records, err := testutil.RunCheck(t.Context(), target, basic.NewMgmtCheck())

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(records).To(BeEmpty())
}

func TestMgmtCheck_ARPBecomesReachable(t *testing.T) {
	g := NewWithT(t)
	fastARPPoll(t)

	runner := mocks.NewMockRunner()
	runner.Succeed("ping -c 2 -W 1 172.19.1.41", "")
	runner.Fail("ip neigh show 172.19.1.41 | grep REACHABLE").Times(2)
	runner.Succeed("ip neigh show 172.19.1.41 | grep REACHABLE", "REACHABLE")

	target, _ := testutil.NewTarget(t, testutil.TargetConfig{Shell: runner})

	records, _ := testutil.RunCheck(t.Context(), target, basic.NewMgmtCheck())

	g.Expect(records).To(BeEmpty())
	runner.AssertNumberOfCalls(t, "Run", 4)
}

func TestVIP1Check_UnreachableReportsBoth(t *testing.T) {
	g := NewWithT(t)
	fastARPPoll(t)

	runner := mocks.NewMockRunner()
	runner.Fail("ping -c 2 -W 1 172.28.41.9")
	runner.Fail("ip neigh show 172.28.41.9 | grep REACHABLE")

	target, _ := testutil.NewTarget(t, testutil.TargetConfig{Shell: runner})

	records, err := testutil.RunCheck(t.Context(), target, basic.NewVIP1Check())

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(records).To(HaveExactElements(
		MatchFields(IgnoreExtras, Fields{
			"Code":    Equal(basic.CodeVIP1Ping),
			"Message": Equal("Could not ping vip1 ip 172.28.41.9"),
		}),
		MatchFields(IgnoreExtras, Fields{
			"Code":    Equal(basic.CodeVIP1ARP),
			"Message": Equal("Arp state for vip1 [172.28.41.9] is not 'REACHABLE'"),
		}),
	))

	// one ping plus six neighbor polls
	runner.AssertNumberOfCalls(t, "Run", 7)
}

func TestVIP2Check_SkippedWhenNotConfigured(t *testing.T) {
	g := NewWithT(t)

	cfg := testutil.DefaultConfig()
	cfg.VIP2IP = ""

	runner := mocks.NewMockRunner()
	target, _ := testutil.NewTarget(t, testutil.TargetConfig{Shell: runner, Config: cfg})

	records, err := testutil.RunCheck(t.Context(), target, basic.NewVIP2Check())

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(records).To(BeEmpty())
	runner.AssertNumberOfCalls(t, "Run", 0)
}

func TestVIP2Check_Unreachable(t *testing.T) {
	g := NewWithT(t)
	fastARPPoll(t)

	runner := mocks.NewMockRunner()
	runner.Fail("ping -c 2 -W 1 172.29.41.9")
	runner.Fail("ip neigh show 172.29.41.9 | grep REACHABLE")

	target, _ := testutil.NewTarget(t, testutil.TargetConfig{
		Shell:  runner,
		Config: &config.Config{MgmtIP: "10.0.0.1", VIP1IP: "10.0.1.1", VIP2IP: "172.29.41.9"},
	})

	records, _ := testutil.RunCheck(t.Context(), target, basic.NewVIP2Check())

	g.Expect(testutil.Codes(records)).To(Equal([]string{basic.CodeVIP2Ping, basic.CodeVIP2ARP}))
	g.Expect(records[0].Severity).To(Equal(check.SeverityFail))
}
