package iostreams_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/datera/ddct/pkg/util/iostreams"

	. "github.com/onsi/gomega"
)

func TestIOStreams_AppendsNewline(t *testing.T) {
	g := NewWithT(t)

	var out, errOut bytes.Buffer
	s := iostreams.NewIOStreams(nil, &out, &errOut)

	s.Fprintf("checks: %d", 3)
	s.Fprintln("done")
	s.Errorf("Checking %s settings", "ISCSI")

	g.Expect(out.String()).To(Equal("checks: 3\ndone\n"))
	g.Expect(errOut.String()).To(Equal("Checking ISCSI settings\n"))
}

func TestIOStreams_NilWriters(t *testing.T) {
	g := NewWithT(t)

	s := iostreams.NewIOStreams(nil, nil, nil)

	g.Expect(func() {
		s.Fprintf("x")
		s.Errorln("y")
	}).ToNot(Panic())
}

func TestQuietWrapper_SuppressesProgressOnly(t *testing.T) {
	g := NewWithT(t)

	var out, errOut bytes.Buffer
	q := iostreams.NewQuietWrapper(iostreams.NewIOStreams(nil, &out, &errOut))

	q.Errorf("progress")
	q.Errorln("more progress")
	q.Fprintln("result")

	g.Expect(errOut.String()).To(BeEmpty())
	g.Expect(out.String()).To(Equal("result\n"))
}

func TestSyncWrapper_LinesDoNotInterleave(t *testing.T) {
	g := NewWithT(t)

	const (
		writers = 16
		lines   = 50
	)

	var errOut bytes.Buffer
	s := iostreams.NewSyncWrapper(iostreams.NewIOStreams(nil, &bytes.Buffer{}, &errOut))

	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range lines {
				s.Errorf("writer %02d %s", i, strings.Repeat("x", 64))
			}
		}()
	}

	wg.Wait()

	got := strings.Split(strings.TrimSuffix(errOut.String(), "\n"), "\n")
	g.Expect(got).To(HaveLen(writers * lines))

	for _, line := range got {
		g.Expect(line).To(MatchRegexp(`^writer \d{2} x{64}$`))
	}
}
