package cindervolume_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/datera/ddct/pkg/validate/checks/plugins/cindervolume"

	. "github.com/onsi/gomega"
)

func newTagsServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestGitHubSource_LatestVersion(t *testing.T) {
	g := NewWithT(t)

	srv := newTagsServer(t, http.StatusOK,
		`[{"name":"v2.9.3"},{"name":"v2.10.1"},{"name":"nightly"},{"name":"v2.2.0"}]`)

	source := cindervolume.NewGitHubSource()
	source.URL = srv.URL

	latest, err := source.LatestVersion(t.Context())

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(latest).To(Equal("2.10.1"))
}

func TestGitHubSource_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		errMsg string
	}{
		{name: "rate limited", status: http.StatusForbidden, body: `{"message":"rate limit"}`, errMsg: "unexpected status"},
		{name: "no release tags", status: http.StatusOK, body: `[{"name":"nightly"}]`, errMsg: "no parseable versions"},
		{name: "not json", status: http.StatusOK, body: `<html>`, errMsg: "decoding driver tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			srv := newTagsServer(t, tt.status, tt.body)

			source := cindervolume.NewGitHubSource()
			source.URL = srv.URL

			_, err := source.LatestVersion(t.Context())

			g.Expect(err).To(MatchError(ContainSubstring(tt.errMsg)))
		})
	}
}
