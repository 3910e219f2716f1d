package api

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/sync/singleflight"

	"github.com/datera/ddct/pkg/util/jq"
)

const (
	// DefaultPort is the HTTPS port of the management REST interface.
	DefaultPort = 7718

	// DefaultTimeout bounds every individual API request.
	DefaultTimeout = 30 * time.Second

	headerAuthToken = "Auth-Token"
	headerTenant    = "tenant"
)

// Client is the handle to the remote management API that checks use.
type Client interface {
	// System returns the system document (cluster-wide settings).
	System(ctx context.Context) (map[string]any, error)
}

// Options configures an HTTPClient.
type Options struct {
	Host       string
	Username   string
	Password   string
	Tenant     string
	APIVersion string

	// BaseURL overrides the URL derived from Host, mainly for tests.
	BaseURL string

	// HTTPClient overrides the transport. The default skips certificate
	// verification because appliances ship self-signed certificates.
	HTTPClient *http.Client
}

// HTTPClient talks to the management REST API over HTTPS.
// It is safe for concurrent use; concurrent logins are collapsed into one.
type HTTPClient struct {
	opts    Options
	baseURL string
	http    *http.Client

	login singleflight.Group
	mu    sync.RWMutex
	token string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the given options. No request is made
// until the first call.
func NewHTTPClient(opts Options) *HTTPClient {
	base := opts.BaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s:%d", opts.Host, DefaultPort)
	}

	version := opts.APIVersion
	if version == "" {
		version = "2.2"
	}

	hc := opts.HTTPClient
	if hc == nil {
		transport := cleanhttp.DefaultPooledTransport()
		//nolint:gosec // appliances ship self-signed certificates
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}

		hc = &http.Client{
			Timeout:   DefaultTimeout,
			Transport: transport,
		}
	}

	return &HTTPClient{
		opts:    opts,
		baseURL: strings.TrimRight(base, "/") + "/v" + strings.TrimPrefix(version, "v"),
		http:    hc,
	}
}

// System returns the system document.
func (c *HTTPClient) System(ctx context.Context) (map[string]any, error) {
	doc, err := c.get(ctx, "/system")
	if err != nil {
		return nil, err
	}

	// v2.2 wraps payloads in a "data" envelope, earlier versions do not.
	system, err := jq.Query[map[string]any](doc, `if type == "object" and has("data") then .data else . end`)
	if err != nil {
		return nil, fmt.Errorf("reading system document: %w", err)
	}

	return system, nil
}

// get performs an authenticated GET. An expired session is renewed and
// transient failures are attempted once more.
func (c *HTTPClient) get(ctx context.Context, path string) (any, error) {
	doc, err := c.authorizedGet(ctx, path)

	switch {
	case err == nil:
		return doc, nil
	case IsUnauthorized(err):
		c.mu.Lock()
		c.token = ""
		c.mu.Unlock()
	case IsUnrecoverableError(err):
		return nil, err
	}

	return c.authorizedGet(ctx, path)
}

func (c *HTTPClient) authorizedGet(ctx context.Context, path string) (any, error) {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set(headerAuthToken, token)
	if c.opts.Tenant != "" {
		req.Header.Set(headerTenant, c.opts.Tenant)
	}

	return c.do(req)
}

func (c *HTTPClient) ensureToken(ctx context.Context) (string, error) {
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()

	if token != "" {
		return token, nil
	}

	v, err, _ := c.login.Do("login", func() (any, error) {
		return c.doLogin(ctx)
	})
	if err != nil {
		return "", err
	}

	token, _ = v.(string)

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	return token, nil
}

func (c *HTTPClient) doLogin(ctx context.Context) (string, error) {
	form := url.Values{
		"name":     {c.opts.Username},
		"password": {c.opts.Password},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/login", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("creating login request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	doc, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("logging in as %s: %w", c.opts.Username, err)
	}

	key, err := jq.Query[string](doc, ".key")
	if err != nil {
		return "", fmt.Errorf("reading login key: %w", err)
	}

	return key, nil
}

func (c *HTTPClient) do(req *http.Request) (any, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Method:     req.Method,
			Path:       req.URL.Path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", req.URL.Path, err)
	}

	return doc, nil
}
