// Package backend is the REST client for the SmartLogi API. Every call runs
// through two outbound interceptors (bearer credential attachment, request
// correlation) and one inbound one (fault translation), so the CRUD services
// never handle authentication concerns themselves.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartlogi/frontend/internal/core/domain"
	"github.com/smartlogi/frontend/internal/core/ports"
)

var _ ports.Pinger = (*Client)(nil)

// Hooks are the global reactions to authorization faults. They are installed
// after construction because the session manager that implements them is
// itself built on top of this client's auth surface.
type Hooks struct {
	// Unauthorized runs on any 401: the session must be torn down.
	Unauthorized func()
	// Forbidden runs on any 403: the current navigation moves to the
	// access-denied page.
	Forbidden func()
}

// Client talks to the SmartLogi backend.
type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger

	mu    sync.Mutex
	hooks Hooks
}

// Options configures a Client.
type Options struct {
	// BaseURL is the backend root, without a trailing slash.
	BaseURL string
	// Timeout bounds every call; it surfaces as the connectivity fault.
	Timeout time.Duration
	// Tokens supplies the bearer credential for the auth transport.
	Tokens ports.TokenService
}

func New(opts Options, log zerolog.Logger) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	transport := newCorrelationTransport(
		newAuthTransport(http.DefaultTransport, opts.Tokens),
	)

	return &Client{
		base: strings.TrimRight(opts.BaseURL, "/"),
		http: &http.Client{Timeout: timeout, Transport: transport},
		log:  log,
	}
}

// SetHooks installs the fault reactions. Calls before installation translate
// faults without triggering the global side effects.
func (c *Client) SetHooks(h Hooks) {
	c.mu.Lock()
	c.hooks = h
	c.mu.Unlock()
}

func (c *Client) currentHooks() Hooks {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hooks
}

// Ping reports backend reachability. Any HTTP response counts as reachable;
// only a transport failure does not. It bypasses the fault translation so
// readiness checks do not pollute the fault metrics.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/", nil)
	if err != nil {
		return fmt.Errorf("build ping request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnreachable, err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

// do issues one request and decodes the JSON response into out (ignored when
// out is nil). Any failure comes back as a *domain.Fault.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	c.observe(method, started)
	if err != nil {
		return c.connectivityFault(method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.fault(method, path, resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
