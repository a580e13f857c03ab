package subsonic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the http.Client used for all requests. Use this to
// configure transport settings such as TLS or proxies.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the timeout for a single request. The default is 15 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithClientID sets the client identifier sent to the server (the "c"
// parameter). Servers show it in their access logs and now-playing lists.
func WithClientID(clientID string) Option {
	return func(c *Client) {
		c.clientID = clientID
	}
}

// WithLogger configures an optional logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMaxRetries sets how often a failed read-only request is retried on a
// transport failure. The default is 2. Requests that change server state are
// never retried, regardless of this setting.
func WithMaxRetries(retries int) Option {
	return func(c *Client) {
		c.maxRetries = retries
	}
}

// Client calls the API of a Subsonic-compatible media server (Subsonic,
// Airsonic, Navidrome, Gonic, ...).
//
// On first use, the Client pings the server to discover the protocol version
// it supports, and fails all requests if that version is older than 1.8.0.
// The negotiated version determines the authentication mode (salted token
// from 1.13.0, plaintext password before that) and, per operation, the
// endpoint that serves it. A Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	url        string
	username   string
	password   string
	clientID   string
	format     string

	maxRetries    int
	retryInterval time.Duration

	mu           sync.RWMutex
	state        negotiationState
	version      Version
	creds        credentials
	negotiateErr error
}

// New returns a Client for the server at url, authenticating as username.
func New(url, username, password string, opts ...Option) *Client {
	client := Client{
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		url:           strings.TrimSuffix(url, "/"),
		username:      username,
		password:      password,
		clientID:      "go-subsonic",
		format:        "json",
		maxRetries:    2,
		retryInterval: 500 * time.Millisecond,
	}
	for _, o := range opts {
		o(&client)
	}
	return &client
}

// GetURL returns the server's base URL.
func (c *Client) GetURL() string {
	return c.url
}

// Call performs one logical operation against the server and returns the
// decoded response envelope. Most callers will use the typed methods instead;
// Call is the escape hatch for endpoints this package does not wrap.
//
// The operation name is the endpoint name as documented in the Subsonic API
// (e.g. "getAlbumList"); where a newer ID3-organised endpoint exists (e.g.
// "getAlbumList2"), Call selects it automatically based on the negotiated
// server version.
func (c *Client) Call(ctx context.Context, operation string, q url.Values) (*Envelope, error) {
	desc, ok := endpoints[operation]
	if !ok {
		return nil, fmt.Errorf("subsonic: unknown operation %q", operation)
	}
	if err := validateRequired(desc, q); err != nil {
		return nil, err
	}
	if err := c.negotiate(ctx); err != nil {
		return nil, err
	}
	version, creds := c.session()
	name, err := desc.resolve(version)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("calling server", "operation", operation, "endpoint", name)
	body, err := c.fetch(ctx, name, c.requestValues(creds, version, q), desc.mutates)
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	if env.Version != version {
		c.logger.Warn("server version changed since negotiation",
			"negotiated", version.String(), "reported", env.Version.String())
	}
	return env, nil
}

// call dispatches one operation and decodes the response payload into T. T
// selects the operation-specific member of the envelope through its json tags.
func call[T any](ctx context.Context, c *Client, operation string, q url.Values) (T, error) {
	var response T
	env, err := c.Call(ctx, operation, q)
	if err != nil {
		return response, err
	}
	if err = json.Unmarshal(env.Payload, &response); err != nil {
		return response, &DecodeError{Err: err, Body: env.Payload}
	}
	return response, nil
}

// session returns the negotiated version and credentials. Only valid after a
// successful negotiate.
func (c *Client) session() (Version, credentials) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version, c.creds
}

// requestValues builds the full parameter set for an endpoint: the caller's
// parameters plus authentication and client identity. Credentials are applied
// last, so operation parameters can never override them.
func (c *Client) requestValues(creds credentials, version Version, q url.Values) url.Values {
	v := make(url.Values, len(q)+6)
	for key, values := range q {
		v[key] = slices.Clone(values)
	}
	creds.apply(v)
	v.Set("v", version.String())
	v.Set("c", c.clientID)
	v.Set("f", c.format)
	return v
}

// endpointURL builds the full request URL for an endpoint.
func (c *Client) endpointURL(name string, params url.Values) string {
	return c.url + "/rest/" + name + "?" + params.Encode()
}

func validateRequired(desc endpoint, q url.Values) error {
	var missing []string
	for _, key := range desc.required {
		if q.Get(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &InvalidRequestError{Endpoint: desc.name, Missing: missing}
	}
	return nil
}

// fetch performs the network exchange. Read-only operations go out as GET and
// are retried on transient transport failures with exponential backoff.
// Mutating operations go out as POST with the parameters in the request body:
// http.Transport transparently replays a bodyless GET that dies on a reused
// keep-alive connection, but never a request with a body, so combined with
// zero client-side retries a mutation reaches the server at most once per call.
func (c *Client) fetch(ctx context.Context, name string, params url.Values, mutates bool) ([]byte, error) {
	var retries int
	if !mutates {
		retries = c.maxRetries
	}
	for attempt := 0; ; attempt++ {
		body, err := c.fetchOnce(ctx, name, params, mutates)
		if err == nil || attempt >= retries || ctx.Err() != nil || !isTransient(err) {
			return body, err
		}
		c.logger.Debug("retrying after transport failure", "attempt", attempt+1, "err", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.retryInterval << attempt):
		}
	}
}

func (c *Client) fetchOnce(ctx context.Context, name string, params url.Values, mutates bool) ([]byte, error) {
	var req *http.Request
	var err error
	if mutates {
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/rest/"+name, strings.NewReader(params.Encode()))
	} else {
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL(name, params), nil)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to create request: %w", err)
	}
	if mutates {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("subsonic: unexpected http status: %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

// isTransient reports whether an error is a transport-level failure worth
// retrying. Cancellation is excluded: fetch checks the context separately.
func isTransient(err error) bool {
	var urlErr *url.Error
	return errors.As(err, &urlErr) || errors.Is(err, io.ErrUnexpectedEOF)
}
