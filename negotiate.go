package subsonic

import (
	"context"
	"errors"
)

type negotiationState int

const (
	stateUnresolved negotiationState = iota
	stateResolved
	stateFailed
)

// negotiate resolves the server's protocol version on first use and caches it
// for the Client's lifetime. Like sync.Once, but a transport failure leaves
// the state unresolved so the next call tries again; a server below the
// supported floor is terminal and fails every subsequent call without a
// network exchange.
func (c *Client) negotiate(ctx context.Context) error {
	c.mu.RLock()
	state, err := c.state, c.negotiateErr
	c.mu.RUnlock()
	switch state {
	case stateResolved:
		return nil
	case stateFailed:
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state {
	case stateResolved:
		return nil
	case stateFailed:
		return c.negotiateErr
	}
	version, creds, err := c.handshake(ctx)
	if err != nil {
		if errors.Is(err, ErrUnsupportedVersion) {
			c.state = stateFailed
			c.negotiateErr = err
		}
		return err
	}
	c.version = version
	c.creds = creds
	c.state = stateResolved
	c.logger.Debug("negotiated server version", "version", version.String())
	return nil
}

// handshake pings the server to learn its protocol version and select the
// authentication mode. The first attempt optimistically uses token
// authentication; the response envelope reports the server version even on an
// authentication failure, so one round trip usually suffices.
func (c *Client) handshake(ctx context.Context) (Version, credentials, error) {
	tokenAuth := tokenCredentials{username: c.username, password: c.password}
	passwordAuth := passwordCredentials{username: c.username, password: c.password}

	env, err := c.ping(ctx, tokenAuth, versionTarget)
	if env == nil {
		return Version{}, nil, err
	}
	version := env.Version
	if !version.AtLeast(versionFloor) {
		return Version{}, nil, &UnsupportedVersionError{Version: version, Required: versionFloor}
	}

	if err == nil {
		if !version.AtLeast(versionTokenAuth) {
			// server accepted the token but predates token authentication;
			// stick to the documented mode for its version
			return version, passwordAuth, nil
		}
		return version, tokenAuth, nil
	}

	// servers older than 1.13.0 reject token authentication outright, and
	// LDAP accounts do the same with code 41. Retry once with the legacy
	// plaintext password; any other failure stands.
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return Version{}, nil, err
	}
	if version.AtLeast(versionTokenAuth) && apiErr.Code != CodeTokenAuthNotSupported {
		return Version{}, nil, err
	}
	if env, err = c.ping(ctx, passwordAuth, version); err != nil {
		return Version{}, nil, err
	}
	return env.Version, passwordAuth, nil
}

// ping issues a raw ping, bypassing the negotiated state. Used during the
// handshake; [Client.Ping] is the public connectivity check.
func (c *Client) ping(ctx context.Context, creds credentials, version Version) (*Envelope, error) {
	body, err := c.fetch(ctx, "ping", c.requestValues(creds, version, nil), false)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope(body)
}

// ForceNegotiate discards the cached protocol version and negotiates again.
// Useful after a known server upgrade; the Client never re-negotiates on its
// own, even when a response reports a different version than the one cached.
func (c *Client) ForceNegotiate(ctx context.Context) error {
	c.mu.Lock()
	c.state = stateUnresolved
	c.negotiateErr = nil
	c.mu.Unlock()
	return c.negotiate(ctx)
}

// ServerVersion returns the server's negotiated protocol version, performing
// the negotiation first if it hasn't happened yet.
func (c *Client) ServerVersion(ctx context.Context) (Version, error) {
	if err := c.negotiate(ctx); err != nil {
		return Version{}, err
	}
	version, _ := c.session()
	return version, nil
}
