package subsonic

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Stream is a lazy byte stream of media content. The caller owns it
// exclusively: the Client performs no reads after handing it over, and the
// caller must Close it on every path. A Stream is not safe for concurrent use.
//
// ContentLength is the length declared by the server, or -1 when unknown. It
// is advisory: a dropped connection surfaces as an error on Read, not as a
// clean EOF, but a misbehaving server could still declare the wrong length.
type Stream struct {
	body          io.ReadCloser
	ContentType   string
	ContentLength int64
	// StatusCode is the HTTP status of the response. A resumed stream is only
	// actually resumed if this is 206 (Partial Content); servers are free to
	// ignore range requests and send the whole file with a 200.
	StatusCode int
	// Offset is the byte offset this stream was requested at.
	Offset int64
}

func (s *Stream) Read(p []byte) (int, error) {
	return s.body.Read(p)
}

func (s *Stream) Close() error {
	return s.body.Close()
}

// StreamOption configures a media retrieval request.
type StreamOption func(*streamConfig)

type streamConfig struct {
	query  url.Values
	offset int64
}

// WithMaxBitRate asks the server to limit the stream to the given bit rate
// (in Kbps), transcoding if necessary.
func WithMaxBitRate(kbps int) StreamOption {
	return func(cfg *streamConfig) {
		cfg.query.Set("maxBitRate", strconv.Itoa(kbps))
	}
}

// WithFormat asks the server to transcode to the given format (e.g. "mp3").
// The special value "raw" (server version 1.9.0 or later) disables
// transcoding.
func WithFormat(format string) StreamOption {
	return func(cfg *streamConfig) {
		cfg.query.Set("format", format)
	}
}

// WithTimeOffset starts the stream at the given position in the media, in
// seconds. This is a transcoding feature and unrelated to byte offsets; see
// WithOffset for resuming an interrupted transfer.
func WithTimeOffset(seconds int) StreamOption {
	return func(cfg *streamConfig) {
		cfg.query.Set("timeOffset", strconv.Itoa(seconds))
	}
}

// WithEstimatedLength asks the server to estimate and declare a content
// length for transcoded media.
func WithEstimatedLength() StreamOption {
	return func(cfg *streamConfig) {
		cfg.query.Set("estimateContentLength", "true")
	}
}

// WithOffset requests the content from the given byte offset, as an HTTP
// range request. Use this to resume an interrupted transfer. The server may
// ignore the range; check [Stream.StatusCode] before assuming it was honored.
func WithOffset(offset int64) StreamOption {
	return func(cfg *streamConfig) {
		cfg.offset = offset
	}
}

// Stream streams a song or video. The returned Stream is the transcoded
// media if the server transcodes, so its length will not match the size
// reported in the [Song].
func (c *Client) Stream(ctx context.Context, id string, opts ...StreamOption) (*Stream, error) {
	return c.openStream(ctx, "stream", id, opts...)
}

// Download retrieves the original media file, without transcoding. Supports
// the same resumption option as Stream; transcoding options do not apply.
func (c *Client) Download(ctx context.Context, id string, opts ...StreamOption) (*Stream, error) {
	return c.openStream(ctx, "download", id, opts...)
}

// GetCoverArt retrieves a cover art image. size scales the image to the given
// number of pixels; 0 returns the original size.
func (c *Client) GetCoverArt(ctx context.Context, id string, size int) (*Stream, error) {
	var opts []StreamOption
	if size > 0 {
		opts = append(opts, func(cfg *streamConfig) {
			cfg.query.Set("size", strconv.Itoa(size))
		})
	}
	return c.openStream(ctx, "getCoverArt", id, opts...)
}

// StreamURL builds a fully authenticated URL for streaming the given media,
// for handing to an external player. The URL embeds credentials (a one-time
// salted token, or the plaintext password on pre-1.13.0 servers): treat it as
// a secret.
func (c *Client) StreamURL(ctx context.Context, id string, opts ...StreamOption) (string, error) {
	return c.mediaURL(ctx, "stream", id, opts...)
}

// DownloadURL builds a fully authenticated URL for downloading the given
// media. See StreamURL for the security caveat.
func (c *Client) DownloadURL(ctx context.Context, id string) (string, error) {
	return c.mediaURL(ctx, "download", id)
}

// GetHLSPlaylist creates an HLS (HTTP Live Streaming) playlist for a song or
// video and returns it as an M3U8 document. Supplying multiple bit rates
// produces a variant playlist for adaptive streaming; a single value forces
// that bit rate; none disables adaptive streaming.
func (c *Client) GetHLSPlaylist(ctx context.Context, id string, bitRates ...int) (string, error) {
	q := url.Values{"id": {id}}
	for _, kbps := range bitRates {
		q.Add("bitRate", strconv.Itoa(kbps))
	}
	name, params, err := c.mediaRequest(ctx, "hls", q)
	if err != nil {
		return "", err
	}
	body, err := c.fetch(ctx, name, params, false)
	if err != nil {
		return "", err
	}
	// a failed request comes back as a response envelope, not a playlist
	if bytes.HasPrefix(bytes.TrimSpace(body), []byte("{")) {
		if _, err = decodeEnvelope(body); err != nil {
			return "", err
		}
	}
	return string(body), nil
}

func (c *Client) openStream(ctx context.Context, operation, id string, opts ...StreamOption) (*Stream, error) {
	cfg := streamConfig{query: url.Values{"id": {id}}}
	for _, o := range opts {
		o(&cfg)
	}
	// stream, download and getCoverArt are all read-only: transient transport
	// failures before the body handoff are retried like any other read
	name, params, err := c.mediaRequest(ctx, operation, cfg.query)
	if err != nil {
		return nil, err
	}
	target := c.endpointURL(name, params)

	var resp *http.Response
	for attempt := 0; ; attempt++ {
		resp, err = c.openOnce(ctx, target, cfg.offset)
		if err == nil || attempt >= c.maxRetries || ctx.Err() != nil || !isTransient(err) {
			break
		}
		c.logger.Debug("retrying after transport failure", "attempt", attempt+1, "err", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.retryInterval << attempt):
		}
	}
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("subsonic: unexpected http status: %s", resp.Status)
	}

	// media errors come back as a response envelope with the regular content type
	if contentType := resp.Header.Get("Content-Type"); isEnvelope(contentType) {
		defer func() {
			_ = resp.Body.Close()
		}()
		body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return nil, fmt.Errorf("read response: %w", err)
		}
		if _, err = decodeEnvelope(body); err != nil {
			return nil, err
		}
		return nil, &DecodeError{Err: errUnexpectedEnvelope, Body: body}
	}

	return &Stream{
		body:          resp.Body,
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.ContentLength,
		StatusCode:    resp.StatusCode,
		Offset:        cfg.offset,
	}, nil
}

// mediaRequest negotiates, validates and builds the parameter set for a media
// retrieval operation.
func (c *Client) mediaRequest(ctx context.Context, operation string, q url.Values) (string, url.Values, error) {
	desc, ok := endpoints[operation]
	if !ok {
		return "", nil, fmt.Errorf("subsonic: unknown operation %q", operation)
	}
	if err := validateRequired(desc, q); err != nil {
		return "", nil, err
	}
	if err := c.negotiate(ctx); err != nil {
		return "", nil, err
	}
	version, creds := c.session()
	name, err := desc.resolve(version)
	if err != nil {
		return "", nil, err
	}
	c.logger.Debug("streaming from server", "operation", operation, "endpoint", name)
	return name, c.requestValues(creds, version, q), nil
}

func (c *Client) openOnce(ctx context.Context, target string, offset int64) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to create request: %w", err)
	}
	if offset > 0 {
		req.Header.Set("Range", "bytes="+strconv.FormatInt(offset, 10)+"-")
	}
	return c.httpClient.Do(req)
}

func (c *Client) mediaURL(ctx context.Context, operation, id string, opts ...StreamOption) (string, error) {
	cfg := streamConfig{query: url.Values{"id": {id}}}
	for _, o := range opts {
		o(&cfg)
	}
	name, params, err := c.mediaRequest(ctx, operation, cfg.query)
	if err != nil {
		return "", err
	}
	return c.endpointURL(name, params), nil
}

func isEnvelope(contentType string) bool {
	return strings.HasPrefix(contentType, "application/json") ||
		strings.HasPrefix(contentType, "application/xml") ||
		strings.HasPrefix(contentType, "text/xml")
}

var errUnexpectedEnvelope = fmt.Errorf("server returned a response envelope instead of media content")
