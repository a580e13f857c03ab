package subsonic

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/clambin/subsonic/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Stream(t *testing.T) {
	s := testutil.New("1.16.1")
	s.AddMedia("300", []byte("pretend this is an mp3"))
	c := newTestClient(t, s)

	stream, err := c.Stream(context.Background(), "300")
	require.NoError(t, err)
	defer func() { _ = stream.Close() }()

	assert.Equal(t, "audio/mpeg", stream.ContentType)
	assert.Equal(t, int64(22), stream.ContentLength)
	assert.Equal(t, http.StatusOK, stream.StatusCode)
	assert.Zero(t, stream.Offset)

	content, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "pretend this is an mp3", string(content))
}

func TestClient_Stream_Resume(t *testing.T) {
	s := testutil.New("1.16.1")
	s.AddMedia("300", []byte("pretend this is an mp3"))
	c := newTestClient(t, s)

	stream, err := c.Stream(context.Background(), "300", WithOffset(8))
	require.NoError(t, err)
	defer func() { _ = stream.Close() }()

	assert.Equal(t, http.StatusPartialContent, stream.StatusCode)
	assert.Equal(t, int64(8), stream.Offset)

	content, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "this is an mp3", string(content))
}

func TestClient_Stream_NotFound(t *testing.T) {
	s := testutil.New("1.16.1")
	c := newTestClient(t, s)

	_, err := c.Stream(context.Background(), "no-such-id")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeNotFound, apiErr.Code)
}

func TestClient_Stream_Truncated(t *testing.T) {
	s := testutil.New("1.16.1")
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "stream") {
			// declare more than we deliver, then drop the connection
			w.Header().Set("Content-Type", "audio/mpeg")
			w.Header().Set("Content-Length", "1000")
			_, _ = w.Write([]byte("only this much"))
			return
		}
		s.ServeHTTP(w, r)
	}))
	t.Cleanup(ts.Close)
	c := New(ts.URL, s.Username, s.Password)

	stream, err := c.Stream(context.Background(), "300")
	require.NoError(t, err)
	defer func() { _ = stream.Close() }()
	assert.Equal(t, int64(1000), stream.ContentLength)

	// the short body surfaces as an error, not as a clean EOF
	_, err = io.ReadAll(stream)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestClient_Download(t *testing.T) {
	s := testutil.New("1.16.1")
	s.AddMedia("301", []byte("the original file"))
	c := newTestClient(t, s)

	download, err := c.Download(context.Background(), "301")
	require.NoError(t, err)
	defer func() { _ = download.Close() }()

	content, err := io.ReadAll(download)
	require.NoError(t, err)
	assert.Equal(t, "the original file", string(content))
}

func TestClient_GetCoverArt(t *testing.T) {
	s := testutil.New("1.16.1")
	s.AddMedia("al-1", []byte("a square image"))
	c := newTestClient(t, s)

	art, err := c.GetCoverArt(context.Background(), "al-1", 300)
	require.NoError(t, err)
	defer func() { _ = art.Close() }()

	content, err := io.ReadAll(art)
	require.NoError(t, err)
	assert.Equal(t, "a square image", string(content))
}

func TestClient_StreamURL(t *testing.T) {
	s := testutil.New("1.16.1")
	c := newTestClient(t, s)

	target, err := c.StreamURL(context.Background(), "300", WithMaxBitRate(128), WithFormat("mp3"))
	require.NoError(t, err)

	parsed, err := url.Parse(target)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(parsed.Path, "/rest/stream"))
	q := parsed.Query()
	assert.Equal(t, "300", q.Get("id"))
	assert.Equal(t, "128", q.Get("maxBitRate"))
	assert.Equal(t, "mp3", q.Get("format"))
	// token auth: the password must not appear in the URL
	assert.Empty(t, q.Get("p"))
	assert.NotEmpty(t, q.Get("t"))
	assert.NotEmpty(t, q.Get("s"))
}

func TestClient_GetHLSPlaylist(t *testing.T) {
	const playlist = "#EXTM3U\n#EXT-X-VERSION:1\n"
	s := testutil.New("1.16.1")
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "hls") {
			w.Header().Set("Content-Type", "application/vnd.apple.mpegurl")
			_, _ = w.Write([]byte(playlist))
			return
		}
		s.ServeHTTP(w, r)
	}))
	t.Cleanup(ts.Close)
	c := New(ts.URL, s.Username, s.Password)

	m3u8, err := c.GetHLSPlaylist(context.Background(), "300", 128, 256)
	require.NoError(t, err)
	assert.Equal(t, playlist, m3u8)
}

func TestClient_GetHLSPlaylist_Error(t *testing.T) {
	s := testutil.New("1.16.1")
	s.Errors["hls"] = 70
	c := newTestClient(t, s)

	_, err := c.GetHLSPlaylist(context.Background(), "300")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeNotFound, apiErr.Code)
}
