// Package testutil emulates a Subsonic media server for tests.
package testutil

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

// Server implements http.Handler, answering Subsonic API requests the way a
// real server would: it validates authentication, wraps canned payloads in
// response envelopes, and serves media files from an in-memory filesystem.
//
// The zero value is not usable; create one with New.
type Server struct {
	Username string
	Password string
	Version  string
	// PlainOnly emulates a server that predates token authentication: any
	// request carrying a token is rejected with code 40.
	PlainOnly bool
	// Payloads maps endpoint names (e.g. "getAlbumList2") to the payload
	// fragment spliced into a successful envelope.
	Payloads map[string]string
	// Errors maps endpoint names to a Subsonic error code. An entry here
	// takes precedence over Payloads.
	Errors map[string]int
	// Media holds the files served by stream, download and getCoverArt,
	// keyed by song ID under /media.
	Media afero.Fs

	mu       sync.Mutex
	requests []string
}

func New(version string) *Server {
	return &Server{
		Username: "admin",
		Password: "s3cret",
		Version:  version,
		Payloads: make(map[string]string),
		Errors:   make(map[string]int),
		Media:    afero.NewMemMapFs(),
	}
}

// AddMedia stores content under the given song ID, to be served by the
// media endpoints.
func (s *Server) AddMedia(id string, content []byte) {
	_ = afero.WriteFile(s.Media, "/media/"+id, content, 0o644)
}

// Requests returns the endpoint names called so far, in order.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *Server) record(endpoint string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, endpoint)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	endpoint := strings.TrimPrefix(r.URL.Path, "/rest/")
	endpoint = strings.TrimSuffix(endpoint, ".view")
	s.record(endpoint)

	// mutating requests carry their parameters in the POST body
	_ = r.ParseForm()
	if !s.authenticated(r) {
		s.writeError(w, 40, "Wrong username or password.")
		return
	}
	if code, ok := s.Errors[endpoint]; ok {
		s.writeError(w, code, fmt.Sprintf("error %d", code))
		return
	}

	switch endpoint {
	case "stream", "download", "getCoverArt":
		s.serveMedia(w, r)
	case "ping":
		s.writeOK(w, "")
	default:
		payload, ok := s.Payloads[endpoint]
		if !ok {
			s.writeError(w, 0, "no canned response for "+endpoint)
			return
		}
		s.writeOK(w, payload)
	}
}

func (s *Server) authenticated(r *http.Request) bool {
	q := r.Form
	if q.Get("u") != s.Username {
		return false
	}
	if tok, salt := q.Get("t"), q.Get("s"); tok != "" && salt != "" {
		if s.PlainOnly {
			return false
		}
		sum := md5.Sum([]byte(s.Password + salt))
		return tok == hex.EncodeToString(sum[:])
	}
	return q.Get("p") == s.Password
}

func (s *Server) serveMedia(w http.ResponseWriter, r *http.Request) {
	f, err := s.Media.Open("/media/" + r.Form.Get("id"))
	if err != nil {
		s.writeError(w, 70, "The requested data was not found.")
		return
	}
	defer func() { _ = f.Close() }()
	content, err := io.ReadAll(f)
	if err != nil {
		s.writeError(w, 0, err.Error())
		return
	}

	status := http.StatusOK
	if rng := r.Header.Get("Range"); rng != "" {
		offset, ok := parseRange(rng, int64(len(content)))
		if !ok {
			w.WriteHeader(http.StatusRequestedRangeNotSatisfiable)
			return
		}
		w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", offset, int64(len(content))-1, len(content)))
		content = content[offset:]
		status = http.StatusPartialContent
	}
	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(status)
	_, _ = w.Write(content)
}

// parseRange handles the single form the client sends: "bytes=<start>-".
func parseRange(rng string, size int64) (int64, bool) {
	spec, ok := strings.CutPrefix(rng, "bytes=")
	if !ok {
		return 0, false
	}
	start, ok := strings.CutSuffix(spec, "-")
	if !ok {
		return 0, false
	}
	offset, err := strconv.ParseInt(start, 10, 64)
	if err != nil || offset < 0 || offset >= size {
		return 0, false
	}
	return offset, true
}

func (s *Server) writeOK(w http.ResponseWriter, payload string) {
	body := fmt.Sprintf(`{"subsonic-response":{"status":"ok","version":%q`, s.Version)
	if payload != "" {
		body += "," + payload
	}
	body += "}}"
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func (s *Server) writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = fmt.Fprintf(w,
		`{"subsonic-response":{"status":"failed","version":%q,"error":{"code":%d,"message":%q}}}`,
		s.Version, code, message,
	)
}
