package subsonic

import (
	"context"
	"testing"

	"github.com/clambin/subsonic/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_JukeboxGet(t *testing.T) {
	s := testutil.New("1.16.1")
	s.Payloads["jukeboxControl"] = `"jukeboxPlaylist":{"currentIndex":1,"playing":true,"gain":0.75,"position":42,"entry":[
		{"id":"tr-1","title":"Opening"},
		{"id":"tr-2","title":"Closing"}
	]}`
	c := newTestClient(t, s)

	playlist, err := c.JukeboxGet(context.Background())
	require.NoError(t, err)
	assert.True(t, playlist.Playing)
	assert.Equal(t, 1, playlist.CurrentIndex)
	assert.Equal(t, 0.75, playlist.Gain)
	require.Len(t, playlist.Entry, 2)
	assert.Equal(t, "Closing", playlist.Entry[1].Title)
}

func TestClient_JukeboxControl(t *testing.T) {
	s := testutil.New("1.16.1")
	s.Payloads["jukeboxControl"] = `"jukeboxStatus":{"currentIndex":0,"playing":true,"gain":0.5,"position":0}`
	c := newTestClient(t, s)

	status, err := c.JukeboxSet(context.Background(), []string{"tr-1", "tr-2"})
	require.NoError(t, err)
	assert.True(t, status.Playing)

	if _, err = c.JukeboxAdd(context.Background(), []string{"tr-3"}); err != nil {
		t.Error(err)
	}
	if _, err = c.JukeboxSkip(context.Background(), 1, 30); err != nil {
		t.Error(err)
	}
	if _, err = c.JukeboxSetGain(context.Background(), 0.5); err != nil {
		t.Error(err)
	}
	if _, err = c.JukeboxStop(context.Background()); err != nil {
		t.Error(err)
	}
	if _, err = c.JukeboxClear(context.Background()); err != nil {
		t.Error(err)
	}
}

func TestClient_Jukebox_NotAuthorized(t *testing.T) {
	s := testutil.New("1.16.1")
	s.Errors["jukeboxControl"] = 50
	c := newTestClient(t, s)

	_, err := c.JukeboxStart(context.Background())
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}
