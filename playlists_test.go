package subsonic

import (
	"context"
	"testing"

	"github.com/clambin/subsonic/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetPlaylists(t *testing.T) {
	s := testutil.New("1.16.1")
	s.Payloads["getPlaylists"] = `"playlists":{"playlist":[
		{"id":"pl-1","name":"Morning","owner":"admin","songCount":15,"public":true},
		{"id":"pl-2","name":"Evening","owner":"admin","songCount":20}
	]}`
	c := newTestClient(t, s)

	playlists, err := c.GetPlaylists(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, playlists, 2)
	assert.Equal(t, "Morning", playlists[0].Name)
	assert.True(t, playlists[0].Public)
	assert.False(t, playlists[1].Public)
}

func TestClient_GetPlaylist(t *testing.T) {
	s := testutil.New("1.16.1")
	s.Payloads["getPlaylist"] = `"playlist":{"id":"pl-1","name":"Morning","songCount":1,"entry":[{"id":"tr-1","title":"Opening"}]}`
	c := newTestClient(t, s)

	playlist, err := c.GetPlaylist(context.Background(), "pl-1")
	require.NoError(t, err)
	assert.Equal(t, "Morning", playlist.Name)
	require.Len(t, playlist.Entry, 1)
	assert.Equal(t, "Opening", playlist.Entry[0].Title)
}

func TestClient_CreatePlaylist(t *testing.T) {
	s := testutil.New("1.16.1")
	s.Payloads["createPlaylist"] = `"playlist":{"id":"pl-3","name":"Workout","songCount":2}`
	c := newTestClient(t, s)

	playlist, err := c.CreatePlaylist(context.Background(), "Workout", []string{"tr-1", "tr-2"})
	require.NoError(t, err)
	assert.Equal(t, "pl-3", playlist.ID)
	assert.Equal(t, 2, playlist.SongCount)
}

func TestClient_UpdatePlaylist(t *testing.T) {
	s := testutil.New("1.16.1")
	s.Payloads["updatePlaylist"] = ``
	c := newTestClient(t, s)

	public := true
	err := c.UpdatePlaylist(context.Background(), "pl-1", PlaylistUpdate{
		Comment:       "better now",
		Public:        &public,
		AddSongIDs:    []string{"tr-9"},
		RemoveIndexes: []int{0, 3},
	})
	assert.NoError(t, err)
}

func TestClient_DeletePlaylist(t *testing.T) {
	s := testutil.New("1.16.1")
	s.Payloads["deletePlaylist"] = ``
	c := newTestClient(t, s)

	assert.NoError(t, c.DeletePlaylist(context.Background(), "pl-1"))
}
