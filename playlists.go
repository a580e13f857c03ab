package subsonic

import (
	"context"
	"net/url"
	"strconv"
)

// Playlist is a named, ordered collection of songs. Entry is only populated
// when the playlist is retrieved directly through GetPlaylist.
type Playlist struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Comment   string `json:"comment"`
	Owner     string `json:"owner"`
	CoverArt  string `json:"coverArt"`
	Created   string `json:"created"`
	Changed   string `json:"changed"`
	SongCount int    `json:"songCount"`
	Duration  int    `json:"duration"`
	Public    bool   `json:"public"`
	Entry     []Song `json:"entry"`
}

// PlaylistUpdate describes a change to an existing playlist. Zero-valued
// fields are left unchanged.
type PlaylistUpdate struct {
	Name    string
	Comment string
	// Public makes the playlist visible to all users. Nil leaves the current
	// visibility unchanged.
	Public *bool
	// AddSongIDs are appended to the playlist, in order.
	AddSongIDs []string
	// RemoveIndexes are the zero-based positions of songs to remove.
	RemoveIndexes []int
}

// GetPlaylists returns all playlists the authenticated user can see. An admin
// can pass a username to list that user's playlists instead; otherwise pass
// an empty string.
func (c *Client) GetPlaylists(ctx context.Context, username string) ([]Playlist, error) {
	type response struct {
		Playlists struct {
			Playlist []Playlist `json:"playlist"`
		} `json:"playlists"`
	}
	q := make(url.Values)
	if username != "" {
		q.Set("username", username)
	}
	resp, err := call[response](ctx, c, "getPlaylists", q)
	return resp.Playlists.Playlist, err
}

// GetPlaylist returns a playlist with its songs.
func (c *Client) GetPlaylist(ctx context.Context, id string) (Playlist, error) {
	type response struct {
		Playlist Playlist `json:"playlist"`
	}
	resp, err := call[response](ctx, c, "getPlaylist", url.Values{"id": {id}})
	return resp.Playlist, err
}

// CreatePlaylist creates a playlist with the given name and songs. Servers at
// version 1.14.0 or later return the created playlist; older servers return a
// zero Playlist.
func (c *Client) CreatePlaylist(ctx context.Context, name string, songIDs []string) (Playlist, error) {
	type response struct {
		Playlist Playlist `json:"playlist"`
	}
	q := url.Values{"name": {name}}
	for _, id := range songIDs {
		q.Add("songId", id)
	}
	resp, err := call[response](ctx, c, "createPlaylist", q)
	return resp.Playlist, err
}

// UpdatePlaylist modifies a playlist. Only the owner of a playlist is allowed
// to update it.
func (c *Client) UpdatePlaylist(ctx context.Context, id string, update PlaylistUpdate) error {
	q := url.Values{"playlistId": {id}}
	if update.Name != "" {
		q.Set("name", update.Name)
	}
	if update.Comment != "" {
		q.Set("comment", update.Comment)
	}
	if update.Public != nil {
		q.Set("public", strconv.FormatBool(*update.Public))
	}
	for _, songID := range update.AddSongIDs {
		q.Add("songIdToAdd", songID)
	}
	for _, index := range update.RemoveIndexes {
		q.Add("songIndexToRemove", strconv.Itoa(index))
	}
	_, err := c.Call(ctx, "updatePlaylist", q)
	return err
}

// DeletePlaylist deletes a playlist. Only the owner of a playlist is allowed
// to delete it.
func (c *Client) DeletePlaylist(ctx context.Context, id string) error {
	_, err := c.Call(ctx, "deletePlaylist", url.Values{"id": {id}})
	return err
}
