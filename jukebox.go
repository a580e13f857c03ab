package subsonic

import (
	"context"
	"net/url"
	"strconv"
)

// JukeboxStatus reports the state of the server-side jukebox player.
type JukeboxStatus struct {
	CurrentIndex int     `json:"currentIndex"`
	Position     int     `json:"position"`
	Gain         float64 `json:"gain"`
	Playing      bool    `json:"playing"`
}

// JukeboxPlaylist is the jukebox status plus its current playlist.
type JukeboxPlaylist struct {
	JukeboxStatus
	Entry []Song `json:"entry"`
}

// All jukebox operations require the jukebox role on the authenticated user.

// JukeboxGet returns the jukebox's current playlist and status.
func (c *Client) JukeboxGet(ctx context.Context) (JukeboxPlaylist, error) {
	resp, err := c.jukebox(ctx, "get", nil)
	return resp.JukeboxPlaylist, err
}

// JukeboxStatus returns the jukebox's playback status.
func (c *Client) JukeboxStatus(ctx context.Context) (JukeboxStatus, error) {
	resp, err := c.jukebox(ctx, "status", nil)
	return resp.JukeboxStatus, err
}

// JukeboxSet replaces the jukebox playlist with the given songs.
func (c *Client) JukeboxSet(ctx context.Context, ids []string) (JukeboxStatus, error) {
	q := make(url.Values)
	for _, id := range ids {
		q.Add("id", id)
	}
	resp, err := c.jukebox(ctx, "set", q)
	return resp.JukeboxStatus, err
}

// JukeboxAdd appends the given songs to the jukebox playlist.
func (c *Client) JukeboxAdd(ctx context.Context, ids []string) (JukeboxStatus, error) {
	q := make(url.Values)
	for _, id := range ids {
		q.Add("id", id)
	}
	resp, err := c.jukebox(ctx, "add", q)
	return resp.JukeboxStatus, err
}

// JukeboxRemove removes the song at the given playlist index.
func (c *Client) JukeboxRemove(ctx context.Context, index int) (JukeboxStatus, error) {
	resp, err := c.jukebox(ctx, "remove", url.Values{"index": {strconv.Itoa(index)}})
	return resp.JukeboxStatus, err
}

// JukeboxClear empties the jukebox playlist.
func (c *Client) JukeboxClear(ctx context.Context) (JukeboxStatus, error) {
	resp, err := c.jukebox(ctx, "clear", nil)
	return resp.JukeboxStatus, err
}

// JukeboxShuffle shuffles the jukebox playlist.
func (c *Client) JukeboxShuffle(ctx context.Context) (JukeboxStatus, error) {
	resp, err := c.jukebox(ctx, "shuffle", nil)
	return resp.JukeboxStatus, err
}

// JukeboxStart starts playback.
func (c *Client) JukeboxStart(ctx context.Context) (JukeboxStatus, error) {
	resp, err := c.jukebox(ctx, "start", nil)
	return resp.JukeboxStatus, err
}

// JukeboxStop pauses playback.
func (c *Client) JukeboxStop(ctx context.Context) (JukeboxStatus, error) {
	resp, err := c.jukebox(ctx, "stop", nil)
	return resp.JukeboxStatus, err
}

// JukeboxSkip skips to the song at the given playlist index. offset, if
// positive, starts playback that many seconds into the song.
func (c *Client) JukeboxSkip(ctx context.Context, index, offset int) (JukeboxStatus, error) {
	q := url.Values{"index": {strconv.Itoa(index)}}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	resp, err := c.jukebox(ctx, "skip", q)
	return resp.JukeboxStatus, err
}

// JukeboxSetGain sets the playback volume, between 0.0 and 1.0.
func (c *Client) JukeboxSetGain(ctx context.Context, gain float64) (JukeboxStatus, error) {
	resp, err := c.jukebox(ctx, "setGain", url.Values{"gain": {strconv.FormatFloat(gain, 'f', -1, 64)}})
	return resp.JukeboxStatus, err
}

type jukeboxResponse struct {
	JukeboxStatus   JukeboxStatus   `json:"jukeboxStatus"`
	JukeboxPlaylist JukeboxPlaylist `json:"jukeboxPlaylist"`
}

func (c *Client) jukebox(ctx context.Context, action string, q url.Values) (jukeboxResponse, error) {
	args := url.Values{"action": {action}}
	for key, values := range q {
		args[key] = values
	}
	return call[jukeboxResponse](ctx, c, "jukeboxControl", args)
}
