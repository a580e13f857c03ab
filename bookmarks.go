package subsonic

import (
	"context"
	"net/url"
	"strconv"
)

// Bookmark is a saved position within a media file, typically used to resume
// audiobooks or podcasts.
type Bookmark struct {
	Username string `json:"username"`
	Comment  string `json:"comment"`
	Created  string `json:"created"`
	Changed  string `json:"changed"`
	Position int64  `json:"position"`
	Entry    Song   `json:"entry"`
}

// PlayQueue is the state of a user's play queue, for picking up playback on
// another device.
type PlayQueue struct {
	Current   string `json:"current"`
	Username  string `json:"username"`
	Changed   string `json:"changed"`
	ChangedBy string `json:"changedBy"`
	Position  int64  `json:"position"`
	Entry     []Song `json:"entry"`
}

// GetBookmarks returns all bookmarks of the authenticated user.
func (c *Client) GetBookmarks(ctx context.Context) ([]Bookmark, error) {
	type response struct {
		Bookmarks struct {
			Bookmark []Bookmark `json:"bookmark"`
		} `json:"bookmarks"`
	}
	resp, err := call[response](ctx, c, "getBookmarks", nil)
	return resp.Bookmarks.Bookmark, err
}

// CreateBookmark saves a position (in milliseconds) within the given media
// file, overwriting any existing bookmark for it. comment is optional.
func (c *Client) CreateBookmark(ctx context.Context, id string, position int64, comment string) error {
	q := url.Values{
		"id":       {id},
		"position": {strconv.FormatInt(position, 10)},
	}
	if comment != "" {
		q.Set("comment", comment)
	}
	_, err := c.Call(ctx, "createBookmark", q)
	return err
}

// DeleteBookmark removes the authenticated user's bookmark for the given
// media file.
func (c *Client) DeleteBookmark(ctx context.Context, id string) error {
	_, err := c.Call(ctx, "deleteBookmark", url.Values{"id": {id}})
	return err
}

// GetPlayQueue returns the authenticated user's saved play queue. Requires
// server version 1.12.0.
func (c *Client) GetPlayQueue(ctx context.Context) (PlayQueue, error) {
	type response struct {
		PlayQueue PlayQueue `json:"playQueue"`
	}
	resp, err := call[response](ctx, c, "getPlayQueue", nil)
	return resp.PlayQueue, err
}

// SavePlayQueue saves the play queue: the listed songs, the one currently
// playing, and the position (in milliseconds) within it. Requires server
// version 1.12.0.
func (c *Client) SavePlayQueue(ctx context.Context, ids []string, current string, position int64) error {
	q := make(url.Values)
	for _, id := range ids {
		q.Add("id", id)
	}
	if current != "" {
		q.Set("current", current)
	}
	if position > 0 {
		q.Set("position", strconv.FormatInt(position, 10))
	}
	_, err := c.Call(ctx, "savePlayQueue", q)
	return err
}
