package subsonic

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// StarIDs identifies the items to star or unstar. IDs hold songs or
// directories; AlbumIDs and ArtistIDs hold ID3-organised albums and artists.
// At least one field must be non-empty.
type StarIDs struct {
	IDs       []string
	AlbumIDs  []string
	ArtistIDs []string
}

func (s StarIDs) values() url.Values {
	q := make(url.Values)
	for _, id := range s.IDs {
		q.Add("id", id)
	}
	for _, id := range s.AlbumIDs {
		q.Add("albumId", id)
	}
	for _, id := range s.ArtistIDs {
		q.Add("artistId", id)
	}
	return q
}

// Star attaches a star to the given items.
func (c *Client) Star(ctx context.Context, ids StarIDs) error {
	q := ids.values()
	if len(q) == 0 {
		return &InvalidRequestError{Endpoint: "star", Missing: []string{"id"}}
	}
	_, err := c.Call(ctx, "star", q)
	return err
}

// Unstar removes a star from the given items.
func (c *Client) Unstar(ctx context.Context, ids StarIDs) error {
	q := ids.values()
	if len(q) == 0 {
		return &InvalidRequestError{Endpoint: "unstar", Missing: []string{"id"}}
	}
	_, err := c.Call(ctx, "unstar", q)
	return err
}

// SetRating sets the rating of a song, album or artist, between 1 and 5.
// A rating of 0 removes the current rating.
func (c *Client) SetRating(ctx context.Context, id string, rating int) error {
	if rating < 0 || rating > 5 {
		return fmt.Errorf("subsonic: rating must be between 0 and 5, got %d", rating)
	}
	_, err := c.Call(ctx, "setRating", url.Values{
		"id":     {id},
		"rating": {strconv.Itoa(rating)},
	})
	return err
}

// Scrobble registers the playback of a song. With submission set, the play is
// submitted as a finished listen: the server updates play counts and, if
// configured, forwards it to last.fm. Without it, the song is only marked as
// "now playing". A zero playedAt uses the server's current time.
func (c *Client) Scrobble(ctx context.Context, id string, playedAt time.Time, submission bool) error {
	q := url.Values{
		"id":         {id},
		"submission": {strconv.FormatBool(submission)},
	}
	if !playedAt.IsZero() {
		q.Set("time", strconv.FormatInt(playedAt.UnixMilli(), 10))
	}
	_, err := c.Call(ctx, "scrobble", q)
	return err
}
