package subsonic

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// Share is a set of songs, albums or videos published under a public URL.
type Share struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Username    string `json:"username"`
	Created     string `json:"created"`
	Expires     string `json:"expires"`
	LastVisited string `json:"lastVisited"`
	VisitCount  int    `json:"visitCount"`
	Entry       []Song `json:"entry"`
}

// GetShares returns all shares the authenticated user can see.
func (c *Client) GetShares(ctx context.Context) ([]Share, error) {
	type response struct {
		Shares struct {
			Share []Share `json:"share"`
		} `json:"shares"`
	}
	resp, err := call[response](ctx, c, "getShares", nil)
	return resp.Shares.Share, err
}

// CreateShare publishes the given songs, albums or videos under a public URL
// and returns the created share. description is optional; a zero expiry
// leaves the share valid indefinitely.
func (c *Client) CreateShare(ctx context.Context, ids []string, description string, expires time.Time) (Share, error) {
	type response struct {
		Shares struct {
			Share []Share `json:"share"`
		} `json:"shares"`
	}
	q := make(url.Values)
	for _, id := range ids {
		q.Add("id", id)
	}
	if description != "" {
		q.Set("description", description)
	}
	if !expires.IsZero() {
		q.Set("expires", strconv.FormatInt(expires.UnixMilli(), 10))
	}
	resp, err := call[response](ctx, c, "createShare", q)
	if err != nil {
		return Share{}, err
	}
	if len(resp.Shares.Share) == 0 {
		return Share{}, nil
	}
	return resp.Shares.Share[0], nil
}

// UpdateShare updates a share's description and expiry. A zero expiry
// removes the current expiry.
func (c *Client) UpdateShare(ctx context.Context, id, description string, expires time.Time) error {
	q := url.Values{"id": {id}}
	if description != "" {
		q.Set("description", description)
	}
	if !expires.IsZero() {
		q.Set("expires", strconv.FormatInt(expires.UnixMilli(), 10))
	}
	_, err := c.Call(ctx, "updateShare", q)
	return err
}

// DeleteShare deletes a share.
func (c *Client) DeleteShare(ctx context.Context, id string) error {
	_, err := c.Call(ctx, "deleteShare", url.Values{"id": {id}})
	return err
}
