package subsonic

import (
	"context"
	"net/url"
	"strconv"
)

// PodcastChannel is a podcast subscription on the server.
type PodcastChannel struct {
	ID               string           `json:"id"`
	URL              string           `json:"url"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	CoverArt         string           `json:"coverArt"`
	OriginalImageURL string           `json:"originalImageUrl"`
	Status           string           `json:"status"`
	ErrorMessage     string           `json:"errorMessage"`
	Episode          []PodcastEpisode `json:"episode"`
}

// PodcastEpisode is a single episode of a podcast channel. Episodes can only
// be streamed (via StreamID) once their Status is "completed".
type PodcastEpisode struct {
	Song
	StreamID    string `json:"streamId"`
	ChannelID   string `json:"channelId"`
	Description string `json:"description"`
	Status      string `json:"status"`
	PublishDate string `json:"publishDate"`
}

// GetPodcasts returns all podcast channels, with their episodes. id limits
// the result to a single channel; pass an empty string for all channels.
func (c *Client) GetPodcasts(ctx context.Context, id string) ([]PodcastChannel, error) {
	type response struct {
		Podcasts struct {
			Channel []PodcastChannel `json:"channel"`
		} `json:"podcasts"`
	}
	q := make(url.Values)
	if id != "" {
		q.Set("id", id)
	}
	resp, err := call[response](ctx, c, "getPodcasts", q)
	return resp.Podcasts.Channel, err
}

// GetNewestPodcasts returns the most recently published podcast episodes
// across all channels. Requires server version 1.13.0.
func (c *Client) GetNewestPodcasts(ctx context.Context, count int) ([]PodcastEpisode, error) {
	type response struct {
		NewestPodcasts struct {
			Episode []PodcastEpisode `json:"episode"`
		} `json:"newestPodcasts"`
	}
	q := make(url.Values)
	if count > 0 {
		q.Set("count", strconv.Itoa(count))
	}
	resp, err := call[response](ctx, c, "getNewestPodcasts", q)
	return resp.NewestPodcasts.Episode, err
}

// RefreshPodcasts asks the server to check for new podcast episodes. The
// server refreshes asynchronously; this returns as soon as the refresh is
// scheduled.
func (c *Client) RefreshPodcasts(ctx context.Context) error {
	_, err := c.Call(ctx, "refreshPodcasts", nil)
	return err
}

// CreatePodcastChannel subscribes the server to a podcast feed.
func (c *Client) CreatePodcastChannel(ctx context.Context, feedURL string) error {
	_, err := c.Call(ctx, "createPodcastChannel", url.Values{"url": {feedURL}})
	return err
}

// DeletePodcastChannel deletes a podcast channel.
func (c *Client) DeletePodcastChannel(ctx context.Context, id string) error {
	_, err := c.Call(ctx, "deletePodcastChannel", url.Values{"id": {id}})
	return err
}

// DownloadPodcastEpisode asks the server to download a podcast episode. Like
// RefreshPodcasts, the download happens asynchronously.
func (c *Client) DownloadPodcastEpisode(ctx context.Context, id string) error {
	_, err := c.Call(ctx, "downloadPodcastEpisode", url.Values{"id": {id}})
	return err
}

// DeletePodcastEpisode deletes a downloaded podcast episode.
func (c *Client) DeletePodcastEpisode(ctx context.Context, id string) error {
	_, err := c.Call(ctx, "deletePodcastEpisode", url.Values{"id": {id}})
	return err
}
