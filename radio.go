package subsonic

import (
	"context"
	"net/url"
)

// RadioStation is an internet radio station configured on the server.
type RadioStation struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	StreamURL   string `json:"streamUrl"`
	HomePageURL string `json:"homePageUrl"`
}

// GetInternetRadioStations returns all internet radio stations.
func (c *Client) GetInternetRadioStations(ctx context.Context) ([]RadioStation, error) {
	type response struct {
		InternetRadioStations struct {
			InternetRadioStation []RadioStation `json:"internetRadioStation"`
		} `json:"internetRadioStations"`
	}
	resp, err := call[response](ctx, c, "getInternetRadioStations", nil)
	return resp.InternetRadioStations.InternetRadioStation, err
}

// CreateInternetRadioStation adds an internet radio station. Requires server
// version 1.16.0 and admin privileges. homePageURL is optional.
func (c *Client) CreateInternetRadioStation(ctx context.Context, streamURL, name, homePageURL string) error {
	q := url.Values{"streamUrl": {streamURL}, "name": {name}}
	if homePageURL != "" {
		q.Set("homepageUrl", homePageURL)
	}
	_, err := c.Call(ctx, "createInternetRadioStation", q)
	return err
}

// UpdateInternetRadioStation updates an internet radio station. Requires
// server version 1.16.0 and admin privileges.
func (c *Client) UpdateInternetRadioStation(ctx context.Context, id, streamURL, name, homePageURL string) error {
	q := url.Values{"id": {id}, "streamUrl": {streamURL}, "name": {name}}
	if homePageURL != "" {
		q.Set("homepageUrl", homePageURL)
	}
	_, err := c.Call(ctx, "updateInternetRadioStation", q)
	return err
}

// DeleteInternetRadioStation deletes an internet radio station. Requires
// server version 1.16.0 and admin privileges.
func (c *Client) DeleteInternetRadioStation(ctx context.Context, id string) error {
	_, err := c.Call(ctx, "deleteInternetRadioStation", url.Values{"id": {id}})
	return err
}
