package subsonic

import "context"

// License contains the server's license details, as returned by GetLicense.
// Subsonic forks (Airsonic, Navidrome, ...) report a perpetually valid license.
type License struct {
	Email          string `json:"email"`
	TrialExpires   string `json:"trialExpires"`
	LicenseExpires string `json:"licenseExpires"`
	Valid          bool   `json:"valid"`
}

// ScanStatus reports whether a media library scan is in progress, and the
// number of items scanned so far.
type ScanStatus struct {
	Count    int64 `json:"count"`
	Scanning bool  `json:"scanning"`
}

// Ping tests connectivity with the server. On first use this also negotiates
// the protocol version.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Call(ctx, "ping", nil)
	return err
}

// GetLicense returns details about the server's software license.
func (c *Client) GetLicense(ctx context.Context) (License, error) {
	type response struct {
		License License `json:"license"`
	}
	resp, err := call[response](ctx, c, "getLicense", nil)
	return resp.License, err
}

// StartScan initiates a rescan of the media libraries. Requires server
// version 1.15.0.
func (c *Client) StartScan(ctx context.Context) (ScanStatus, error) {
	type response struct {
		ScanStatus ScanStatus `json:"scanStatus"`
	}
	resp, err := call[response](ctx, c, "startScan", nil)
	return resp.ScanStatus, err
}

// GetScanStatus returns the current status of media library scanning.
// Requires server version 1.15.0.
func (c *Client) GetScanStatus(ctx context.Context) (ScanStatus, error) {
	type response struct {
		ScanStatus ScanStatus `json:"scanStatus"`
	}
	resp, err := call[response](ctx, c, "getScanStatus", nil)
	return resp.ScanStatus, err
}
