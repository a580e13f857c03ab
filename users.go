package subsonic

import (
	"context"
	"net/url"
	"strconv"
)

// User is a server account and its granted roles.
type User struct {
	Username          string `json:"username"`
	Email             string `json:"email"`
	MaxBitRate        int    `json:"maxBitRate"`
	ScrobblingEnabled bool   `json:"scrobblingEnabled"`
	AdminRole         bool   `json:"adminRole"`
	SettingsRole      bool   `json:"settingsRole"`
	DownloadRole      bool   `json:"downloadRole"`
	UploadRole        bool   `json:"uploadRole"`
	PlaylistRole      bool   `json:"playlistRole"`
	CoverArtRole      bool   `json:"coverArtRole"`
	CommentRole       bool   `json:"commentRole"`
	PodcastRole       bool   `json:"podcastRole"`
	StreamRole        bool   `json:"streamRole"`
	JukeboxRole       bool   `json:"jukeboxRole"`
	ShareRole         bool   `json:"shareRole"`
	VideoConversion   bool   `json:"videoConversionRole"`
	Folder            []int  `json:"folder"`
}

// UserSettings are the mutable attributes of an account. Zero values leave
// the corresponding attribute unchanged.
type UserSettings struct {
	Password   string
	Email      string
	MaxBitRate int
}

// GetUser returns the account with the given username. Getting an account
// other than the authenticated user's requires admin privileges.
func (c *Client) GetUser(ctx context.Context, username string) (User, error) {
	type response struct {
		User User `json:"user"`
	}
	resp, err := call[response](ctx, c, "getUser", url.Values{"username": {username}})
	return resp.User, err
}

// GetUsers returns all accounts on the server. Requires admin privileges.
func (c *Client) GetUsers(ctx context.Context) ([]User, error) {
	type response struct {
		Users struct {
			User []User `json:"user"`
		} `json:"users"`
	}
	resp, err := call[response](ctx, c, "getUsers", nil)
	return resp.Users.User, err
}

// CreateUser creates an account. Requires admin privileges.
func (c *Client) CreateUser(ctx context.Context, username, password, email string) error {
	_, err := c.Call(ctx, "createUser", url.Values{
		"username": {username},
		"password": {password},
		"email":    {email},
	})
	return err
}

// UpdateUser updates an account's settings. Requires admin privileges.
func (c *Client) UpdateUser(ctx context.Context, username string, settings UserSettings) error {
	q := url.Values{"username": {username}}
	if settings.Password != "" {
		q.Set("password", settings.Password)
	}
	if settings.Email != "" {
		q.Set("email", settings.Email)
	}
	if settings.MaxBitRate > 0 {
		q.Set("maxBitRate", strconv.Itoa(settings.MaxBitRate))
	}
	_, err := c.Call(ctx, "updateUser", q)
	return err
}

// DeleteUser deletes an account. Requires admin privileges.
func (c *Client) DeleteUser(ctx context.Context, username string) error {
	_, err := c.Call(ctx, "deleteUser", url.Values{"username": {username}})
	return err
}

// ChangePassword changes an account's password. Changing another account's
// password requires admin privileges.
func (c *Client) ChangePassword(ctx context.Context, username, password string) error {
	_, err := c.Call(ctx, "changePassword", url.Values{
		"username": {username},
		"password": {password},
	})
	return err
}
