package subsonic

import (
	"context"
	"testing"

	"github.com/clambin/subsonic/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetUser(t *testing.T) {
	s := testutil.New("1.16.1")
	s.Payloads["getUser"] = `"user":{"username":"admin","email":"admin@example.com","adminRole":true,"streamRole":true,"jukeboxRole":false,"folder":[0,1]}`
	c := newTestClient(t, s)

	user, err := c.GetUser(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.True(t, user.AdminRole)
	assert.True(t, user.StreamRole)
	assert.False(t, user.JukeboxRole)
	assert.Equal(t, []int{0, 1}, user.Folder)
}

func TestClient_GetUsers(t *testing.T) {
	s := testutil.New("1.16.1")
	s.Payloads["getUsers"] = `"users":{"user":[{"username":"admin","adminRole":true},{"username":"guest"}]}`
	c := newTestClient(t, s)

	users, err := c.GetUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "guest", users[1].Username)
	assert.False(t, users[1].AdminRole)
}

func TestClient_UserManagement(t *testing.T) {
	s := testutil.New("1.16.1")
	for _, endpoint := range []string{"createUser", "updateUser", "deleteUser", "changePassword"} {
		s.Payloads[endpoint] = ``
	}
	c := newTestClient(t, s)

	assert.NoError(t, c.CreateUser(context.Background(), "guest", "guest-password", "guest@example.com"))
	assert.NoError(t, c.UpdateUser(context.Background(), "guest", UserSettings{MaxBitRate: 128}))
	assert.NoError(t, c.ChangePassword(context.Background(), "guest", "better-password"))
	assert.NoError(t, c.DeleteUser(context.Background(), "guest"))
}
