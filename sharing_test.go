package subsonic

import (
	"context"
	"testing"
	"time"

	"github.com/clambin/subsonic/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetShares(t *testing.T) {
	s := testutil.New("1.16.1")
	s.Payloads["getShares"] = `"shares":{"share":[
		{"id":"sh-1","url":"https://music.example.com/share/sh-1","username":"admin","visitCount":3,"entry":[{"id":"tr-1","title":"Opening"}]}
	]}`
	c := newTestClient(t, s)

	shares, err := c.GetShares(context.Background())
	require.NoError(t, err)
	require.Len(t, shares, 1)
	assert.Equal(t, "https://music.example.com/share/sh-1", shares[0].URL)
	assert.Equal(t, 3, shares[0].VisitCount)
}

func TestClient_CreateShare(t *testing.T) {
	s := testutil.New("1.16.1")
	s.Payloads["createShare"] = `"shares":{"share":[{"id":"sh-2","url":"https://music.example.com/share/sh-2"}]}`
	c := newTestClient(t, s)

	share, err := c.CreateShare(context.Background(), []string{"al-1"}, "my favorite album", time.Now().Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "sh-2", share.ID)
	assert.NotEmpty(t, share.URL)
}

func TestClient_ShareManagement(t *testing.T) {
	s := testutil.New("1.16.1")
	s.Payloads["updateShare"] = ``
	s.Payloads["deleteShare"] = ``
	c := newTestClient(t, s)

	assert.NoError(t, c.UpdateShare(context.Background(), "sh-1", "new description", time.Time{}))
	assert.NoError(t, c.DeleteShare(context.Background(), "sh-1"))
}
