package subsonic

import (
	"context"
	"testing"
	"time"

	"github.com/clambin/subsonic/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Star(t *testing.T) {
	s := testutil.New("1.16.1")
	s.Payloads["star"] = ``
	s.Payloads["unstar"] = ``
	c := newTestClient(t, s)

	assert.NoError(t, c.Star(context.Background(), StarIDs{IDs: []string{"tr-1"}, AlbumIDs: []string{"al-1"}}))
	assert.NoError(t, c.Unstar(context.Background(), StarIDs{ArtistIDs: []string{"ar-1"}}))
}

func TestClient_Star_NothingToStar(t *testing.T) {
	s := testutil.New("1.16.1")
	c := newTestClient(t, s)

	var ire *InvalidRequestError
	require.ErrorAs(t, c.Star(context.Background(), StarIDs{}), &ire)
	require.ErrorAs(t, c.Unstar(context.Background(), StarIDs{}), &ire)
	assert.Empty(t, s.Requests())
}

func TestClient_SetRating(t *testing.T) {
	s := testutil.New("1.16.1")
	s.Payloads["setRating"] = ``
	c := newTestClient(t, s)

	assert.NoError(t, c.SetRating(context.Background(), "tr-1", 5))
	assert.NoError(t, c.SetRating(context.Background(), "tr-1", 0))
	assert.Error(t, c.SetRating(context.Background(), "tr-1", 6))
	assert.Error(t, c.SetRating(context.Background(), "tr-1", -1))
}

func TestClient_Scrobble(t *testing.T) {
	s := testutil.New("1.16.1")
	s.Payloads["scrobble"] = ``
	c := newTestClient(t, s)

	assert.NoError(t, c.Scrobble(context.Background(), "tr-1", time.Now(), true))
	assert.NoError(t, c.Scrobble(context.Background(), "tr-1", time.Time{}, false))
}
