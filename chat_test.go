package subsonic

import (
	"context"
	"testing"
	"time"

	"github.com/clambin/subsonic/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetChatMessages(t *testing.T) {
	s := testutil.New("1.16.1")
	s.Payloads["getChatMessages"] = `"chatMessages":{"chatMessage":[
		{"username":"admin","message":"anyone up for some jazz?","time":1678901234000}
	]}`
	c := newTestClient(t, s)

	messages, err := c.GetChatMessages(context.Background(), time.Time{})
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "anyone up for some jazz?", messages[0].Message)
	assert.Equal(t, time.UnixMilli(1678901234000), messages[0].Sent())
}

func TestClient_AddChatMessage(t *testing.T) {
	s := testutil.New("1.16.1")
	s.Payloads["addChatMessage"] = ``
	c := newTestClient(t, s)

	assert.NoError(t, c.AddChatMessage(context.Background(), "sure, queue it up"))
}
