package subsonic

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// ChatMessage is a message on the server's shared chat log.
type ChatMessage struct {
	Username string `json:"username"`
	Message  string `json:"message"`
	Time     int64  `json:"time"`
}

// Sent returns the time the message was posted.
func (m ChatMessage) Sent() time.Time {
	return time.UnixMilli(m.Time)
}

// GetChatMessages returns chat messages posted after since. A zero since
// returns all messages.
func (c *Client) GetChatMessages(ctx context.Context, since time.Time) ([]ChatMessage, error) {
	type response struct {
		ChatMessages struct {
			ChatMessage []ChatMessage `json:"chatMessage"`
		} `json:"chatMessages"`
	}
	q := make(url.Values)
	if !since.IsZero() {
		q.Set("since", strconv.FormatInt(since.UnixMilli(), 10))
	}
	resp, err := call[response](ctx, c, "getChatMessages", q)
	return resp.ChatMessages.ChatMessage, err
}

// AddChatMessage posts a message to the chat log.
func (c *Client) AddChatMessage(ctx context.Context, message string) error {
	_, err := c.Call(ctx, "addChatMessage", url.Values{"message": {message}})
	return err
}
