// Package support implements the support chat transcript: user messages
// are appended immediately, the canned bot reply arrives after a delay.
package support

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	greeting  = "Hi! How can I help you today?"
	botReply  = "Thank you for your message! A support agent will reply shortly."
	SenderBot = "bot"
	SenderUsr = "user"
)

type Message struct {
	ID     string `json:"id"`
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type Chat struct {
	mu       sync.Mutex
	messages []Message
	delay    time.Duration
}

// NewChat seeds the transcript with the bot greeting. delay is how long
// the bot waits before replying; injectable so tests don't sleep.
func NewChat(delay time.Duration) *Chat {
	return &Chat{
		delay: delay,
		messages: []Message{
			{ID: "1", Sender: SenderBot, Text: greeting},
		},
	}
}

func (c *Chat) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Message, len(c.messages))
	copy(out, c.messages)

	return out
}

// Send appends the user's message and schedules the bot reply. Blank input
// is ignored. Cancelling the context before the delay elapses (screen
// dismissed) drops the reply.
func (c *Chat) Send(ctx context.Context, text string, now time.Time) bool {
	trimmed := strings.TrimSpace(text)

	if trimmed == "" {
		return false
	}

	c.mu.Lock()
	c.messages = append(c.messages, Message{
		ID:     strconv.FormatInt(now.UnixMilli(), 10),
		Sender: SenderUsr,
		Text:   trimmed,
	})
	c.mu.Unlock()

	if c.delay == 0 {
		c.reply(ctx, now)
	} else {
		go c.reply(ctx, now)
	}

	return true
}

func (c *Chat) reply(ctx context.Context, now time.Time) {
	if c.delay > 0 {
		timer := time.NewTimer(c.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
	}

	c.mu.Lock()
	c.messages = append(c.messages, Message{
		ID:     strconv.FormatInt(now.UnixMilli()+1, 10),
		Sender: SenderBot,
		Text:   botReply,
	})
	c.mu.Unlock()
}
