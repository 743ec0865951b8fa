package support

import (
	"context"
	"testing"
	"time"
)

func TestSeededGreeting(t *testing.T) {
	c := NewChat(0)

	msgs := c.Messages()

	if len(msgs) != 1 || msgs[0].Sender != SenderBot {
		t.Fatalf("expected a single bot greeting, got %+v", msgs)
	}
}

func TestSendAppendsUserMessageAndBotReply(t *testing.T) {
	c := NewChat(0)

	ok := c.Send(context.Background(), "  My card is blocked  ", time.Now())

	if !ok {
		t.Fatal("send rejected valid input")
	}

	msgs := c.Messages()

	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3 (greeting, user, reply)", len(msgs))
	}

	if msgs[1].Sender != SenderUsr || msgs[1].Text != "My card is blocked" {
		t.Fatalf("user message not trimmed/appended: %+v", msgs[1])
	}

	if msgs[2].Sender != SenderBot {
		t.Fatalf("bot reply missing: %+v", msgs[2])
	}
}

func TestSendIgnoresBlankInput(t *testing.T) {
	c := NewChat(0)

	if c.Send(context.Background(), "   ", time.Now()) {
		t.Fatal("blank input must be ignored")
	}

	if len(c.Messages()) != 1 {
		t.Fatal("blank input must not touch the transcript")
	}
}

func TestDelayedReplyCancelled(t *testing.T) {
	c := NewChat(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	if !c.Send(ctx, "hello", time.Now()) {
		t.Fatal("send rejected valid input")
	}

	cancel()
	time.Sleep(100 * time.Millisecond)

	msgs := c.Messages()

	if len(msgs) != 2 {
		t.Fatalf("cancelled reply should be dropped, got %d messages", len(msgs))
	}
}

func TestDelayedReplyArrives(t *testing.T) {
	c := NewChat(10 * time.Millisecond)

	if !c.Send(context.Background(), "hello", time.Now()) {
		t.Fatal("send rejected valid input")
	}

	deadline := time.Now().Add(time.Second)

	for time.Now().Before(deadline) {
		if len(c.Messages()) == 3 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}

	t.Fatalf("bot reply never arrived: %+v", c.Messages())
}
