package discord

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kirakira-dev/precure-chat-bot/ai"
	"github.com/kirakira-dev/precure-chat-bot/logging"
	"github.com/kirakira-dev/precure-chat-bot/types"
)

// overlapChatter records how many Respond calls run at the same time.
type overlapChatter struct {
	inFlight int32
	maxSeen  int32
	calls    int32
}

func (c *overlapChatter) Respond(ctx context.Context, turn types.ChatTurn) (ai.Reply, error) {
	n := atomic.AddInt32(&c.inFlight, 1)
	for {
		max := atomic.LoadInt32(&c.maxSeen)
		if n <= max || atomic.CompareAndSwapInt32(&c.maxSeen, max, n) {
			break
		}
	}
	time.Sleep(time.Millisecond)
	atomic.AddInt32(&c.inFlight, -1)
	atomic.AddInt32(&c.calls, 1)
	return ai.Reply{Text: "ok: " + turn.Text}, nil
}

func TestNeedsResponse(t *testing.T) {
	tests := []struct {
		content string
		want    bool
	}{
		{content: "プリキュアの話しよう", want: true},
		{content: "hey CureAI, what's up?", want: true},
		{content: "precure rules", want: true},
		{content: "unrelated chatter", want: false},
		{content: "", want: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, needsResponse(tt.content), "content %q", tt.content)
	}
}

// Message events arrive on one goroutine each, but the chatter keeps
// per-session state, so turns must be handled one at a time.
func TestRespondSerializesOverlappingEvents(t *testing.T) {
	chatter := &overlapChatter{}
	client := &Client{chatter: chatter, logger: logging.Discard()}

	const events = 8
	var wg sync.WaitGroup
	for i := 0; i < events; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text, ok := client.respond("user", fmt.Sprintf("プリキュア %d", i))
			assert.True(t, ok)
			assert.NotEmpty(t, text)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(events), atomic.LoadInt32(&chatter.calls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&chatter.maxSeen),
		"turns must never reach the chatter concurrently")
}

func TestRespondSkipsUnrelatedMessages(t *testing.T) {
	chatter := &overlapChatter{}
	client := &Client{chatter: chatter, logger: logging.Discard()}

	_, ok := client.respond("user", "nothing to see here")
	assert.False(t, ok)
	assert.Equal(t, int32(0), atomic.LoadInt32(&chatter.calls))
}
