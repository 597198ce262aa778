package chat

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirakira-dev/precure-chat-bot/ai"
	"github.com/kirakira-dev/precure-chat-bot/ai/localchat"
	"github.com/kirakira-dev/precure-chat-bot/database"
	"github.com/kirakira-dev/precure-chat-bot/history"
	"github.com/kirakira-dev/precure-chat-bot/logging"
	"github.com/kirakira-dev/precure-chat-bot/types"
)

// scriptedChatter answers every turn with a canned reply and records what
// it was asked.
type scriptedChatter struct {
	inputs []string
	reply  ai.Reply
	err    error
}

func (c *scriptedChatter) Respond(ctx context.Context, turn types.ChatTurn) (ai.Reply, error) {
	c.inputs = append(c.inputs, turn.Text)
	if c.err != nil {
		return ai.Reply{}, c.err
	}
	reply := c.reply
	if reply.Text == "" {
		reply.Text = "わーい♪ " + turn.Text
	}
	return reply, c.err
}

type recordingWriter struct {
	convs []database.Conversation
	err   error
}

func (w *recordingWriter) InsertConversation(ctx context.Context, conv database.Conversation) error {
	w.convs = append(w.convs, conv)
	return w.err
}

func newTestPersona(t *testing.T) *localchat.Responder {
	t.Helper()
	return localchat.Setup(ai.DefaultTables(), nil, nil, logging.Discard(),
		localchat.WithClock(func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.Local) }),
		localchat.WithRand(rand.New(rand.NewSource(1))),
	)
}

func runScript(t *testing.T, chatter ai.Chatter, db database.ConversationWriter, lines ...string) (*Session, *history.Log, string) {
	t.Helper()
	persona := newTestPersona(t)
	if chatter == nil {
		chatter = &scriptedChatter{}
	}
	log := history.NewLog(10)
	in := strings.NewReader(strings.Join(lines, "\n"))
	var out bytes.Buffer

	s := NewSession(chatter, persona, log, db, logging.Discard(), in, &out)
	require.NoError(t, s.Run(context.Background()))
	return s, log, out.String()
}

func TestSessionTurnAdvancesAndRecords(t *testing.T) {
	chatter := &scriptedChatter{}
	s, log, out := runScript(t, chatter, nil, "プリキュアが好き", "bye")

	assert.Equal(t, 1, s.Turns())
	assert.Equal(t, 1, log.Len())
	assert.Equal(t, []string{"プリキュアが好き"}, chatter.inputs)
	assert.Contains(t, out, "わーい♪ プリキュアが好き")

	last, ok := log.Last()
	require.True(t, ok)
	assert.Equal(t, "プリキュアが好き", last.Input)
}

func TestSessionEmptyInputDoesNotAdvance(t *testing.T) {
	chatter := &scriptedChatter{}
	s, log, out := runScript(t, chatter, nil, "", "   ", "bye")

	assert.Equal(t, 0, s.Turns())
	assert.Equal(t, 0, log.Len())
	assert.Empty(t, chatter.inputs)
	assert.Contains(t, out, "ちゃんとお話ししてくださいね")
}

func TestSessionExitWords(t *testing.T) {
	for _, word := range []string{"bye", "BYE", "バイバイ", "さようなら", "終了", "quit", "Exit"} {
		s, _, _ := runScript(t, nil, nil, word)
		assert.Equal(t, 0, s.Turns(), "word %q must exit before any turn", word)
	}
}

func TestSessionEOFClosesLikeExit(t *testing.T) {
	_, _, out := runScript(t, nil, nil, "こんにちは")
	// no exit word: the script just ends, and the farewell still prints
	assert.Contains(t, out, "会話統計")
}

func TestSessionCommands(t *testing.T) {
	chatter := &scriptedChatter{}
	_, _, out := runScript(t, chatter, nil, "/summary", "/mode", "/TIME", "/list", "bye")

	// commands never reach the chatter and never advance the turn count
	assert.Empty(t, chatter.inputs)
	assert.Contains(t, out, "まだ会話が始まったばかり")
	assert.Contains(t, out, "可愛いモード")
	assert.Contains(t, out, "09:00")
	assert.Contains(t, out, "まだ商用利用可能なコンテンツがありません")
}

func TestSessionFeedbackPersisted(t *testing.T) {
	chatter := &scriptedChatter{reply: ai.Reply{
		Text:   "ok",
		Bundle: ai.LabelBundle{Emotion: ai.EmotionJoy, Mode: ai.ModeCute, Topic: ai.TopicPrecure},
	}}
	db := &recordingWriter{}
	s, _, _ := runScript(t, chatter, db, "嬉しい！", "9", "bye")

	assert.Equal(t, 1, s.Turns(), "a score is not a turn")

	require.Len(t, db.convs, 1)
	conv := db.convs[0]
	assert.Equal(t, "general", conv.PatternType)
	assert.Equal(t, "joy", conv.Emotion)
	assert.Equal(t, "precure", conv.Topic)
	require.True(t, conv.QualityScore.Valid)
	assert.InDelta(t, 0.9, conv.QualityScore.Float64, 1e-9)
}

func TestSessionFeedbackBeforeAnyTurnNotPersisted(t *testing.T) {
	db := &recordingWriter{}
	s, _, _ := runScript(t, nil, db, "7", "bye")

	assert.Empty(t, db.convs)
	assert.Equal(t, 0, s.Turns(), "the score is acknowledged but is not a turn")
}

func TestSessionFeedbackWriteFailureContinues(t *testing.T) {
	db := &recordingWriter{err: fmt.Errorf("error inserting conversation: connection refused")}
	s, _, out := runScript(t, nil, db, "こんにちは世界", "8", "また話そう", "bye")

	// both turns complete despite the failed audit write
	assert.Equal(t, 2, s.Turns())
	assert.NotContains(t, out, "connection refused")
}

func TestSessionOutOfRangeNumberIsATurn(t *testing.T) {
	chatter := &scriptedChatter{}
	s, _, _ := runScript(t, chatter, nil, "11", "0", "bye")

	assert.Equal(t, 2, s.Turns())
	assert.Equal(t, []string{"11", "0"}, chatter.inputs)
}

func TestSessionChatterErrorReportedInCharacter(t *testing.T) {
	chatter := &scriptedChatter{err: fmt.Errorf("model unavailable")}
	s, log, out := runScript(t, chatter, nil, "こんにちは世界", "bye")

	assert.Equal(t, 0, s.Turns(), "a failed turn does not advance the count")
	assert.Equal(t, 0, log.Len())
	assert.Contains(t, out, "エラー内容: model unavailable")
	assert.Contains(t, out, "続けてお話しできますよ")
}

func TestSessionCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	persona := newTestPersona(t)
	var out bytes.Buffer
	s := NewSession(&scriptedChatter{}, persona, nil, nil, logging.Discard(),
		strings.NewReader("こんにちは\n"), &out)

	require.NoError(t, s.Run(ctx))
	assert.Equal(t, 0, s.Turns())
	assert.Contains(t, out.String(), "急に止まっちゃった")
}

func TestSessionPeriodicLinesAtTurnTen(t *testing.T) {
	lines := make([]string, 0, 11)
	for i := 0; i < 10; i++ {
		lines = append(lines, fmt.Sprintf("今日のお話その%dだよ", i+1))
	}
	lines = append(lines, "bye")

	s, _, out := runScript(t, &scriptedChatter{}, nil, lines...)
	require.Equal(t, 10, s.Turns())

	// turn 10 prints the feedback request and the learning report
	assert.Equal(t, 2, strings.Count(out, "1-10で評価していただけると学習に役立ちます"),
		"the feedback request fires at turns 5 and 10")
	learningReported := strings.Contains(out, "10回の会話から") ||
		strings.Contains(out, "10回のお話で") ||
		strings.Contains(out, "10回分のデータ")
	assert.True(t, learningReported, "the learning report fires at turn 10")
}

func TestSessionCancelDuringBlockedRead(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	// a pipe with no writer: Scan blocks the way an idle terminal does
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	s := NewSession(&scriptedChatter{}, newTestPersona(t), nil, nil, logging.Discard(), pr, &out)

	done := make(chan struct{})
	go func() {
		defer close(done)
		require.NoError(t, s.Run(ctx))
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("session did not stop while blocked on input")
	}
	assert.Contains(t, out.String(), "急に止まっちゃった")
	assert.Equal(t, 0, s.Turns())
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{input: "1", want: 1, ok: true},
		{input: "10", want: 10, ok: true},
		{input: "0", ok: false},
		{input: "11", ok: false},
		{input: "5.5", ok: false},
		{input: "abc", ok: false},
	}
	for _, tt := range tests {
		got, ok := parseScore(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		if tt.ok {
			assert.Equal(t, tt.want, got)
		}
	}
}
