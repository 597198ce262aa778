// Package chat runs the line-oriented conversation loop: one input, one
// classify→respond→record cycle, with control commands and feedback scores
// handled before anything reaches the responder.
package chat

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/kirakira-dev/precure-chat-bot/ai"
	"github.com/kirakira-dev/precure-chat-bot/ai/localchat"
	"github.com/kirakira-dev/precure-chat-bot/database"
	"github.com/kirakira-dev/precure-chat-bot/history"
	"github.com/kirakira-dev/precure-chat-bot/logging"
	"github.com/kirakira-dev/precure-chat-bot/metrics"
	"github.com/kirakira-dev/precure-chat-bot/types"
)

// BotName is the display name used on every output line.
const BotName = "キュアAI"

// exitWords end the session. Matched case-insensitively against the whole
// input line.
var exitWords = []string{"bye", "バイバイ", "さようなら", "終了", "quit", "exit"}

// Session is one interactive conversation. It owns its history log; two
// sessions never share mutable state.
type Session struct {
	chatter ai.Chatter
	persona *localchat.Responder
	log     *history.Log
	db      database.ConversationWriter
	logger  *logging.Logger
	out     io.Writer
	scanner *bufio.Scanner
	rnd     *rand.Rand
	turns   int
}

// NewSession wires a session. chatter generates turn replies (template or
// hosted); persona supplies the command and flavor text and is usually the
// same object or the hosted chatter's fallback. db may be nil to disable
// the audit trail.
func NewSession(chatter ai.Chatter, persona *localchat.Responder, log *history.Log,
	db database.ConversationWriter, logger *logging.Logger, in io.Reader, out io.Writer) *Session {
	if log == nil {
		log = history.NewLog(history.DefaultCapacity)
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Session{
		chatter: chatter,
		persona: persona,
		log:     log,
		db:      db,
		logger:  logger,
		out:     out,
		scanner: bufio.NewScanner(in),
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Turns returns how many conversational turns completed so far.
func (s *Session) Turns() int {
	return s.turns
}

// Run drives the loop until an exit command, EOF, or context cancellation.
// It always returns nil: per-turn failures are reported in character and
// the loop continues.
func (s *Session) Run(ctx context.Context) error {
	s.printBanner()

	// Lines arrive over a channel so cancellation interrupts a blocked
	// read. The reader goroutine may stay parked on a final Scan; the
	// process is on its way out when that happens.
	lines := make(chan string)
	go func() {
		defer close(lines)
		for s.scanner.Scan() {
			select {
			case lines <- s.scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			s.sayf("%s", s.persona.InterruptFarewell())
			return nil
		default:
		}

		fmt.Fprintf(s.out, "\n[%d] あなた: ", s.turns+1)

		var line string
		select {
		case <-ctx.Done():
			s.sayf("%s", s.persona.InterruptFarewell())
			return nil
		case text, ok := <-lines:
			if !ok {
				// EOF closes the session like an exit command.
				s.farewell()
				return nil
			}
			line = text
		}

		input := strings.TrimSpace(line)
		if input == "" {
			metrics.EmptyInputCount.Add(1)
			s.sayf("%s", s.persona.RetryPrompt())
			continue
		}

		if s.handleCommand(input) {
			continue
		}
		if isExit(input) {
			s.farewell()
			return nil
		}
		if score, ok := parseScore(input); ok {
			s.handleFeedback(ctx, score)
			continue
		}

		s.handleTurn(ctx, input)
	}
}

func (s *Session) printBanner() {
	fmt.Fprintln(s.out, strings.Repeat("=", 70))
	fmt.Fprintf(s.out, "🌟 %s 🌟\n", BotName)
	fmt.Fprintln(s.out, strings.Repeat("=", 70))
	s.sayf("%s", s.persona.InitialGreeting())
	s.sayf("(コマンド: '/summary'=要約, '/mode'=モード確認, '/time'=時刻確認, '/list'=動画一覧, 'bye'=終了)")
	s.sayf("数字1-10で私の応答を評価してね〜♪")
}

// handleCommand reports whether input was a control command.
func (s *Session) handleCommand(input string) bool {
	switch strings.ToLower(input) {
	case "/summary":
		s.sayf("📊 %s", s.persona.Summary(s.log))
	case "/mode":
		if last, ok := s.log.Last(); ok {
			s.sayf("🎭 今は%sですね〜♪", localchat.ModeName(last.Bundle.Mode))
		} else {
			s.sayf("🎭 まだ会話してないから分からないけど、基本は可愛いモードですよ〜♪")
		}
	case "/time":
		s.sayf("🕒 %s", s.persona.TimeLine())
	case "/list":
		s.sayf("%s", s.persona.ListContent())
	default:
		return false
	}
	return true
}

func (s *Session) handleFeedback(ctx context.Context, score int) {
	metrics.FeedbackCount.Add(1)
	metrics.FeedbackScores.Observe(float64(score) / 10.0)
	s.sayf("%s", s.persona.FeedbackResponse(score))

	// The score attaches to the most recent turn; with no turns yet there
	// is nothing to persist.
	last, ok := s.log.Last()
	if !ok || s.db == nil {
		return
	}
	conv := database.Conversation{
		PatternType:  "general",
		Emotion:      string(last.Bundle.Emotion),
		Topic:        string(last.Topic),
		Mode:         string(last.Bundle.Mode),
		QualityScore: sql.NullFloat64{Float64: float64(score) / 10.0, Valid: true},
		Time:         time.Now(),
	}
	if err := s.db.InsertConversation(ctx, conv); err != nil {
		metrics.AuditWriteFailCount.Add(1)
		s.logger.Error("failed to persist feedback", "error", err.Error())
	}
}

func (s *Session) handleTurn(ctx context.Context, input string) {
	turn := types.NewChatTurn("user", input)

	start := time.Now()
	reply, err := s.chatter.Respond(ctx, turn)
	metrics.ResponseDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		// Nothing in a turn is fatal: apologize, show the raw error, move on.
		s.logger.Error("turn failed", "error", err.Error(), "turnID", turn.UUID)
		s.sayf("%s", s.persona.Apology())
		s.sayf("エラー内容: %s", err.Error())
		s.sayf("でも大丈夫！続けてお話しできますよ〜♪")
		return
	}

	s.sayf("%s", reply.Text)

	s.log.Append(history.Interaction{
		UUID:   turn.UUID,
		Input:  input,
		Output: reply.Text,
		Bundle: reply.Bundle,
		Topic:  reply.Bundle.Topic,
		Time:   turn.Time,
	})

	s.turns++
	metrics.TurnCount.Add(1)
	metrics.TurnsByMode.WithLabelValues(string(reply.Bundle.Mode)).Inc()
	metrics.TurnsByEmotion.WithLabelValues(string(reply.Bundle.Emotion)).Inc()

	s.periodicExtras()
}

// periodicExtras drops the flavor lines the persona is known for: a
// feedback request every 5 turns (or trivia on a coin flip every 3), and
// an independent learning report every 10, so turn 10 prints both.
func (s *Session) periodicExtras() {
	if s.turns%5 == 0 {
		s.sayf("%s", s.persona.FeedbackRequest())
	} else if s.turns%3 == 0 && s.rnd.Float64() < 0.6 {
		s.sayf("%s", s.persona.TriviaLine())
	}

	if s.turns%10 == 0 {
		s.sayf("%s", s.persona.LearningLine(s.turns))
	}
}

func (s *Session) farewell() {
	s.sayf("%s", s.persona.Farewell(s.turns))
	if s.turns == 0 {
		return
	}
	fmt.Fprintln(s.out, "\n📊 今日の会話統計:")
	fmt.Fprintf(s.out, "   💬 会話回数: %d回\n", s.turns)
	fmt.Fprintf(s.out, "   🕒 会話時間帯: %s\n", localchat.BucketName(s.persona.CurrentBucket()))
	for mode, count := range s.log.ModeCounts() {
		fmt.Fprintf(s.out, "   🎭 %s: %d回\n", localchat.ModeName(mode), count)
	}
}

func (s *Session) sayf(format string, args ...any) {
	fmt.Fprintf(s.out, "\n%s: ", BotName)
	fmt.Fprintf(s.out, format, args...)
	fmt.Fprintln(s.out)
}

func isExit(input string) bool {
	lower := strings.ToLower(input)
	for _, word := range exitWords {
		if lower == word {
			return true
		}
	}
	return false
}

// parseScore interprets bare integers 1–10 as feedback scores.
func parseScore(input string) (int, bool) {
	score, err := strconv.Atoi(input)
	if err != nil || score < 1 || score > 10 {
		return 0, false
	}
	return score, true
}
