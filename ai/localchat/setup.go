// Package localchat is the template implementation of the chatter
// interface: canned response families addressed by emotion, personality
// mode, topic and time of day, with an optional video-search branch.
package localchat

import (
	"math/rand"
	"time"

	"github.com/kirakira-dev/precure-chat-bot/ai"
	"github.com/kirakira-dev/precure-chat-bot/database"
	"github.com/kirakira-dev/precure-chat-bot/logging"
	"github.com/kirakira-dev/precure-chat-bot/youtube"
)

const defaultMaxResults = 10

// Responder selects responses from the persona tables. It carries
// per-session state (the discovered video list), so every session needs
// its own instance; the tables themselves are shared and read-only.
type Responder struct {
	tables     *ai.Tables
	classifier *ai.Classifier
	searcher   youtube.Searcher
	videos     database.VideoWriter
	logger     *logging.Logger
	rnd        *rand.Rand
	now        func() time.Time
	maxResults int
	discovered []youtube.Video
}

// Option configures a Responder.
type Option func(*Responder)

// WithClock overrides the wall clock used for time buckets. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(r *Responder) {
		r.now = now
	}
}

// WithRand overrides the random source. Used in tests.
func WithRand(rnd *rand.Rand) Option {
	return func(r *Responder) {
		r.rnd = rnd
	}
}

// WithMaxResults caps how many videos one search folds into a reply.
func WithMaxResults(n int) Option {
	return func(r *Responder) {
		if n > 0 {
			r.maxResults = n
		}
	}
}

// Setup creates a template responder. A nil searcher disables the
// content-search branch; a nil videos writer disables video persistence.
func Setup(tables *ai.Tables, searcher youtube.Searcher, videos database.VideoWriter, logger *logging.Logger, opts ...Option) *Responder {
	if tables == nil {
		tables = ai.DefaultTables()
	}
	if logger == nil {
		logger = logging.Default()
	}

	r := &Responder{
		tables:     tables,
		classifier: ai.NewClassifier(tables),
		searcher:   searcher,
		videos:     videos,
		logger:     logger,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
		now:        time.Now,
		maxResults: defaultMaxResults,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Classifier exposes the responder's classifier so callers can label
// inputs without generating a reply.
func (r *Responder) Classifier() *ai.Classifier {
	return r.classifier
}

// Discovered returns the videos found so far this session, oldest first.
func (r *Responder) Discovered() []youtube.Video {
	out := make([]youtube.Video, len(r.discovered))
	copy(out, r.discovered)
	return out
}

func pick[T any](rnd *rand.Rand, candidates []T) T {
	return candidates[rnd.Intn(len(candidates))]
}
