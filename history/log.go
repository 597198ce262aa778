// Package history keeps the per-session interaction log. The log is a
// bounded FIFO: the newest record evicts the oldest once capacity is hit,
// and records are never mutated after creation.
package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/kirakira-dev/precure-chat-bot/ai"
)

// DefaultCapacity bounds a session log unless the caller asks otherwise.
const DefaultCapacity = 100

// continuityWindow is how many trailing records count toward topic continuity.
const continuityWindow = 3

// Interaction is one completed turn.
type Interaction struct {
	UUID   uuid.UUID
	Input  string
	Output string
	Bundle ai.LabelBundle
	Topic  ai.Topic
	Time   time.Time
}

// Log is a bounded, append-only interaction buffer. It is not safe for
// concurrent use; every session owns its own Log.
type Log struct {
	capacity int
	entries  []Interaction
}

// NewLog creates a log holding at most capacity records. Non-positive
// capacities fall back to DefaultCapacity.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		capacity: capacity,
		entries:  make([]Interaction, 0, capacity),
	}
}

// Append records a turn, evicting the oldest record when full.
func (l *Log) Append(rec Interaction) {
	if len(l.entries) >= l.capacity {
		l.entries = l.entries[1:]
	}
	l.entries = append(l.entries, rec)
}

// Len returns the number of records currently held.
func (l *Log) Len() int {
	return len(l.entries)
}

// Last returns the most recent record, if any.
func (l *Log) Last() (Interaction, bool) {
	if len(l.entries) == 0 {
		return Interaction{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Entries returns a copy of the records in insertion order.
func (l *Log) Entries() []Interaction {
	out := make([]Interaction, len(l.entries))
	copy(out, l.entries)
	return out
}

// TopicContinuity counts how many of the last three records share topic.
func (l *Log) TopicContinuity(topic ai.Topic) int {
	if len(l.entries) < 2 {
		return 0
	}
	start := len(l.entries) - continuityWindow
	if start < 0 {
		start = 0
	}
	count := 0
	for _, rec := range l.entries[start:] {
		if rec.Topic == topic {
			count++
		}
	}
	return count
}

// TopicCounts tallies records by topic.
func (l *Log) TopicCounts() map[ai.Topic]int {
	counts := make(map[ai.Topic]int, len(l.entries))
	for _, rec := range l.entries {
		counts[rec.Topic]++
	}
	return counts
}

// ModeCounts tallies records by personality mode.
func (l *Log) ModeCounts() map[ai.Mode]int {
	counts := make(map[ai.Mode]int, len(l.entries))
	for _, rec := range l.entries {
		counts[rec.Bundle.Mode]++
	}
	return counts
}
