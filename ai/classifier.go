package ai

import (
	"strings"
	"unicode/utf8"
)

// Emotion is a detected emotion category.
type Emotion string

const (
	EmotionJoy        Emotion = "joy"
	EmotionExcitement Emotion = "excitement"
	EmotionCuriosity  Emotion = "curiosity"
	EmotionConcern    Emotion = "concern"
	EmotionGratitude  Emotion = "gratitude"
	EmotionShy        Emotion = "shy"
	EmotionTsundere   Emotion = "tsundere"
	EmotionSearch     Emotion = "search"
	EmotionNeutral    Emotion = "neutral"
)

// emotionOrder pins the scan order of emotion categories. Ties on keyword
// score resolve to the earliest entry, so the order is part of the contract.
var emotionOrder = []Emotion{
	EmotionJoy,
	EmotionExcitement,
	EmotionCuriosity,
	EmotionConcern,
	EmotionGratitude,
	EmotionShy,
	EmotionTsundere,
	EmotionSearch,
}

// Mode is the persona tone selector.
type Mode string

const (
	ModeCute     Mode = "cute"
	ModeTsundere Mode = "tsundere"
	ModeSweet    Mode = "sweet"
)

// Topic is the coarse subject of an input.
type Topic string

const (
	TopicPrecure Topic = "precure"
	TopicArt     Topic = "art"
	TopicContent Topic = "content"
	TopicSocial  Topic = "social"
	TopicGeneral Topic = "general"
)

// LabelBundle is the classifier output for one turn.
type LabelBundle struct {
	Emotion        Emotion
	Mode           Mode
	Topic          Topic
	FranchiseFocus bool
	ContentRequest bool
	Engagement     float64
}

// Classifier maps free text to a LabelBundle. It is a pure function over
// the persona tables: no I/O, no mutable state, safe to share.
type Classifier struct {
	tables *Tables
}

// NewClassifier creates a classifier over the given tables.
func NewClassifier(tables *Tables) *Classifier {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Classifier{tables: tables}
}

// Classify labels a single input. Matching is case-folded substring
// containment throughout, not word matching.
func (c *Classifier) Classify(text string) LabelBundle {
	lower := strings.ToLower(text)

	emotion := c.detectEmotion(lower)
	mode := c.resolveMode(emotion, lower)

	return LabelBundle{
		Emotion:        emotion,
		Mode:           mode,
		Topic:          c.mainTopic(lower),
		FranchiseFocus: containsAny(lower, c.tables.FranchiseKeywords),
		ContentRequest: containsAny(lower, c.tables.SearchKeywords),
		Engagement:     c.Engagement(text),
	}
}

func (c *Classifier) detectEmotion(lower string) Emotion {
	best := EmotionNeutral
	bestScore := 0
	for _, emotion := range emotionOrder {
		score := 0
		for _, keyword := range c.tables.EmotionKeywords[emotion] {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
		if score > bestScore {
			best = emotion
			bestScore = score
		}
	}
	return best
}

// resolveMode picks the persona tone. The affectionate check only applies
// once some emotion matched; a fully neutral input always stays cute.
func (c *Classifier) resolveMode(emotion Emotion, lower string) Mode {
	if emotion == EmotionNeutral {
		return ModeCute
	}
	switch {
	case emotion == EmotionTsundere:
		return ModeTsundere
	case containsAny(lower, c.tables.AffectionKeywords):
		return ModeSweet
	default:
		return ModeCute
	}
}

// mainTopic tests topic categories in fixed priority order.
func (c *Classifier) mainTopic(lower string) Topic {
	switch {
	case containsAny(lower, c.tables.FranchiseKeywords):
		return TopicPrecure
	case containsAny(lower, c.tables.ArtKeywords):
		return TopicArt
	case containsAny(lower, c.tables.ContentKeywords):
		return TopicContent
	case containsAny(lower, c.tables.SocialKeywords):
		return TopicSocial
	default:
		return TopicGeneral
	}
}

// Engagement computes the saturating additive engagement score in [0, 1].
// Each satisfied condition adds its weight; the sum clamps at 1.0 and is
// never normalized.
func (c *Classifier) Engagement(text string) float64 {
	score := 0.5

	// Cure names are matched literally, without case folding.
	if containsAny(text, c.tables.FavoriteCures) {
		score += 0.3
	}
	if containsAny(strings.ToLower(text), c.tables.SearchKeywords) {
		score += 0.2
	}
	if utf8.RuneCountInString(text) > 20 {
		score += 0.1
	}
	if containsAny(text, decorativeSymbols) {
		score += 0.1
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}

// IsGreeting reports whether the input triggers the greeting override.
func (c *Classifier) IsGreeting(text string) bool {
	return containsAny(strings.ToLower(text), c.tables.GreetingPhrases)
}

var decorativeSymbols = []string{"!", "！", "♪", "〜"}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
