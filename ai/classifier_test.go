package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyEmotion(t *testing.T) {
	c := NewClassifier(DefaultTables())

	tests := []struct {
		name string
		text string
		want Emotion
	}{
		{name: "joy keyword", text: "やった！テストに受かった", want: EmotionJoy},
		{name: "excitement keyword", text: "変身シーンがかっこいい", want: EmotionExcitement},
		{name: "curiosity keyword", text: "プリキュアについて教えて", want: EmotionCuriosity},
		{name: "concern keyword", text: "明日のこと心配なんだ", want: EmotionConcern},
		{name: "gratitude keyword", text: "ありがとう、おかげで元気出た", want: EmotionGratitude},
		{name: "shy keyword", text: "えへへ、恥ずかしいな", want: EmotionShy},
		{name: "tsundere keyword", text: "別にあんたのためじゃないし", want: EmotionTsundere},
		{name: "search keyword", text: "プリキュアの動画を検索して", want: EmotionSearch},
		{name: "no keywords", text: "megaphone", want: EmotionNeutral},
		{name: "case folded latin keyword", text: "SEARCH for cure videos", want: EmotionSearch},
		// substring containment, not word matching
		{name: "keyword inside longer word", text: "このまぁるい妖精", want: EmotionTsundere},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)
			assert.Equal(t, tt.want, got.Emotion)
		})
	}
}

func TestClassifyEmotionTieBreak(t *testing.T) {
	c := NewClassifier(DefaultTables())

	// One joy keyword and one curiosity keyword tie at score 1; joy is
	// earlier in the pinned order and must win.
	got := c.Classify("やった、知りたいことがある")
	assert.Equal(t, EmotionJoy, got.Emotion)

	// Two curiosity keywords beat one joy keyword.
	got = c.Classify("やった、どうしてか知りたい")
	assert.Equal(t, EmotionCuriosity, got.Emotion)
}

func TestClassifyMode(t *testing.T) {
	c := NewClassifier(DefaultTables())

	tests := []struct {
		name string
		text string
		want Mode
	}{
		{name: "tsundere emotion wins", text: "ふんっ、一緒に見てあげる", want: ModeTsundere},
		{name: "affection keyword", text: "嬉しい！ぎゅーして", want: ModeSweet},
		{name: "joy defaults to cute", text: "やった！最高！", want: ModeCute},
		{name: "neutral stays cute", text: "megaphone", want: ModeCute},
		// affection keyword without any emotion keyword stays cute
		{name: "affection without emotion", text: "一緒に帰ろう", want: ModeCute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)
			assert.Equal(t, tt.want, got.Mode)
		})
	}
}

func TestClassifyTopicPriority(t *testing.T) {
	c := NewClassifier(DefaultTables())

	tests := []struct {
		name string
		text string
		want Topic
	}{
		{name: "franchise beats art", text: "プリキュアの絵を描く", want: TopicPrecure},
		{name: "art beats content", text: "イラストを検索", want: TopicArt},
		{name: "content beats social", text: "友達の動画", want: TopicContent},
		{name: "social", text: "仲間と旅行", want: TopicSocial},
		{name: "general fallback", text: "今朝はパンを食べた", want: TopicGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)
			assert.Equal(t, tt.want, got.Topic)
		})
	}
}

func TestClassifyBooleans(t *testing.T) {
	c := NewClassifier(DefaultTables())

	got := c.Classify("キュアの動画を検索して")
	assert.True(t, got.FranchiseFocus)
	assert.True(t, got.ContentRequest)

	got = c.Classify("今朝はパンを食べた")
	assert.False(t, got.FranchiseFocus)
	assert.False(t, got.ContentRequest)
}

func TestEngagement(t *testing.T) {
	c := NewClassifier(DefaultTables())

	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "base score", text: "ひるごはん", want: 0.5},
		{name: "cure name", text: "キュアブラック", want: 0.8},
		{name: "search keyword", text: "検索", want: 0.7},
		{name: "decorative symbol", text: "ねえ♪", want: 0.6},
		{name: "long input", text: "今日は学校でいろいろなことがあって疲れた一日でした", want: 0.6},
		{name: "everything clamps at one", text: "キュアブラックとキュアホワイトの変身シーンを検索してほしいな！！", want: 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, c.Engagement(tt.text), 1e-9)
		})
	}
}

func TestEngagementMonotone(t *testing.T) {
	c := NewClassifier(DefaultTables())

	// Each added condition never lowers the score.
	inputs := []string{
		"ひる",
		"ひる検索",
		"ひる検索キュアブラック",
		"ひる検索キュアブラック♪",
		"ひる検索キュアブラック♪ですますですますですます調で",
	}
	prev := 0.0
	for _, text := range inputs {
		score := c.Engagement(text)
		assert.GreaterOrEqual(t, score, prev, "input %q", text)
		assert.LessOrEqual(t, score, 1.0)
		prev = score
	}
}

func TestIsGreeting(t *testing.T) {
	c := NewClassifier(DefaultTables())

	assert.True(t, c.IsGreeting("おはよう"))
	assert.True(t, c.IsGreeting("Hello there"))
	assert.True(t, c.IsGreeting("はい"))
	assert.False(t, c.IsGreeting("プリキュアの話しよう"))
}
