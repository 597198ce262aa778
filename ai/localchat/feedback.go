package localchat

import (
	"fmt"
	"strings"

	"github.com/kirakira-dev/precure-chat-bot/ai"
	"github.com/kirakira-dev/precure-chat-bot/history"
)

// Feedback score bands on the 1–10 scale. 8 and above is praise, 5–7 is
// neutral, everything below needs improvement.
const (
	praiseThreshold  = 8
	neutralThreshold = 5
)

var feedbackPraise = []string{
	"わぁ〜い♪ 高評価ありがとうございます〜！もっと頑張ります♪",
	"きゃー♪ そんなに褒めてもらって〜 プリキュアパワーで学習しちゃいます〜",
	"やったー！嬉しいです〜♪ みなさんに喜んでもらえるよう成長します〜",
}

var feedbackNeutral = []string{
	"まぁまぁですね〜 もっと良い応答できるよう頑張ります♪",
	"ふむふむ〜 まだまだ学習が必要ですね〜 プリキュア見て勉強します♪",
	"普通かぁ〜 次はもっと素敵な応答しますからね〜♪",
}

var feedbackLow = []string{
	"うーん、まだまだですね〜 もっと勉強して良い応答できるようになります♪",
	"ごめんなさい〜 次はもっと頑張りますね〜♪",
	"えーん、もっと学習して素敵な応答できるようになりますから〜♪",
}

// FeedbackResponse acknowledges a 1–10 score with the matching family.
func (r *Responder) FeedbackResponse(score int) string {
	switch {
	case score >= praiseThreshold:
		return pick(r.rnd, feedbackPraise)
	case score >= neutralThreshold:
		return pick(r.rnd, feedbackNeutral)
	default:
		return pick(r.rnd, feedbackLow)
	}
}

// RetryPrompt answers empty input without consuming a turn.
func (r *Responder) RetryPrompt() string {
	return "わぁ〜 どうしたんですか〜？ちゃんとお話ししてくださいね♪"
}

var apologies = []string{
	"あわわ〜！なんかエラーが起こっちゃいました〜",
	"きゃー！システムがちょっと困ってます〜",
	"えーん！何か変なことになっちゃった〜",
}

// Apology opens the in-character error report for an unexpected failure.
func (r *Responder) Apology() string {
	return pick(r.rnd, apologies)
}

// FeedbackRequest asks the user to rate the last response.
func (r *Responder) FeedbackRequest() string {
	return "この応答はいかがでしたか？1-10で評価していただけると学習に役立ちます♪"
}

var learningTemplates = []string{
	"🧠 学習レポート: %d回の会話から学習中です〜♪",
	"📈 成長中〜！%d回のお話でいろいろ覚えました〜",
	"🌟 学習パワー充電中〜！%d回分のデータで賢くなってます〜♪",
}

// LearningLine is the periodic progress line.
func (r *Responder) LearningLine(turns int) string {
	return fmt.Sprintf(pick(r.rnd, learningTemplates), turns)
}

// topicNames and modeDescriptions localize the labels for display.
var topicNames = map[ai.Topic]string{
	ai.TopicPrecure: "プリキュア",
	ai.TopicArt:     "絵・アート",
	ai.TopicContent: "動画・コンテンツ",
	ai.TopicSocial:  "友達・絆",
	ai.TopicGeneral: "日常・感情",
}

var modeDescriptions = map[ai.Mode]string{
	ai.ModeCute:     "可愛らしく",
	ai.ModeTsundere: "ツンデレで",
	ai.ModeSweet:    "甘えん坊で",
}

var modeNames = map[ai.Mode]string{
	ai.ModeCute:     "可愛いモード",
	ai.ModeTsundere: "ツンデレモード",
	ai.ModeSweet:    "甘えん坊モード",
}

// ModeName is the display name used by the mode-inquiry command.
func ModeName(mode ai.Mode) string {
	if name, ok := modeNames[mode]; ok {
		return name
	}
	return modeNames[ai.ModeCute]
}

// summaryTopicOrder pins the scan order so ties resolve deterministically.
var summaryTopicOrder = []ai.Topic{
	ai.TopicPrecure, ai.TopicArt, ai.TopicContent, ai.TopicSocial, ai.TopicGeneral,
}

var summaryModeOrder = []ai.Mode{ai.ModeCute, ai.ModeTsundere, ai.ModeSweet}

// Summary describes the session so far: dominant topic, turn count, and
// dominant personality mode.
func (r *Responder) Summary(log *history.Log) string {
	if log.Len() < 3 {
		return "まだ会話が始まったばかりですね〜♪"
	}

	topicCounts := log.TopicCounts()
	mainTopic := ai.TopicGeneral
	best := -1
	for _, topic := range summaryTopicOrder {
		if topicCounts[topic] > best {
			mainTopic = topic
			best = topicCounts[topic]
		}
	}

	modeCounts := log.ModeCounts()
	mainMode := ai.ModeCute
	best = -1
	for _, mode := range summaryModeOrder {
		if modeCounts[mode] > best {
			mainMode = mode
			best = modeCounts[mode]
		}
	}

	return fmt.Sprintf("%sについて%d回、%sお話ししましたね〜♪",
		topicNames[mainTopic], log.Len(), modeDescriptions[mainMode])
}

// TimeLine answers the time-inquiry command.
func (r *Responder) TimeLine() string {
	now := r.now()
	return fmt.Sprintf("今は%sで、%sの時間帯ですね〜♪",
		now.Format("15:04"), BucketName(r.CurrentBucket()))
}

// ListContent renders the videos discovered this session.
func (r *Responder) ListContent() string {
	if len(r.discovered) == 0 {
		return "まだ商用利用可能なコンテンツがありません。"
	}

	var b strings.Builder
	b.WriteString("=== 商用利用可能コンテンツ一覧 ===")
	for i, v := range r.discovered {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, v.Title)
		fmt.Fprintf(&b, "   チャンネル: %s\n", v.Channel)
		fmt.Fprintf(&b, "   URL: %s\n", v.URL)
		fmt.Fprintf(&b, "   公開日: %s", v.PublishedAt.Format("2006-01-02"))
	}
	return b.String()
}

// InterruptFarewell closes a session cut short by a signal.
func (r *Responder) InterruptFarewell() string {
	return "わぁ〜ん！急に止まっちゃった〜 でもまた今度お話ししましょう〜♪"
}
