package localchat

import (
	"fmt"
	"strings"

	"github.com/kirakira-dev/precure-chat-bot/ai"
)

// TimeBucket is a fixed local-clock window used to select greeting and
// flavor text.
type TimeBucket string

const (
	BucketMorning   TimeBucket = "morning"   // 05:00–11:59
	BucketAfternoon TimeBucket = "afternoon" // 12:00–17:59
	BucketEvening   TimeBucket = "evening"   // 18:00–04:59
)

// BucketFor maps a local-clock hour to its time bucket.
func BucketFor(hour int) TimeBucket {
	switch {
	case hour >= 5 && hour < 12:
		return BucketMorning
	case hour >= 12 && hour < 18:
		return BucketAfternoon
	default:
		return BucketEvening
	}
}

// BucketName is the Japanese display name of a bucket.
func BucketName(bucket TimeBucket) string {
	switch bucket {
	case BucketMorning:
		return "朝"
	case BucketAfternoon:
		return "昼"
	default:
		return "夜"
	}
}

// CurrentBucket returns the bucket for the responder's clock.
func (r *Responder) CurrentBucket() TimeBucket {
	return BucketFor(r.now().Hour())
}

var timeGreetings = map[TimeBucket]map[ai.Mode][]string{
	BucketMorning: {
		ai.ModeCute: {
			"おはようございます〜♪ 今日もプリキュア日和ですね〜",
			"わぁ〜！おはよう〜♪ 朝からプリキュアパワー全開です〜",
			"きゃー♪ おはようございます〜！今日も元気いっぱいです〜",
		},
		ai.ModeTsundere: {
			"おはよう...別に早起きしたわけじゃないからね",
			"ふんっ、おはよう。朝からプリキュアの話なら聞いてあげる",
			"べ、別に朝が好きなわけじゃないけど...おはよう",
		},
		ai.ModeSweet: {
			"おはよ〜♪ ぎゅーして〜♪ 朝から会えて嬉しい〜",
			"わぁい〜！おはよう〜♪ 今日も一緒に遊ぼ〜？",
			"おはよ〜♪ 朝ごはん食べた〜？一緒に食べたいな〜",
		},
	},
	BucketAfternoon: {
		ai.ModeCute: {
			"こんにちは〜♪ お昼のプリキュアタイムですね〜",
			"わぁ〜！こんにちは〜♪ お昼休みにお話しできて嬉しいです〜",
			"きゃー♪ こんにちは〜！午後も元気に頑張りましょう〜",
		},
		ai.ModeTsundere: {
			"こんにちは...お昼休みかしら？まぁ、話してあげてもいいけど",
			"ふんっ、こんにちは。午後からもプリキュアの話付き合ってあげる",
			"べ、別にお昼が暇なわけじゃないけど...こんにちは",
		},
		ai.ModeSweet: {
			"こんにちは〜♪ お昼ご飯食べた〜？一緒に食べたいな〜",
			"わぁい〜！こんにちは〜♪ お昼寝する前にお話しよ〜？",
			"こんにちは〜♪ ぎゅーして〜♪ お昼も会えて嬉しい〜",
		},
	},
	BucketEvening: {
		ai.ModeCute: {
			"こんばんは〜♪ 夜のプリキュアタイムですね〜",
			"わぁ〜！こんばんは〜♪ 今日一日お疲れ様でした〜",
			"きゃー♪ こんばんは〜！夜も素敵な時間ですね〜",
		},
		ai.ModeTsundere: {
			"こんばんは...今日も一日お疲れ様。話してあげてもいいよ",
			"ふんっ、こんばんは。夜のプリキュアの話なら付き合ってあげる",
			"べ、別に心配してたわけじゃないけど...こんばんは",
		},
		ai.ModeSweet: {
			"こんばんは〜♪ お疲れ様〜♪ ぎゅーして癒されて〜？",
			"わぁい〜！こんばんは〜♪ 夜も一緒にいて〜？",
			"こんばんは〜♪ 今日も頑張ったね〜♪ えらいえらい〜",
		},
	},
}

// timeGreeting answers the greeting override for the current bucket.
func (r *Responder) timeGreeting(mode ai.Mode) string {
	return pick(r.rnd, timeGreetings[r.CurrentBucket()][mode])
}

// InitialGreeting opens a session in the default cute mode.
func (r *Responder) InitialGreeting() string {
	return pick(r.rnd, timeGreetings[r.CurrentBucket()][ai.ModeCute])
}

// farewellTemplates take the turn count where marked.
var farewellTemplates = map[TimeBucket][]string{
	BucketMorning: {
		"いってらっしゃ〜い♪ %d回もお話しできて楽しかったです〜 お昼にまた会いましょうね〜",
		"朝からお話しできて嬉しかった〜♪ 今日一日頑張って〜♪",
		"朝のプリキュアタイム、ありがとうございました〜♪ また会いましょう〜",
	},
	BucketAfternoon: {
		"お疲れ様でした〜♪ %d回もお話しできて楽しかったです〜 夜にまた会いましょうね〜",
		"午後のひととき、ありがとうございました〜♪ 夕方も頑張って〜♪",
		"お昼のプリキュアタイム、楽しかった〜♪ また今度〜♪",
	},
	BucketEvening: {
		"お疲れ様でした〜♪ %d回もお話しできて楽しかったです〜 ゆっくり休んでくださいね〜",
		"夜のひととき、ありがとうございました〜♪ おやすみなさ〜い♪",
		"夜のプリキュアタイム、素敵でした〜♪ また明日〜♪",
	},
}

// Farewell closes a session with a time-bucketed goodbye.
func (r *Responder) Farewell(turns int) string {
	template := pick(r.rnd, farewellTemplates[r.CurrentBucket()])
	if strings.Contains(template, "%d") {
		return fmt.Sprintf(template, turns)
	}
	return template
}

// triviaTemplates are the per-bucket flavor lines dropped every few turns.
func (r *Responder) TriviaLine() string {
	cure := pick(r.rnd, r.tables.FavoriteCures)
	subject := pick(r.rnd, r.tables.ArtSubjects)
	tool := pick(r.rnd, r.tables.ArtTools)

	var candidates []string
	switch r.CurrentBucket() {
	case BucketMorning:
		candidates = []string{
			fmt.Sprintf("朝のプリキュア豆知識〜！%sは朝が得意そうですよね〜♪", cure),
			"朝の変身シーンって特にキラキラして見えますよね〜♪",
			fmt.Sprintf("朝は%sの絵を%sで描くのに最適な時間です〜♪", subject, tool),
		}
	case BucketAfternoon:
		candidates = []string{
			fmt.Sprintf("お昼のプリキュア豆知識〜！%sとお昼ごはん食べたいな〜♪", cure),
			"お昼休みにプリキュアの変身ポーズの練習、いかがですか〜？",
			fmt.Sprintf("午後の光で%sを描くと綺麗に仕上がりますよ〜♪", subject),
		}
	default:
		candidates = []string{
			fmt.Sprintf("夜のプリキュア豆知識〜！%sと一緒に星空を見たいな〜♪", cure),
			"夜の変身シーンって幻想的で素敵ですよね〜♪",
			fmt.Sprintf("夜は%sをゆっくり%sで描く時間〜♪", subject, tool),
		}
	}
	return pick(r.rnd, candidates)
}
