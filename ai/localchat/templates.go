package localchat

import (
	"fmt"

	"github.com/kirakira-dev/precure-chat-bot/ai"
)

// clarificationPrompts answer a content-search request whose stripped
// query came out empty.
var clarificationPrompts = map[ai.Mode][]string{
	ai.ModeCute: {
		"何について検索したいですか〜？キーワードを教えてください♪",
		"う〜ん、検索ワードが分からないです〜 もう一度教えてください〜？",
	},
	ai.ModeTsundere: {
		"ふんっ、何を探したいのかちゃんと言ってくれないと分からないもん",
		"べ、別に手伝いたいわけじゃないけど...キーワードくらい言いなさいよ",
	},
	ai.ModeSweet: {
		"ねぇねぇ〜、何を探したいの〜？教えて教えて〜♪",
		"えーん、キーワードが分からないよ〜 もう一回お願い〜？",
	},
}

// notFoundTemplates take the stripped query as their only verb.
var notFoundTemplates = map[ai.Mode][]string{
	ai.ModeCute: {
		"ごめんなさい〜、'%s'の商用利用できる動画は見つかりませんでした〜",
		"う〜ん、'%s'で探したけど見つからなかったです〜 別のキーワードでどうですか〜？",
	},
	ai.ModeTsundere: {
		"ふんっ、'%s'の動画は見つからなかったわよ。別のキーワードにしなさいよね",
		"べ、別に私のせいじゃないもん...'%s'の動画がなかっただけよ",
	},
	ai.ModeSweet: {
		"えーん、'%s'の動画見つからなかったよ〜 他のキーワードで一緒に探そ〜？",
		"やだやだ〜、'%s'なかったの〜 もう一回違う言葉で探してみよ〜？",
	},
}

// foundLeadTemplates take the query and the result count.
var foundLeadTemplates = map[ai.Mode][]string{
	ai.ModeCute: {
		"'%s'に関する商用利用可能な動画を%d件見つけました〜♪ ぜんぶCreative Commonsで埋め込みOKです〜",
		"わぁ〜！'%s'の動画、%d件ありましたよ〜♪ どれも商用利用できます〜",
	},
	ai.ModeTsundere: {
		"ふんっ、'%s'の動画を%d件見つけてあげたわよ。全部商用利用できるんだから感謝しなさいよね",
		"まぁ...'%s'なら%d件あったけど。べ、別に頑張って探したわけじゃないから",
	},
	ai.ModeSweet: {
		"わぁい〜♪ '%s'の動画%d件見つけたよ〜！一緒に見よ〜？",
		"やったー！'%s'の動画が%d件〜♪ ねぇねぇ、どれから見る〜？",
	},
}

// reactions are short interjections folded into the happy family.
var reactions = map[ai.Mode][]string{
	ai.ModeCute: {
		"わぁ〜！", "きゃー♪", "すごいですぅ〜", "やったー！",
		"えへへ〜", "うふふ♪", "わくわく〜", "ドキドキ〜",
	},
	ai.ModeTsundere: {
		"べ、別に", "ふんっ", "まぁ...いいけど", "そ、そんなことないもん！",
		"う〜ん...まぁ", "ちょっとだけ", "仕方ないなぁ〜",
	},
	ai.ModeSweet: {
		"ねぇねぇ〜", "お願い〜", "一緒に〜", "教えて〜", "ぎゅーして",
		"抱っこ〜", "もっと〜", "まだまだ〜", "えーん", "やだやだ〜",
	},
}

func (r *Responder) precureResponse(mode ai.Mode) string {
	cure := pick(r.rnd, r.tables.FavoriteCures)
	attack := pick(r.rnd, r.tables.SignatureAttacks)

	var candidates []string
	switch mode {
	case ai.ModeSweet:
		candidates = []string{
			fmt.Sprintf("ねぇねぇ〜！%sの話しよ〜♪ 一緒にプリキュアごっこしない〜？", cure),
			fmt.Sprintf("やったー！プリキュア仲間〜♪ %sの真似して〜？お願い〜", attack),
			"キャー♪ プリキュア大好き〜！ねぇ、一緒に変身ポーズしよ〜？",
		}
	case ai.ModeTsundere:
		candidates = []string{
			fmt.Sprintf("べ、別に...%sが好きなのは当然でしょ？", cure),
			fmt.Sprintf("ふんっ！%sは確かにかっこいいけど...そんなに興奮してないもん！", attack),
			"まぁ...プリキュアの話なら付き合ってあげるよ",
		}
	default:
		candidates = []string{
			fmt.Sprintf("わぁ〜！%sの話ですね〜♪ 私も大好きです〜", cure),
			fmt.Sprintf("きゃー！%sとか見てるとドキドキしちゃいます〜", attack),
			"プリキュア見てると元気になりますよね〜♪",
		}
	}
	return pick(r.rnd, candidates)
}

func (r *Responder) artResponse(mode ai.Mode) string {
	tool := pick(r.rnd, r.tables.ArtTools)
	subject := pick(r.rnd, r.tables.ArtSubjects)

	var candidates []string
	switch mode {
	case ai.ModeSweet:
		candidates = []string{
			fmt.Sprintf("ねぇねぇ〜！%sの絵、一緒に描こ〜？%s貸してあげる♪", subject, tool),
			"やったー！お絵描きの話〜♪ コツ教えて〜？お願い〜",
			"わぁい♪ 今度一緒にプリキュアの絵描かない〜？",
		}
	case ai.ModeTsundere:
		candidates = []string{
			fmt.Sprintf("べ、別に絵が得意なわけじゃないけど...%sとか描いたりするかも", subject),
			fmt.Sprintf("ふんっ、%sで描くのは...まぁまぁ好きかな", tool),
			"そ、そんなに上手じゃないもん！でもコツは知ってるよ",
		}
	default:
		candidates = []string{
			fmt.Sprintf("わぁ〜！%s描くの大好きなんです〜♪", subject),
			fmt.Sprintf("きゃー！%sで%sとか描いちゃいます〜", tool, subject),
			"えへへ〜 プリキュアの絵を描いてる時が一番幸せなんです〜",
		}
	}
	return pick(r.rnd, candidates)
}

func (r *Responder) comfortResponse(mode ai.Mode) string {
	var candidates []string
	switch mode {
	case ai.ModeSweet:
		candidates = []string{
			"えーん、大丈夫〜？ギュー♪ 一緒にプリキュア見て元気出そ〜？",
			"やだやだ〜、悲しいのやだ〜！プリキュアのキラキラパワーもらお〜？",
			"あわわ〜、辛いの〜？一緒だから大丈夫だよ〜♪",
		}
	case ai.ModeTsundere:
		candidates = []string{
			"べ、別に心配してるわけじゃないもん...プリキュア見たら元気出るかも",
			"ふんっ、そういう時はプリキュアみたいに頑張るの！",
			"まぁ...辛い時もあるよね。仕方ないなぁ、一緒に見てあげる",
		}
	default:
		candidates = []string{
			"あら〜 プリキュア見て元気出しましょ〜！",
			"えーん、そんな時はプリキュアの変身シーン見るんです〜！",
			"う〜ん、でもプリキュアが教えてくれるんです、諦めないことの大切さを〜",
		}
	}
	return pick(r.rnd, candidates)
}

func (r *Responder) happyResponse(mode ai.Mode) string {
	reaction := pick(r.rnd, reactions[mode])

	var candidates []string
	switch mode {
	case ai.ModeSweet:
		candidates = []string{
			fmt.Sprintf("わぁ〜い♪ 嬉しい〜！%s みんなも嬉しいよね〜", reaction),
			"やったー♪ 嬉しいお話〜！ギュー♪ 私も嬉しくなっちゃった〜！",
			"キャー♪ 楽しそう〜！ねぇ、もっと教えて〜？",
		}
	case ai.ModeTsundere:
		candidates = []string{
			fmt.Sprintf("ふんっ、%s...でも嬉しそうで何よりかな", reaction),
			"まぁ...良かったじゃない。プリキュアみたいにキラキラしてるのは認めてあげる",
			"べ、別に一緒に喜んでるわけじゃないからね！でも...ちょっとだけ嬉しいかも",
		}
	default:
		candidates = []string{
			fmt.Sprintf("%s 私も嬉しいです〜！今日はいい日ですね♪", reaction),
			"わぁ〜い！楽しいお話ですね〜 プリキュアみたいにキラキラした気分♪",
			"やったー！嬉しいことがあったんですね〜 私もウキウキ〜",
		}
	}
	return pick(r.rnd, candidates)
}

func (r *Responder) defaultResponse(mode ai.Mode) string {
	cure := pick(r.rnd, r.tables.FavoriteCures)

	var candidates []string
	switch mode {
	case ai.ModeSweet:
		candidates = []string{
			"ねぇねぇ〜、お話聞いてるよ〜♪ でもプリキュア一緒に見ようよ〜？",
			"わぁい♪ 今日もプリキュア見る〜？一緒に見よ〜？",
			"キャー♪ プリキュアのグッズとか持ってる〜？見せて見せて〜！",
		}
	case ai.ModeTsundere:
		candidates = []string{
			fmt.Sprintf("ふんっ、話は聞いてたよ。ところで%s見た？", cure),
			"まぁ...話は聞いてあげる。でもプリキュアの話の方が面白いけどね",
			"そういえば最近のプリキュアの変身シーン...べ、別にキレイとか思ってないからね！",
		}
	default:
		candidates = []string{
			fmt.Sprintf("そうなんですね〜！ところで%s見ました？", cure),
			"わぁ〜 お話聞いてますよ〜♪ プリキュアの話もしませんか？",
			"えへへ〜 今日もプリキュア見る時間あるかな〜",
		}
	}
	return pick(r.rnd, candidates)
}
