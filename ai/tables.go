package ai

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tables holds every keyword set and entity list the persona is built from.
// It is loaded once at startup and passed by reference into the Classifier
// and the responders; nothing mutates it after construction.
type Tables struct {
	// EmotionKeywords maps each emotion category to its trigger keywords.
	// Keywords are matched as case-folded substrings, not tokens.
	EmotionKeywords map[Emotion][]string `yaml:"emotion_keywords"`

	// AffectionKeywords switch the persona into sweet mode.
	AffectionKeywords []string `yaml:"affection_keywords"`

	// FranchiseKeywords mark an input as Precure-focused.
	FranchiseKeywords []string `yaml:"franchise_keywords"`

	// SearchKeywords mark a content-search request. They double as the
	// stop words stripped from the input when building the search query.
	SearchKeywords []string `yaml:"search_keywords"`

	// ContentKeywords decide the content/business topic. Superset of
	// SearchKeywords.
	ContentKeywords []string `yaml:"content_keywords"`

	ArtKeywords    []string `yaml:"art_keywords"`
	SocialKeywords []string `yaml:"social_keywords"`

	// GreetingPhrases trigger the time-of-day greeting override.
	GreetingPhrases []string `yaml:"greeting_phrases"`

	// Entity lists used to fill response template slots.
	FavoriteCures    []string `yaml:"favorite_cures"`
	SignatureAttacks []string `yaml:"signature_attacks"`
	ArtTools         []string `yaml:"art_tools"`
	ArtSubjects      []string `yaml:"art_subjects"`
}

// DefaultTables returns the built-in persona tables.
func DefaultTables() *Tables {
	return &Tables{
		EmotionKeywords: map[Emotion][]string{
			EmotionJoy:        {"やった", "キラキラ", "最高", "わぁい", "嬉しい", "ハッピー"},
			EmotionExcitement: {"すごい", "かっこいい", "素敵", "キュン", "ドキドキ"},
			EmotionCuriosity:  {"知りたい", "どうして", "気になる", "教えて", "見たい"},
			EmotionConcern:    {"心配", "大丈夫", "不安", "困った", "どうしよう"},
			EmotionGratitude:  {"ありがとう", "感謝", "うれしい", "おかげで", "助かった"},
			EmotionShy:        {"恥ずかしい", "ちょっと", "でも", "もじもじ", "えへへ"},
			EmotionTsundere:   {"別に", "ふんっ", "まぁ", "そんなことない", "べつに"},
			EmotionSearch:     {"検索", "search", "探す", "見つけて", "について"},
		},
		AffectionKeywords: []string{"ねぇ", "お願い", "一緒", "ぎゅー"},
		FranchiseKeywords: []string{"プリキュア", "キュア", "変身", "必殺技", "妖精", "アニメ", "魔法少女"},
		SearchKeywords:    []string{"検索", "search", "探す", "見つけて", "について"},
		ContentKeywords: []string{
			"検索", "search", "探す", "見つけて", "について",
			"動画", "video", "コンテンツ", "content", "商用", "ビジネス",
		},
		ArtKeywords:    []string{"絵", "描く", "アート", "イラスト"},
		SocialKeywords: []string{"友達", "仲間", "一緒", "絆", "信頼", "支える"},
		GreetingPhrases: []string{
			"おはよう", "こんにちは", "こんばんは", "はじめまして",
			"よろしく", "hello", "hi", "はい", "やあ",
		},
		FavoriteCures: []string{
			"キュアブラック", "キュアホワイト", "キュアブルーム", "キュアイーグレット",
			"キュアドリーム", "キュアルージュ", "キュアレモネード", "キュアミント", "キュアアクア",
			"キュアピーチ", "キュアベリー", "キュアパイン", "キュアパッション",
			"キュアブロッサム", "キュアマリン", "キュアサンシャイン", "キュアムーンライト",
			"キュアメロディ", "キュアリズム", "キュアビート", "キュアミューズ",
			"キュアハッピー", "キュアサニー", "キュアピース", "キュアマーチ", "キュアビューティ",
			"キュアハート", "キュアダイヤモンド", "キュアロゼッタ", "キュアソード", "キュアエース",
		},
		SignatureAttacks: []string{
			"プリキュア・マーブル・スクリュー",
			"プリキュア・レインボー・ストーム",
			"プリキュア・ダイヤモンド・エターナル",
			"プリキュア・ハートフル・パンチ",
			"プリキュア・スパークリング・ワイド・プレッシャー",
		},
		ArtTools: []string{
			"色鉛筆", "水彩絵の具", "アクリル絵の具", "コピック", "デジタル",
			"クレヨン", "パステル", "油絵", "鉛筆", "ペン画",
		},
		ArtSubjects: []string{
			"プリキュアの変身シーン", "キュアたちの日常", "必殺技のポーズ",
			"プリキュアの衣装デザイン", "妖精たち", "変身アイテム",
			"お花畑のプリキュア", "空飛ぶプリキュア", "仲間と手を繋ぐシーン",
		},
	}
}

// LoadTables loads persona tables from a YAML file. Any list left empty in
// the file falls back to the built-in default so a partial override stays
// usable.
func LoadTables(path string) (*Tables, error) {
	if path == "" {
		return nil, fmt.Errorf("tables path cannot be empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file: %w", err)
	}

	tables := DefaultTables()
	if err := yaml.Unmarshal(data, tables); err != nil {
		return nil, fmt.Errorf("failed to parse tables file: %w", err)
	}

	if err := tables.validate(); err != nil {
		return nil, err
	}
	return tables, nil
}

func (t *Tables) validate() error {
	if len(t.EmotionKeywords) == 0 {
		return fmt.Errorf("tables must define at least one emotion category")
	}
	if len(t.FavoriteCures) == 0 {
		return fmt.Errorf("tables must list at least one Cure")
	}
	if len(t.GreetingPhrases) == 0 {
		return fmt.Errorf("tables must list at least one greeting phrase")
	}
	return nil
}
