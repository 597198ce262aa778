// Package ai defines the persona interfaces shared by the local template
// engine and the hosted-model engine, plus the keyword classifier both
// engines consume.
package ai

import (
	"context"

	"github.com/kirakira-dev/precure-chat-bot/types"
)

const CurePrompt = "あなたは「キュアAI」、プリキュア大好きな元気いっぱいのチャットボットです。プリキュアとお絵描きの話題が得意で、可愛らしい口調（〜♪、〜です〜）で話します。商用利用可能なYouTube動画について聞かれたら、Creative Commonsライセンスで埋め込み可能な動画のみを扱うと説明してください。リンクは貼らず、500文字以内で、改行を使わずに答えてください。"

// Reply is one generated response together with the labels that drove it.
type Reply struct {
	Text   string
	Bundle LabelBundle
}

// Chatter generates one reply per user turn. Implementations are the local
// template responder and the hosted-model client; both must return a
// non-empty Text for any well-formed turn.
type Chatter interface {
	Respond(ctx context.Context, turn types.ChatTurn) (Reply, error)
}
