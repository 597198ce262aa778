package localchat

import (
	"context"
	"fmt"
	"strings"

	"github.com/kirakira-dev/precure-chat-bot/ai"
	"github.com/kirakira-dev/precure-chat-bot/database"
	"github.com/kirakira-dev/precure-chat-bot/metrics"
	"github.com/kirakira-dev/precure-chat-bot/types"
	"github.com/kirakira-dev/precure-chat-bot/youtube"
)

// Respond generates one reply. The outer branches are mutually exclusive
// and ordered: greeting override, content-search override, topical family.
// Every branch ends in a non-empty string, so Respond never fails for a
// well-formed turn.
func (r *Responder) Respond(ctx context.Context, turn types.ChatTurn) (ai.Reply, error) {
	bundle := r.classifier.Classify(turn.Text)

	if r.classifier.IsGreeting(turn.Text) {
		metrics.GreetingOverrideCount.Add(1)
		return ai.Reply{Text: r.timeGreeting(bundle.Mode), Bundle: bundle}, nil
	}

	if bundle.ContentRequest && r.searcher != nil {
		return ai.Reply{Text: r.contentSearch(ctx, turn.Text, bundle.Mode), Bundle: bundle}, nil
	}

	base := r.topicalResponse(bundle)
	return ai.Reply{Text: r.adjustPersonality(base, bundle), Bundle: bundle}, nil
}

// contentSearch runs the video-search override. Collaborator failures are
// folded into the empty-result path: the user cannot tell "nothing found"
// from "search backend errored".
func (r *Responder) contentSearch(ctx context.Context, text string, mode ai.Mode) string {
	query := r.extractQuery(text)
	if query == "" {
		return pick(r.rnd, clarificationPrompts[mode])
	}

	videos, err := r.searcher.SearchCreativeCommons(ctx, query, r.maxResults)
	if err != nil {
		r.logger.Warn("video search failed, treating as empty", "error", err.Error(), "query", query)
		metrics.VideoSearchFail.Add(1)
		videos = nil
	}

	if len(videos) == 0 {
		metrics.VideoSearchEmpty.Add(1)
		return fmt.Sprintf(pick(r.rnd, notFoundTemplates[mode]), query)
	}

	metrics.VideoSearchSuccess.Add(1)
	r.discovered = append(r.discovered, videos...)
	r.persistVideos(ctx, query, videos)

	return r.renderVideoBlock(query, videos, mode)
}

// extractQuery strips the search stop words from the input and returns
// what remains, whitespace-collapsed.
func (r *Responder) extractQuery(text string) string {
	query := strings.ToLower(text)
	for _, stop := range r.tables.SearchKeywords {
		query = strings.ReplaceAll(query, stop, "")
	}
	return strings.Join(strings.Fields(query), " ")
}

func (r *Responder) persistVideos(ctx context.Context, query string, videos []youtube.Video) {
	if r.videos == nil {
		return
	}
	for _, v := range videos {
		rec := database.VideoRecord{
			VideoID:     v.ID,
			Title:       v.Title,
			Description: v.Description,
			Channel:     v.Channel,
			URL:         v.URL,
			Query:       query,
			PublishedAt: v.PublishedAt,
			Time:        r.now(),
		}
		if err := r.videos.UpsertVideo(ctx, rec); err != nil {
			// A failed audit write never aborts the turn.
			metrics.AuditWriteFailCount.Add(1)
			r.logger.Error("failed to persist discovered video", "error", err.Error(), "videoID", v.ID)
		}
	}
}

func (r *Responder) renderVideoBlock(query string, videos []youtube.Video, mode ai.Mode) string {
	var b strings.Builder
	fmt.Fprintf(&b, pick(r.rnd, foundLeadTemplates[mode]), query, len(videos))
	b.WriteString("\n")
	for i, v := range videos {
		fmt.Fprintf(&b, "\n%d. 【%s】\n", i+1, v.Title)
		fmt.Fprintf(&b, "   チャンネル: %s\n", v.Channel)
		fmt.Fprintf(&b, "   URL: %s\n", v.URL)
		fmt.Fprintf(&b, "   公開日: %s\n", v.PublishedAt.Format("2006-01-02"))
	}
	return b.String()
}

// topicalResponse dispatches to the response family for the turn's topic
// or emotion. Every branch has a non-empty family.
func (r *Responder) topicalResponse(bundle ai.LabelBundle) string {
	switch {
	case bundle.FranchiseFocus:
		return r.precureResponse(bundle.Mode)
	case bundle.Topic == ai.TopicArt:
		return r.artResponse(bundle.Mode)
	case bundle.Emotion == ai.EmotionConcern || bundle.Emotion == ai.EmotionShy:
		return r.comfortResponse(bundle.Mode)
	case bundle.Emotion == ai.EmotionJoy || bundle.Emotion == ai.EmotionExcitement:
		return r.happyResponse(bundle.Mode)
	default:
		return r.defaultResponse(bundle.Mode)
	}
}

// adjustPersonality appends a cosmetic mode suffix with a fixed per-mode
// probability when engagement is high. Purely decorative.
func (r *Responder) adjustPersonality(base string, bundle ai.LabelBundle) string {
	if bundle.Engagement <= 0.8 {
		return base
	}
	switch bundle.Mode {
	case ai.ModeSweet:
		if r.rnd.Float64() < 0.4 {
			return base + " もっとお話しよ〜？"
		}
	case ai.ModeTsundere:
		if r.rnd.Float64() < 0.3 {
			return base + " ...まぁ、悪くないけど"
		}
	case ai.ModeCute:
		if r.rnd.Float64() < 0.3 {
			return base + " ♪"
		}
	}
	return base
}
