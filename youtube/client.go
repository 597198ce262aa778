// Package youtube is a thin client for the YouTube Data API v3, restricted
// to content that is safe to reuse: every search is pinned to the Creative
// Commons license filter with embedding enabled, so restricted videos never
// reach the responder.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kirakira-dev/precure-chat-bot/logging"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// descriptionLimit truncates search snippets before they are folded into
// chat replies.
const descriptionLimit = 200

type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	logger     *logging.Logger
}

// Video is one reusable search result.
type Video struct {
	ID          string    `json:"video_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Channel     string    `json:"channel"`
	URL         string    `json:"url"`
	Thumbnail   string    `json:"thumbnail"`
	PublishedAt time.Time `json:"published_at"`
}

// VideoDetails carries the full metadata for a single video, including the
// license fields that decide commercial reusability.
type VideoDetails struct {
	Video
	Duration      string
	ViewCount     uint64
	LikeCount     uint64
	License       string
	Embeddable    bool
	CommercialUse bool
}

// Searcher is the boundary the responder depends on.
type Searcher interface {
	SearchCreativeCommons(ctx context.Context, query string, maxResults int) ([]Video, error)
}

func NewClient(apiKey string, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		BaseURL: defaultBaseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// searchResponse mirrors the fields we read from /search.
type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet snippet `json:"snippet"`
	} `json:"items"`
}

type snippet struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ChannelTitle string    `json:"channelTitle"`
	PublishedAt  time.Time `json:"publishedAt"`
	Thumbnails   struct {
		Default struct {
			URL string `json:"url"`
		} `json:"default"`
	} `json:"thumbnails"`
}

// SearchCreativeCommons searches for videos that carry a Creative Commons
// license and allow embedding. Result order is the API's relevance order.
func (c *Client) SearchCreativeCommons(ctx context.Context, query string, maxResults int) ([]Video, error) {
	if query == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}
	if maxResults <= 0 {
		maxResults = 10
	}

	u, err := url.Parse(c.BaseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("videoLicense", "creativeCommon")
	params.Set("videoEmbeddable", "true")
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("order", "relevance")
	params.Set("key", c.APIKey)
	u.RawQuery = params.Encode()

	var parsed searchResponse
	if err := c.getJSON(ctx, u.String(), &parsed); err != nil {
		return nil, err
	}

	videos := make([]Video, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, Video{
			ID:          item.ID.VideoID,
			Title:       item.Snippet.Title,
			Description: truncate(item.Snippet.Description, descriptionLimit),
			Channel:     item.Snippet.ChannelTitle,
			URL:         watchURL(item.ID.VideoID),
			Thumbnail:   item.Snippet.Thumbnails.Default.URL,
			PublishedAt: item.Snippet.PublishedAt,
		})
	}

	c.logger.Debug("youtube search complete", "query", query, "results", len(videos))
	return videos, nil
}

// detailsResponse mirrors the fields we read from /videos.
type detailsResponse struct {
	Items []struct {
		Snippet        snippet `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
			LikeCount string `json:"likeCount"`
		} `json:"statistics"`
		Status struct {
			License    string `json:"license"`
			Embeddable bool   `json:"embeddable"`
		} `json:"status"`
	} `json:"items"`
}

// VideoDetails fetches the full metadata of one video. Returns nil without
// an error when the video does not exist.
func (c *Client) VideoDetails(ctx context.Context, videoID string) (*VideoDetails, error) {
	if videoID == "" {
		return nil, fmt.Errorf("videoID cannot be empty")
	}

	u, err := url.Parse(c.BaseURL + "/videos")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	params := url.Values{}
	params.Set("part", "snippet,contentDetails,statistics,status")
	params.Set("id", videoID)
	params.Set("key", c.APIKey)
	u.RawQuery = params.Encode()

	var parsed detailsResponse
	if err := c.getJSON(ctx, u.String(), &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Items) == 0 {
		return nil, nil
	}

	item := parsed.Items[0]
	views, _ := strconv.ParseUint(item.Statistics.ViewCount, 10, 64)
	likes, _ := strconv.ParseUint(item.Statistics.LikeCount, 10, 64)

	details := &VideoDetails{
		Video: Video{
			ID:          videoID,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			Channel:     item.Snippet.ChannelTitle,
			URL:         watchURL(videoID),
			Thumbnail:   item.Snippet.Thumbnails.Default.URL,
			PublishedAt: item.Snippet.PublishedAt,
		},
		Duration:   item.ContentDetails.Duration,
		ViewCount:  views,
		LikeCount:  likes,
		License:    item.Status.License,
		Embeddable: item.Status.Embeddable,
	}
	details.CommercialUse = details.License == "creativeCommon" && details.Embeddable
	return details, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "precure-chat-bot/1.0")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func watchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
