package youtube

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"channel-gateway/domain/apperror"
	"channel-gateway/domain/model"
	"channel-gateway/domain/repository"
	"channel-gateway/infrastructure/metrics"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// RequestTimeout bounds every upstream call.
const RequestTimeout = 10 * time.Second

// Client represents the read-only YouTube Data API client (API key mode)
type Client struct {
	baseURL string
	options []option.ClientOption

	mu      sync.Mutex
	key     string
	service *youtube.Service
}

// Config represents YouTube API client configuration
type Config struct {
	// BaseURL overrides the API endpoint, e.g. "http://127.0.0.1:8080/".
	BaseURL string `json:"base_url"`
}

// NewYouTubeClient creates a client. Extra options are appended to every
// service it builds, which lets tests inject an HTTP client.
func NewYouTubeClient(config *Config, opts ...option.ClientOption) repository.IYouTubeAPI {
	c := &Client{options: opts}
	if config != nil {
		c.baseURL = config.BaseURL
	}
	return c
}

// serviceFor returns a service bound to apiKey, rebuilding it when the key changes.
func (c *Client) serviceFor(apiKey string) (*youtube.Service, error) {
	if apiKey == "" {
		return nil, errors.New("YouTube API key is required for live calls")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.service != nil && c.key == apiKey {
		return c.service, nil
	}

	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if c.baseURL != "" {
		opts = append(opts, option.WithEndpoint(c.baseURL))
	}
	opts = append(opts, c.options...)
	service, err := youtube.NewService(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service with API key: %w", err)
	}
	c.key, c.service = apiKey, service
	return service, nil
}

// call runs fn under RequestTimeout and converts failures into UpstreamError.
func (c *Client) call(ctx context.Context, apiKey, operation string, fn func(ctx context.Context, s *youtube.Service) error) error {
	service, err := c.serviceFor(apiKey)
	if err != nil {
		return apperror.NewUpstreamError(operation, 0, err.Error())
	}
	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	start := time.Now()
	err = fn(ctx, service)
	metrics.UpstreamDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(operation, "error").Inc()
		return toUpstreamError(operation, err)
	}
	metrics.UpstreamRequests.WithLabelValues(operation, "ok").Inc()
	return nil
}

func toUpstreamError(operation string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		body := gerr.Body
		if body == "" {
			body = gerr.Message
		}
		return apperror.NewUpstreamError(operation, gerr.Code, body)
	}
	return apperror.NewUpstreamError(operation, 0, err.Error())
}

// ChannelIDByHandle resolves @handle to a channel id
func (c *Client) ChannelIDByHandle(ctx context.Context, apiKey, handle string) (string, error) {
	var response *youtube.ChannelListResponse
	err := c.call(ctx, apiKey, "channels.list", func(ctx context.Context, s *youtube.Service) (err error) {
		response, err = s.Channels.List([]string{"id"}).ForHandle(handle).Context(ctx).Do()
		return err
	})
	if err != nil {
		return "", err
	}
	if len(response.Items) == 0 || response.Items[0].Id == "" {
		return "", apperror.NotFound("Channel not found for handle")
	}
	return response.Items[0].Id, nil
}

// ChannelStatistics fetches statistics+snippet of a channel
func (c *Client) ChannelStatistics(ctx context.Context, apiKey, channelID string) (*model.ChannelStatistics, error) {
	var response *youtube.ChannelListResponse
	err := c.call(ctx, apiKey, "channels.list", func(ctx context.Context, s *youtube.Service) (err error) {
		response, err = s.Channels.List([]string{"statistics", "snippet"}).Id(channelID).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, err
	}
	if len(response.Items) == 0 {
		return nil, apperror.NotFound("Channel not found")
	}
	return convertToChannelStatistics(response.Items[0]), nil
}

// UploadsPlaylistID returns "" when there is no matching channel or no uploads playlist
func (c *Client) UploadsPlaylistID(ctx context.Context, apiKey, channelID string) (string, error) {
	var response *youtube.ChannelListResponse
	err := c.call(ctx, apiKey, "channels.list", func(ctx context.Context, s *youtube.Service) (err error) {
		response, err = s.Channels.List([]string{"contentDetails"}).Id(channelID).Context(ctx).Do()
		return err
	})
	if err != nil {
		return "", err
	}
	if len(response.Items) == 0 {
		return "", nil
	}
	details := response.Items[0].ContentDetails
	if details == nil || details.RelatedPlaylists == nil {
		return "", nil
	}
	return details.RelatedPlaylists.Uploads, nil
}

// LatestVideos runs a date-ordered search, preserving upstream order
func (c *Client) LatestVideos(ctx context.Context, apiKey, channelID string, maxResults int64) ([]model.VideoSummary, error) {
	var response *youtube.SearchListResponse
	err := c.call(ctx, apiKey, "search.list", func(ctx context.Context, s *youtube.Service) (err error) {
		response, err = s.Search.List([]string{"snippet"}).
			ChannelId(channelID).
			Order("date").
			Type("video").
			MaxResults(maxResults).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return nil, err
	}

	videos := make([]model.VideoSummary, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		video := model.VideoSummary{ID: item.Id.VideoId}
		if item.Snippet != nil {
			video.Title = item.Snippet.Title
			video.PublishedAt = item.Snippet.PublishedAt
			video.Thumbnail = preferredThumbnail(item.Snippet.Thumbnails)
		}
		videos = append(videos, video)
	}
	return videos, nil
}

// CandidateVideoIDs returns up to poolSize video ids, most recent first
func (c *Client) CandidateVideoIDs(ctx context.Context, apiKey, channelID string, poolSize int64) ([]string, error) {
	var response *youtube.SearchListResponse
	err := c.call(ctx, apiKey, "search.list", func(ctx context.Context, s *youtube.Service) (err error) {
		response, err = s.Search.List([]string{"id"}).
			ChannelId(channelID).
			Order("date").
			Type("video").
			MaxResults(poolSize).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}
	return ids, nil
}

// VideosByID performs a single batched snippet+statistics lookup
func (c *Client) VideosByID(ctx context.Context, apiKey string, videoIDs []string) ([]model.VideoSummary, error) {
	var response *youtube.VideoListResponse
	err := c.call(ctx, apiKey, "videos.list", func(ctx context.Context, s *youtube.Service) (err error) {
		response, err = s.Videos.List([]string{"snippet", "statistics"}).
			Id(strings.Join(videoIDs, ",")).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return nil, err
	}

	videos := make([]model.VideoSummary, 0, len(response.Items))
	for _, item := range response.Items {
		videos = append(videos, convertToVideoSummary(item))
	}
	return videos, nil
}

// convertToChannelStatistics maps the API channel; absent parts decode as zero values
func convertToChannelStatistics(channel *youtube.Channel) *model.ChannelStatistics {
	out := &model.ChannelStatistics{Thumbnails: map[string]string{}}
	if channel.Statistics != nil {
		out.SubscriberCount = channel.Statistics.SubscriberCount
		out.ViewCount = channel.Statistics.ViewCount
		out.VideoCount = channel.Statistics.VideoCount
	}
	if channel.Snippet != nil {
		out.Title = channel.Snippet.Title
		out.Description = channel.Snippet.Description
		out.CustomURL = channel.Snippet.CustomUrl
		out.Thumbnails = thumbnailURLs(channel.Snippet.Thumbnails)
	}
	return out
}

// convertToVideoSummary always sets ViewCount, 0 when statistics are absent
func convertToVideoSummary(video *youtube.Video) model.VideoSummary {
	var views uint64
	if video.Statistics != nil {
		views = video.Statistics.ViewCount
	}
	out := model.VideoSummary{ID: video.Id, ViewCount: &views}
	if video.Snippet != nil {
		out.Title = video.Snippet.Title
		out.PublishedAt = video.Snippet.PublishedAt
		out.Thumbnail = preferredThumbnail(video.Snippet.Thumbnails)
	}
	return out
}

// preferredThumbnail picks "high", then "medium", else ""
func preferredThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	if t.High != nil && t.High.Url != "" {
		return t.High.Url
	}
	if t.Medium != nil {
		return t.Medium.Url
	}
	return ""
}

func thumbnailURLs(t *youtube.ThumbnailDetails) map[string]string {
	out := make(map[string]string)
	if t == nil {
		return out
	}
	for name, thumb := range map[string]*youtube.Thumbnail{
		"default":  t.Default,
		"medium":   t.Medium,
		"high":     t.High,
		"standard": t.Standard,
		"maxres":   t.Maxres,
	} {
		if thumb != nil && thumb.Url != "" {
			out[name] = thumb.Url
		}
	}
	return out
}
