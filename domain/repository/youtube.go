package repository

import (
	"context"

	"channel-gateway/domain/model"
)

// IYouTubeAPI defines the raw, uncached calls against the YouTube Data API.
// Every call receives the API key explicitly so credential changes apply per request.
type IYouTubeAPI interface {
	// ChannelIDByHandle looks a channel up by its @handle.
	ChannelIDByHandle(ctx context.Context, apiKey, handle string) (string, error)
	// ChannelStatistics fetches the statistics and snippet parts of a channel.
	ChannelStatistics(ctx context.Context, apiKey, channelID string) (*model.ChannelStatistics, error)
	// UploadsPlaylistID returns "" when the channel or its uploads playlist is unknown.
	UploadsPlaylistID(ctx context.Context, apiKey, channelID string) (string, error)
	// LatestVideos runs a date-ordered video search limited to maxResults items.
	LatestVideos(ctx context.Context, apiKey, channelID string, maxResults int64) ([]model.VideoSummary, error)
	// CandidateVideoIDs returns up to poolSize video ids, most recent first.
	CandidateVideoIDs(ctx context.Context, apiKey, channelID string, poolSize int64) ([]string, error)
	// VideosByID performs one batched snippet+statistics lookup.
	VideosByID(ctx context.Context, apiKey string, videoIDs []string) ([]model.VideoSummary, error)
}

// IChannelRepository defines the cache-through channel operations.
// Each operation checks the cache first, then synthesizes demo data when the
// credential is absent, otherwise calls the upstream and caches the result.
type IChannelRepository interface {
	ResolveChannelID(ctx context.Context, cred model.Credential, handle, channelID string) (string, error)
	GetChannelStatistics(ctx context.Context, cred model.Credential, channelID string) (*model.ChannelStatistics, error)
	// GetUploadsPlaylistID reports false when the channel has no uploads playlist.
	GetUploadsPlaylistID(ctx context.Context, cred model.Credential, channelID string) (string, bool, error)
	GetLatestVideos(ctx context.Context, cred model.Credential, channelID string, maxResults int) ([]model.VideoSummary, error)
	GetPopularVideos(ctx context.Context, cred model.Credential, channelID string, maxResults int) ([]model.VideoSummary, error)
}
