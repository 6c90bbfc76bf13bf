package persistence

import (
	"context"
	"sort"

	"channel-gateway/domain/apperror"
	"channel-gateway/domain/model"
	"channel-gateway/domain/repository"
	"channel-gateway/infrastructure/cache"
	yt "channel-gateway/infrastructure/clients/youtube"
	"channel-gateway/infrastructure/logger"
	"channel-gateway/infrastructure/metrics"

	"golang.org/x/sync/singleflight"
)

// PopularPoolSize is the number of recent uploads ranked by GetPopularVideos.
const PopularPoolSize = 25

// ChannelRepository implements repository.IChannelRepository on top of the
// shared cache and the raw YouTube API client.
type ChannelRepository struct {
	cache repository.ICache
	api   repository.IYouTubeAPI
	group singleflight.Group
}

func NewChannelRepository(c repository.ICache, api repository.IYouTubeAPI) repository.IChannelRepository {
	return &ChannelRepository{cache: c, api: api}
}

// loadThrough returns the cached value under key, or the fallback value when
// cred is unusable, or the live value. live reports whether its result may be
// cached. Concurrent misses on one key share a single live call, which is
// detached from any one caller's cancellation; a caller whose ctx ends stops
// waiting without failing the others. Every caller decodes its own copy.
func loadThrough[T any](
	ctx context.Context,
	r *ChannelRepository,
	cred model.Credential,
	category, key string,
	fallback func() T,
	live func(ctx context.Context) (T, bool, error),
) (T, error) {
	var zero T
	if v, ok := cache.Load[T](ctx, r.cache, key); ok {
		return v, nil
	}

	if !cred.HasCredential() {
		v := fallback()
		logger.GetLogger().WithField("key", key).Debug("No YouTube credential - serving demo data")
		metrics.FallbackResponses.WithLabelValues(category).Inc()
		cache.Store(ctx, r.cache, key, v)
		return v, nil
	}

	flightCtx := context.WithoutCancel(ctx)
	ch := r.group.DoChan(key, func() (interface{}, error) {
		v, cacheable, err := live(flightCtx)
		if err != nil {
			return nil, err
		}
		raw, err := cache.Encode(v)
		if err != nil {
			return nil, err
		}
		if cacheable {
			r.cache.Set(flightCtx, key, raw)
		}
		return raw, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		logger.GetLogger().WithField("key", key).Debug("Caller left before upstream result arrived")
		return zero, ctx.Err()
	case res = <-ch:
	}

	if res.Err != nil {
		entry := logger.GetLogger().WithField("key", key).WithField("error", res.Err)
		if apperror.IsUpstream(res.Err) {
			entry.Error("Error while loading from YouTube API")
		} else {
			entry.Info("YouTube API returned no usable result")
		}
		return zero, res.Err
	}
	if res.Shared {
		logger.GetLogger().WithField("key", key).Debug("Shared in-flight upstream result")
	}
	return cache.Decode[T](res.Val.([]byte))
}

func (r *ChannelRepository) ResolveChannelID(ctx context.Context, cred model.Credential, handle, channelID string) (string, error) {
	if channelID != "" {
		return channelID, nil
	}
	if handle == "" {
		return "", apperror.InvalidArgument("Provide either handle or channelId")
	}

	return loadThrough(ctx, r, cred, cache.CategoryResolve, cache.Key(cache.CategoryResolve, handle),
		func() string { return yt.FallbackChannelID(handle) },
		func(ctx context.Context) (string, bool, error) {
			id, err := r.api.ChannelIDByHandle(ctx, cred.APIKey, handle)
			return id, err == nil, err
		})
}

func (r *ChannelRepository) GetChannelStatistics(ctx context.Context, cred model.Credential, channelID string) (*model.ChannelStatistics, error) {
	return loadThrough(ctx, r, cred, cache.CategoryStats, cache.Key(cache.CategoryStats, channelID),
		yt.FallbackStatistics,
		func(ctx context.Context) (*model.ChannelStatistics, bool, error) {
			stats, err := r.api.ChannelStatistics(ctx, cred.APIKey, channelID)
			return stats, err == nil, err
		})
}

// GetUploadsPlaylistID caches only present playlist ids, so an absent result is
// asked again on the next call.
func (r *ChannelRepository) GetUploadsPlaylistID(ctx context.Context, cred model.Credential, channelID string) (string, bool, error) {
	id, err := loadThrough(ctx, r, cred, cache.CategoryUploads, cache.Key(cache.CategoryUploads, channelID),
		func() string { return yt.FallbackUploadsPlaylistID(channelID) },
		func(ctx context.Context) (string, bool, error) {
			id, err := r.api.UploadsPlaylistID(ctx, cred.APIKey, channelID)
			return id, err == nil && id != "", err
		})
	if err != nil {
		return "", false, err
	}
	return id, id != "", nil
}

func (r *ChannelRepository) GetLatestVideos(ctx context.Context, cred model.Credential, channelID string, maxResults int) ([]model.VideoSummary, error) {
	return loadThrough(ctx, r, cred, cache.CategoryLatest, cache.Key(cache.CategoryLatest, channelID, maxResults),
		func() []model.VideoSummary { return yt.FallbackLatestVideos(maxResults) },
		func(ctx context.Context) ([]model.VideoSummary, bool, error) {
			videos, err := r.api.LatestVideos(ctx, cred.APIKey, channelID, int64(maxResults))
			return videos, err == nil, err
		})
}

// GetPopularVideos ranks the most recent PopularPoolSize uploads by view count.
func (r *ChannelRepository) GetPopularVideos(ctx context.Context, cred model.Credential, channelID string, maxResults int) ([]model.VideoSummary, error) {
	return loadThrough(ctx, r, cred, cache.CategoryPopular, cache.Key(cache.CategoryPopular, channelID, maxResults),
		func() []model.VideoSummary { return yt.FallbackPopularVideos(maxResults) },
		func(ctx context.Context) ([]model.VideoSummary, bool, error) {
			ids, err := r.api.CandidateVideoIDs(ctx, cred.APIKey, channelID, PopularPoolSize)
			if err != nil {
				return nil, false, err
			}
			if len(ids) == 0 {
				return []model.VideoSummary{}, false, nil
			}

			videos, err := r.api.VideosByID(ctx, cred.APIKey, ids)
			if err != nil {
				return nil, false, err
			}
			ranked := rankByViews(ids, videos)
			if len(ranked) > maxResults {
				ranked = ranked[:maxResults]
			}
			return ranked, true, nil
		})
}

// rankByViews orders videos by view count descending. Ties keep the order of
// ids, regardless of the order the lookup returned them in.
func rankByViews(ids []string, videos []model.VideoSummary) []model.VideoSummary {
	position := make(map[string]int, len(ids))
	for i, id := range ids {
		if _, seen := position[id]; !seen {
			position[id] = i
		}
	}
	ranked := make([]model.VideoSummary, len(videos))
	copy(ranked, videos)

	sort.SliceStable(ranked, func(i, j int) bool {
		return positionOf(position, ranked[i].ID) < positionOf(position, ranked[j].ID)
	})
	sort.SliceStable(ranked, func(i, j int) bool {
		return views(ranked[i]) > views(ranked[j])
	})
	return ranked
}

func positionOf(position map[string]int, id string) int {
	if p, ok := position[id]; ok {
		return p
	}
	return len(position)
}

func views(v model.VideoSummary) uint64 {
	if v.ViewCount == nil {
		return 0
	}
	return *v.ViewCount
}
