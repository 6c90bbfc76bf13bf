package usecase

import (
	"context"

	"channel-gateway/domain/dto"
	"channel-gateway/domain/model"
	"channel-gateway/domain/repository"

	"golang.org/x/sync/errgroup"
)

// IYouTubeUseCase defines the channel metrics operations exposed over HTTP.
// Every operation resolves the channel first, so an explicit channel id never
// costs an upstream call.
type IYouTubeUseCase interface {
	Overview(ctx context.Context, query dto.ChannelQuery, maxResults int) (*dto.OverviewResponse, error)
	Subscribers(ctx context.Context, query dto.ChannelQuery) (*dto.SubscribersResponse, error)
	LatestVideos(ctx context.Context, query dto.ChannelQuery, maxResults int) (*dto.VideosResponse, error)
	PopularVideos(ctx context.Context, query dto.ChannelQuery, maxResults int) (*dto.VideosResponse, error)
	UploadsPlaylist(ctx context.Context, query dto.ChannelQuery) (*dto.UploadsResponse, error)
}

// YouTubeUseCase implements IYouTubeUseCase
type YouTubeUseCase struct {
	channelRepo repository.IChannelRepository
	credential  func() model.Credential
}

// NewYouTubeUseCase creates the facade. credential is consulted once per
// request so a key supplied at runtime applies without restart.
func NewYouTubeUseCase(channelRepo repository.IChannelRepository, credential func() model.Credential) IYouTubeUseCase {
	return &YouTubeUseCase{channelRepo: channelRepo, credential: credential}
}

func (u *YouTubeUseCase) resolve(ctx context.Context, query dto.ChannelQuery) (model.Credential, string, error) {
	cred := u.credential()
	id, err := u.channelRepo.ResolveChannelID(ctx, cred, query.Handle, query.ChannelID)
	return cred, id, err
}

// Overview fetches statistics, latest and popular videos concurrently.
// The first failure cancels the others and fails the whole response.
func (u *YouTubeUseCase) Overview(ctx context.Context, query dto.ChannelQuery, maxResults int) (*dto.OverviewResponse, error) {
	cred, id, err := u.resolve(ctx, query)
	if err != nil {
		return nil, err
	}

	res := &dto.OverviewResponse{ChannelID: id}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		res.Stats, err = u.channelRepo.GetChannelStatistics(gctx, cred, id)
		return err
	})
	g.Go(func() (err error) {
		res.Latest, err = u.channelRepo.GetLatestVideos(gctx, cred, id, maxResults)
		return err
	})
	g.Go(func() (err error) {
		res.Popular, err = u.channelRepo.GetPopularVideos(gctx, cred, id, maxResults)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	res.Latest = nonNil(res.Latest)
	res.Popular = nonNil(res.Popular)
	return res, nil
}

func (u *YouTubeUseCase) Subscribers(ctx context.Context, query dto.ChannelQuery) (*dto.SubscribersResponse, error) {
	cred, id, err := u.resolve(ctx, query)
	if err != nil {
		return nil, err
	}
	stats, err := u.channelRepo.GetChannelStatistics(ctx, cred, id)
	if err != nil {
		return nil, err
	}
	return &dto.SubscribersResponse{ChannelID: id, SubscriberCount: stats.SubscriberCount}, nil
}

func (u *YouTubeUseCase) LatestVideos(ctx context.Context, query dto.ChannelQuery, maxResults int) (*dto.VideosResponse, error) {
	cred, id, err := u.resolve(ctx, query)
	if err != nil {
		return nil, err
	}
	videos, err := u.channelRepo.GetLatestVideos(ctx, cred, id, maxResults)
	if err != nil {
		return nil, err
	}
	return &dto.VideosResponse{ChannelID: id, Videos: nonNil(videos)}, nil
}

func (u *YouTubeUseCase) PopularVideos(ctx context.Context, query dto.ChannelQuery, maxResults int) (*dto.VideosResponse, error) {
	cred, id, err := u.resolve(ctx, query)
	if err != nil {
		return nil, err
	}
	videos, err := u.channelRepo.GetPopularVideos(ctx, cred, id, maxResults)
	if err != nil {
		return nil, err
	}
	return &dto.VideosResponse{ChannelID: id, Videos: nonNil(videos)}, nil
}

func (u *YouTubeUseCase) UploadsPlaylist(ctx context.Context, query dto.ChannelQuery) (*dto.UploadsResponse, error) {
	cred, id, err := u.resolve(ctx, query)
	if err != nil {
		return nil, err
	}
	playlistID, ok, err := u.channelRepo.GetUploadsPlaylistID(ctx, cred, id)
	if err != nil {
		return nil, err
	}
	res := &dto.UploadsResponse{ChannelID: id}
	if ok {
		res.UploadsPlaylistID = &playlistID
	}
	return res, nil
}

// nonNil keeps empty lists encoding as [] rather than null.
func nonNil(videos []model.VideoSummary) []model.VideoSummary {
	if videos == nil {
		return []model.VideoSummary{}
	}
	return videos
}
