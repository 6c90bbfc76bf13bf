package dto

import "channel-gateway/domain/model"

// ChannelQuery identifies a channel either by handle or by id.
// When both are supplied the channel id wins.
type ChannelQuery struct {
	Handle    string `form:"handle" url:"handle,omitempty"`
	ChannelID string `form:"channelId" url:"channelId,omitempty"`
}

// VideoListQuery adds the result size to a ChannelQuery.
type VideoListQuery struct {
	ChannelQuery
	MaxResults int `form:"maxResults,default=6" url:"maxResults,omitempty" binding:"min=1,max=12"`
}

// OverviewResponse aggregates statistics, latest and popular videos
type OverviewResponse struct {
	ChannelID string                   `json:"channelId"`
	Stats     *model.ChannelStatistics `json:"stats"`
	Latest    []model.VideoSummary     `json:"latest"`
	Popular   []model.VideoSummary     `json:"popular"`
}

// SubscribersResponse carries the subscriber count only
type SubscribersResponse struct {
	ChannelID       string `json:"channelId"`
	SubscriberCount uint64 `json:"subscriberCount"`
}

// VideosResponse carries a latest or popular video list
type VideosResponse struct {
	ChannelID string               `json:"channelId"`
	Videos    []model.VideoSummary `json:"videos"`
}

// UploadsResponse carries the uploads playlist id, null when the channel has none
type UploadsResponse struct {
	ChannelID         string  `json:"channelId"`
	UploadsPlaylistID *string `json:"uploadsPlaylistId"`
}
