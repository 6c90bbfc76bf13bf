package youtube

import (
	"fmt"
	"strings"

	"channel-gateway/domain/model"
)

// DemoThumbnail is used by every synthesized video.
const DemoThumbnail = "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"

const demoPublishedAt = "2024-01-01T00:00:00Z"

// The fallback generators below produce deterministic demo data used when no
// API credential is configured.

// FallbackChannelID derives "UC_demo_<handle>" with leading '@' removed and lowercased.
func FallbackChannelID(handle string) string {
	return "UC_demo_" + strings.ToLower(strings.TrimLeft(handle, "@"))
}

func FallbackStatistics() *model.ChannelStatistics {
	return &model.ChannelStatistics{
		SubscriberCount: 12345,
		ViewCount:       987654,
		VideoCount:      2,
		Title:           "Demo Channel",
		Thumbnails:      map[string]string{},
	}
}

func FallbackUploadsPlaylistID(channelID string) string {
	return "PL_demo_" + channelID
}

// FallbackLatestVideos returns n videos titled "Demo Video 1..n".
func FallbackLatestVideos(n int) []model.VideoSummary {
	videos := make([]model.VideoSummary, 0, n)
	for i := 1; i <= n; i++ {
		var views uint64
		videos = append(videos, model.VideoSummary{
			ID:          fmt.Sprintf("demo_video_%d", i),
			Title:       fmt.Sprintf("Demo Video %d", i),
			Thumbnail:   DemoThumbnail,
			PublishedAt: demoPublishedAt,
			ViewCount:   &views,
		})
	}
	return videos
}

// FallbackPopularVideos returns n videos titled "Popular Demo 1..n" with
// strictly descending view counts 1000*n .. 1000.
func FallbackPopularVideos(n int) []model.VideoSummary {
	videos := make([]model.VideoSummary, 0, n)
	for i := 1; i <= n; i++ {
		views := uint64(1000 * (n - i + 1))
		videos = append(videos, model.VideoSummary{
			ID:        fmt.Sprintf("popular_demo_%d", i),
			Title:     fmt.Sprintf("Popular Demo %d", i),
			Thumbnail: DemoThumbnail,
			ViewCount: &views,
		})
	}
	return videos
}
