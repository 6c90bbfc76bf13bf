package youtube_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"channel-gateway/domain/apperror"
	"channel-gateway/domain/repository"
	yt "channel-gateway/infrastructure/clients/youtube"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

type upstream struct {
	mu       sync.Mutex
	requests []*http.Request
	routes   map[string]func(w http.ResponseWriter, r *http.Request)
}

func (u *upstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.requests = append(u.requests, r)
	u.mu.Unlock()
	route, ok := u.routes[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	route(w, r)
}

func (u *upstream) last() *http.Request {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.requests[len(u.requests)-1]
}

func jsonBody(status int, body string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func newClient(t *testing.T, routes map[string]func(w http.ResponseWriter, r *http.Request)) (repository.IYouTubeAPI, *upstream) {
	t.Helper()
	u := &upstream{routes: routes}
	srv := httptest.NewServer(u)
	t.Cleanup(srv.Close)
	client := yt.NewYouTubeClient(&yt.Config{BaseURL: srv.URL + "/"}, option.WithHTTPClient(srv.Client()))
	return client, u
}

func TestChannelIDByHandle(t *testing.T) {
	client, u := newClient(t, map[string]func(w http.ResponseWriter, r *http.Request){
		"/youtube/v3/channels": jsonBody(http.StatusOK, `{"items":[{"id":"UC123"}]}`),
	})

	id, err := client.ChannelIDByHandle(context.Background(), "key-1", "@example")
	require.NoError(t, err)
	assert.Equal(t, "UC123", id)

	q := u.last().URL.Query()
	assert.Equal(t, "@example", q.Get("forHandle"))
	assert.Equal(t, "id", q.Get("part"))
}

func TestChannelIDByHandle_NotFound(t *testing.T) {
	client, _ := newClient(t, map[string]func(w http.ResponseWriter, r *http.Request){
		"/youtube/v3/channels": jsonBody(http.StatusOK, `{"items":[]}`),
	})

	_, err := client.ChannelIDByHandle(context.Background(), "key", "@nobody")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, "Channel not found for handle", err.Error())
}

func TestChannelStatistics_CoercesCounts(t *testing.T) {
	client, _ := newClient(t, map[string]func(w http.ResponseWriter, r *http.Request){
		"/youtube/v3/channels": jsonBody(http.StatusOK, `{"items":[{"id":"UC1",
			"statistics":{"subscriberCount":"1500","viewCount":"99000"},
			"snippet":{"title":"Example","customUrl":"@example","description":"about",
				"thumbnails":{"default":{"url":"https://img/d"},"high":{"url":"https://img/h"}}}}]}`),
	})

	stats, err := client.ChannelStatistics(context.Background(), "key", "UC1")
	require.NoError(t, err)
	assert.Equal(t, uint64(1500), stats.SubscriberCount)
	assert.Equal(t, uint64(99000), stats.ViewCount)
	assert.Equal(t, uint64(0), stats.VideoCount)
	assert.Equal(t, "Example", stats.Title)
	assert.Equal(t, "@example", stats.CustomURL)
	assert.Equal(t, map[string]string{"default": "https://img/d", "high": "https://img/h"}, stats.Thumbnails)
}

func TestChannelStatistics_NoItems(t *testing.T) {
	client, _ := newClient(t, map[string]func(w http.ResponseWriter, r *http.Request){
		"/youtube/v3/channels": jsonBody(http.StatusOK, `{"items":[]}`),
	})

	_, err := client.ChannelStatistics(context.Background(), "key", "UCmissing")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUpstreamError_CarriesStatusAndExcerpt(t *testing.T) {
	body := `{"error":{"code":403,"message":"quota ` + strings.Repeat("x", 400) + `"}}`
	client, _ := newClient(t, map[string]func(w http.ResponseWriter, r *http.Request){
		"/youtube/v3/channels": jsonBody(http.StatusForbidden, body),
	})

	_, err := client.ChannelStatistics(context.Background(), "key", "UC1")
	require.Error(t, err)

	var ue *apperror.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusForbidden, ue.Status)
	assert.Equal(t, "channels.list", ue.Operation)
	assert.LessOrEqual(t, len([]rune(ue.Excerpt)), apperror.MaxExcerptLength)
	assert.True(t, strings.HasPrefix(err.Error(), "YouTube API error: "))
}

func TestUpstreamError_TransportFailure(t *testing.T) {
	u := &upstream{}
	srv := httptest.NewServer(u)
	url := srv.URL
	srv.Close()

	client := yt.NewYouTubeClient(&yt.Config{BaseURL: url + "/"}, option.WithHTTPClient(http.DefaultClient))
	_, err := client.ChannelIDByHandle(context.Background(), "key", "@example")

	var ue *apperror.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, 0, ue.Status)
}

func TestUploadsPlaylistID(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		client, _ := newClient(t, map[string]func(w http.ResponseWriter, r *http.Request){
			"/youtube/v3/channels": jsonBody(http.StatusOK, `{"items":[{"id":"UC1","contentDetails":{"relatedPlaylists":{"uploads":"UU1"}}}]}`),
		})
		id, err := client.UploadsPlaylistID(context.Background(), "key", "UC1")
		require.NoError(t, err)
		assert.Equal(t, "UU1", id)
	})

	t.Run("absent", func(t *testing.T) {
		client, _ := newClient(t, map[string]func(w http.ResponseWriter, r *http.Request){
			"/youtube/v3/channels": jsonBody(http.StatusOK, `{"items":[{"id":"UC1","contentDetails":{}}]}`),
		})
		id, err := client.UploadsPlaylistID(context.Background(), "key", "UC1")
		require.NoError(t, err)
		assert.Empty(t, id)
	})

	t.Run("no channel", func(t *testing.T) {
		client, _ := newClient(t, map[string]func(w http.ResponseWriter, r *http.Request){
			"/youtube/v3/channels": jsonBody(http.StatusOK, `{"items":[]}`),
		})
		id, err := client.UploadsPlaylistID(context.Background(), "key", "UC1")
		require.NoError(t, err)
		assert.Empty(t, id)
	})
}

func TestLatestVideos(t *testing.T) {
	client, u := newClient(t, map[string]func(w http.ResponseWriter, r *http.Request){
		"/youtube/v3/search": jsonBody(http.StatusOK, `{"items":[
			{"id":{"kind":"youtube#video","videoId":"v2"},"snippet":{"title":"Second","publishedAt":"2024-02-02T00:00:00Z",
				"thumbnails":{"medium":{"url":"https://img/m2"}}}},
			{"id":{"kind":"youtube#video","videoId":"v1"},"snippet":{"title":"First","publishedAt":"2024-01-01T00:00:00Z",
				"thumbnails":{"medium":{"url":"https://img/m1"},"high":{"url":"https://img/h1"}}}},
			{"id":{"kind":"youtube#video","videoId":"v0"},"snippet":{"title":"Bare"}}
		]}`),
	})

	videos, err := client.LatestVideos(context.Background(), "key", "UC1", 3)
	require.NoError(t, err)
	require.Len(t, videos, 3)
	assert.Equal(t, "v2", videos[0].ID)
	assert.Equal(t, "https://img/m2", videos[0].Thumbnail)
	assert.Equal(t, "https://img/h1", videos[1].Thumbnail)
	assert.Empty(t, videos[2].Thumbnail)
	assert.Nil(t, videos[0].ViewCount)

	q := u.last().URL.Query()
	assert.Equal(t, "UC1", q.Get("channelId"))
	assert.Equal(t, "date", q.Get("order"))
	assert.Equal(t, "video", q.Get("type"))
	assert.Equal(t, "3", q.Get("maxResults"))
}

func TestCandidateVideoIDsAndVideosByID(t *testing.T) {
	client, u := newClient(t, map[string]func(w http.ResponseWriter, r *http.Request){
		"/youtube/v3/search": jsonBody(http.StatusOK, `{"items":[{"id":{"videoId":"a"}},{"id":{"videoId":"b"}}]}`),
		"/youtube/v3/videos": jsonBody(http.StatusOK, `{"items":[
			{"id":"b","snippet":{"title":"B"},"statistics":{"viewCount":"10"}},
			{"id":"a","snippet":{"title":"A"}}
		]}`),
	})

	ids, err := client.CandidateVideoIDs(context.Background(), "key", "UC1", 25)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
	assert.Equal(t, "25", u.last().URL.Query().Get("maxResults"))

	videos, err := client.VideosByID(context.Background(), "key", ids)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	require.NotNil(t, videos[0].ViewCount)
	assert.Equal(t, uint64(10), *videos[0].ViewCount)
	require.NotNil(t, videos[1].ViewCount)
	assert.Equal(t, uint64(0), *videos[1].ViewCount)
	assert.Equal(t, "a,b", u.last().URL.Query().Get("id"))
}

func TestLiveCallRequiresKey(t *testing.T) {
	client, _ := newClient(t, nil)
	_, err := client.ChannelIDByHandle(context.Background(), "", "@example")
	assert.True(t, apperror.IsUpstream(err))
}

func TestChannelStatistics_MissingThumbnailsEncodeAsObject(t *testing.T) {
	client, _ := newClient(t, map[string]func(w http.ResponseWriter, r *http.Request){
		"/youtube/v3/channels": jsonBody(http.StatusOK, `{"items":[{"id":"UC1","statistics":{"subscriberCount":"1"},"snippet":{"title":"Bare"}}]}`),
	})

	stats, err := client.ChannelStatistics(context.Background(), "key", "UC1")
	require.NoError(t, err)
	require.NotNil(t, stats.Thumbnails)
	assert.Empty(t, stats.Thumbnails)

	raw, err := json.Marshal(stats)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"thumbnails":{}`)
}
