package server_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"channel-gateway/domain/dto"
	"channel-gateway/domain/model"
	"channel-gateway/infrastructure/cache"
	"channel-gateway/infrastructure/persistence"
	httpHandler "channel-gateway/interfaces/http"
	"channel-gateway/server"
	"channel-gateway/usecase"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDemoRouter(allowOrigins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	channelRepo := persistence.NewChannelRepository(cache.NewTTLCache(cache.DefaultTTL), nil)
	youtubeUC := usecase.NewYouTubeUseCase(channelRepo, func() model.Credential { return model.Credential{} })
	diagnosticsUC := usecase.NewDiagnosticsUsecase(persistence.NewDiagnosticsRepository(nil, "", ""))
	return server.InitiateRouter(
		httpHandler.NewTestHandler(diagnosticsUC),
		httpHandler.NewYouTubeHandler(youtubeUC),
		allowOrigins,
	)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_DemoOverview(t *testing.T) {
	r := newDemoRouter(nil)
	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/youtube/overview?handle=@Example&maxResults=3", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body dto.OverviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "UC_demo_example", body.ChannelID)
	assert.Equal(t, uint64(12345), body.Stats.SubscriberCount)
	assert.Len(t, body.Latest, 3)
	assert.Len(t, body.Popular, 3)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	again := serve(r, httptest.NewRequest(http.MethodGet, "/api/youtube/overview?handle=@Example&maxResults=3", nil))
	assert.Equal(t, w.Body.String(), again.Body.String())
}

func TestRouter_Routes(t *testing.T) {
	r := newDemoRouter(nil)
	tests := []struct {
		target string
		status int
	}{
		{"/", http.StatusOK},
		{"/api/hello", http.StatusOK},
		{"/healthz", http.StatusOK},
		{"/test", http.StatusOK},
		{"/api/youtube/subscribers?channelId=UC1", http.StatusOK},
		{"/api/youtube/subscribers", http.StatusBadRequest},
		{"/api/youtube/videos/latest?handle=@a", http.StatusOK},
		{"/api/youtube/videos/popular?handle=@a&maxResults=12", http.StatusOK},
		{"/api/youtube/videos/popular?handle=@a&maxResults=13", http.StatusBadRequest},
		{"/api/youtube/uploads?channelId=UC1", http.StatusOK},
		{"/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := serve(r, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRouter_MissingIdentifierMessage(t *testing.T) {
	w := serve(newDemoRouter(nil), httptest.NewRequest(http.MethodGet, "/api/youtube/overview", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Provide either handle or channelId", body.Message)
}

func TestRouter_Metrics(t *testing.T) {
	r := newDemoRouter(nil)
	serve(r, httptest.NewRequest(http.MethodGet, "/api/youtube/subscribers?handle=@m", nil))

	w := serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "gateway_fallback_responses_total"))
}

func TestRouter_CORS(t *testing.T) {
	t.Run("any origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/hello", nil)
		req.Header.Set("Origin", "https://example.org")
		w := serve(newDemoRouter(nil), req)
		assert.Equal(t, "https://example.org", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("configured list", func(t *testing.T) {
		r := newDemoRouter([]string{"https://allowed.example"})
		req := httptest.NewRequest(http.MethodGet, "/api/hello", nil)
		req.Header.Set("Origin", "https://other.example")
		w := serve(r, req)
		assert.Equal(t, http.StatusForbidden, w.Code)

		req = httptest.NewRequest(http.MethodGet, "/api/hello", nil)
		req.Header.Set("Origin", "https://allowed.example")
		w = serve(r, req)
		assert.Equal(t, "https://allowed.example", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
