package server

import (
	"net/http"
	"time"

	httpHandler "channel-gateway/interfaces/http"
	"channel-gateway/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// InitiateRouter builds the engine. An empty allowOrigins list allows any origin.
func InitiateRouter(
	testHandler httpHandler.ITestHandler,
	youtubeHandler httpHandler.IYouTubeHandler,
	allowOrigins []string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(cors.New(corsConfig(allowOrigins)))

	router.GET("/", testHandler.Root)
	router.GET("/test", testHandler.Test)
	router.GET("/healthz", testHandler.Healthz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("api")
	api.GET("/hello", testHandler.Hello)

	youtube := api.Group("youtube")
	youtube.GET("/overview", youtubeHandler.Overview)
	youtube.GET("/subscribers", youtubeHandler.Subscribers)
	youtube.GET("/videos/latest", youtubeHandler.LatestVideos)
	youtube.GET("/videos/popular", youtubeHandler.PopularVideos)
	youtube.GET("/uploads", youtubeHandler.UploadsPlaylist)

	return router
}

func corsConfig(allowOrigins []string) cors.Config {
	config := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowOrigins) == 0 {
		config.AllowOriginFunc = func(origin string) bool { return true }
	} else {
		config.AllowOrigins = allowOrigins
	}
	return config
}
