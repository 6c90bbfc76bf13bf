package http

import (
	"errors"
	"net/http"

	"channel-gateway/domain/apperror"
	"channel-gateway/domain/dto"
	"channel-gateway/infrastructure/logger"
	"channel-gateway/usecase"

	"github.com/gin-gonic/gin"
)

// IYouTubeHandler defines the channel metrics HTTP handlers
type IYouTubeHandler interface {
	Overview(ctx *gin.Context)
	Subscribers(ctx *gin.Context)
	LatestVideos(ctx *gin.Context)
	PopularVideos(ctx *gin.Context)
	UploadsPlaylist(ctx *gin.Context)
}

// YouTubeHandler implements the channel metrics HTTP handlers
type YouTubeHandler struct {
	youtubeUseCase usecase.IYouTubeUseCase
}

// NewYouTubeHandler creates a new YouTube handler instance
func NewYouTubeHandler(youtubeUseCase usecase.IYouTubeUseCase) IYouTubeHandler {
	return &YouTubeHandler{youtubeUseCase: youtubeUseCase}
}

// Overview handles GET /api/youtube/overview
func (h *YouTubeHandler) Overview(ctx *gin.Context) {
	var query dto.VideoListQuery
	if !bindQuery(ctx, &query) {
		return
	}

	res, err := h.youtubeUseCase.Overview(ctx.Request.Context(), query.ChannelQuery, query.MaxResults)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// Subscribers handles GET /api/youtube/subscribers
func (h *YouTubeHandler) Subscribers(ctx *gin.Context) {
	var query dto.ChannelQuery
	if !bindQuery(ctx, &query) {
		return
	}

	res, err := h.youtubeUseCase.Subscribers(ctx.Request.Context(), query)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// LatestVideos handles GET /api/youtube/videos/latest
func (h *YouTubeHandler) LatestVideos(ctx *gin.Context) {
	var query dto.VideoListQuery
	if !bindQuery(ctx, &query) {
		return
	}

	res, err := h.youtubeUseCase.LatestVideos(ctx.Request.Context(), query.ChannelQuery, query.MaxResults)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// PopularVideos handles GET /api/youtube/videos/popular
func (h *YouTubeHandler) PopularVideos(ctx *gin.Context) {
	var query dto.VideoListQuery
	if !bindQuery(ctx, &query) {
		return
	}

	res, err := h.youtubeUseCase.PopularVideos(ctx.Request.Context(), query.ChannelQuery, query.MaxResults)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// UploadsPlaylist handles GET /api/youtube/uploads
func (h *YouTubeHandler) UploadsPlaylist(ctx *gin.Context) {
	var query dto.ChannelQuery
	if !bindQuery(ctx, &query) {
		return
	}

	res, err := h.youtubeUseCase.UploadsPlaylist(ctx.Request.Context(), query)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

func bindQuery(ctx *gin.Context, query any) bool {
	if err := ctx.ShouldBindQuery(query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid query parameters",
			Message: err.Error(),
		})
		return false
	}
	return true
}

// statusFor maps an error kind to its HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case apperror.IsUpstream(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx *gin.Context, err error) {
	status := statusFor(err)
	entry := logger.GetLogger().WithField("path", ctx.Request.URL.Path).WithField("status", status).WithField("error", err)
	if status >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Info("Request rejected")
	}
	ctx.JSON(status, dto.ErrorResponse{
		Error:   http.StatusText(status),
		Message: err.Error(),
	})
}
