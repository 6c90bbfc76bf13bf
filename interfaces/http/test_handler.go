package http

import (
	"net/http"

	"channel-gateway/domain/dto"
	"channel-gateway/usecase"

	"github.com/gin-gonic/gin"
)

type ITestHandler interface {
	Root(c *gin.Context)
	Hello(c *gin.Context)
	Test(c *gin.Context)
	Healthz(c *gin.Context)
}

type TestHandler struct {
	DiagnosticsUsecase usecase.IDiagnosticsUsecase
}

func NewTestHandler(diagnosticsUsecase usecase.IDiagnosticsUsecase) ITestHandler {
	return &TestHandler{DiagnosticsUsecase: diagnosticsUsecase}
}

func (testHandler *TestHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "YouTube helper backend running"})
}

func (testHandler *TestHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Hello from the backend API!"})
}

// Test reports the optional database integration
func (testHandler *TestHandler) Test(c *gin.Context) {
	res := testHandler.DiagnosticsUsecase.Test(c.Request.Context())
	c.JSON(http.StatusOK, res)
}

// Healthz returns OK for health checks
func (h *TestHandler) Healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
