package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"channel-gateway/domain/repository"
	"channel-gateway/infrastructure/cache"
	youtubeclient "channel-gateway/infrastructure/clients/youtube"
	"channel-gateway/infrastructure/configuration"
	"channel-gateway/infrastructure/logger"
	"channel-gateway/infrastructure/persistence"
	httpHandler "channel-gateway/interfaces/http"
	"channel-gateway/server"
	"channel-gateway/usecase"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/sync/errgroup"
)

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	// Load env from files (non-destructive; OS env still has precedence), then re-read config
	configuration.LoadEnvFromFile("config.env", ".env")
	configuration.LoadConfig()
	app := configuration.C.App

	channelCache := initiateCache(ctx)

	mongoDb, err := persistence.NewMongoDb(ctx, configuration.C.Database.URL)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("MongoDB not available - continuing without database diagnostics")
		mongoDb = nil
	} else {
		logger.GetLogger().Info("MongoDB connected successfully")
		defer func(client *mongo.Client) {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.GetLogger().WithField("error", err).Error("Error while disconnecting MongoDB")
			}
		}(mongoDb)
	}

	youtubeClient := youtubeclient.NewYouTubeClient(&youtubeclient.Config{BaseURL: configuration.C.YouTube.BaseURL})
	channelRepository := persistence.NewChannelRepository(channelCache, youtubeClient)
	diagnosticsRepository := persistence.NewDiagnosticsRepository(mongoDb, configuration.C.Database.URL, configuration.C.Database.Name)

	youtubeUseCase := usecase.NewYouTubeUseCase(channelRepository, configuration.GetYouTubeCredential)
	diagnosticsUsecase := usecase.NewDiagnosticsUsecase(diagnosticsRepository)

	cred := configuration.GetYouTubeCredential()
	effectiveMode := "demo"
	if cred.HasCredential() {
		effectiveMode = "live"
	}
	logger.GetLogger().WithFields(map[string]interface{}{
		"effectiveMode": effectiveMode,
		"forceFallback": cred.ForceFallback,
		"customBaseURL": configuration.C.YouTube.BaseURL != "",
	}).Info("YouTube initialization summary")

	router := server.InitiateRouter(
		httpHandler.NewTestHandler(diagnosticsUsecase),
		httpHandler.NewYouTubeHandler(youtubeUseCase),
		configuration.C.Cors.AllowOrigins,
	)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	logger.GetLogger().WithField("port", app.Port).Info("Starting application")
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-gctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while shutting down server")
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

// initiateCache builds the in-process cache, backed by Redis when configured.
func initiateCache(ctx context.Context) repository.ICache {
	l1 := cache.NewTTLCache(cache.DefaultTTL)

	redisConfig := configuration.C.RedisClient
	addr := redisConfig.Addr()
	if addr == "" {
		logger.GetLogger().Info("Redis not configured - using in-memory cache only")
		return l1
	}
	redisClient, err := cache.NewRedisClient(ctx, addr, redisConfig.Username, redisConfig.Password, redisConfig.DB)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - using in-memory cache only")
		return l1
	}
	logger.GetLogger().WithField("addr", addr).Info("Redis client initialized successfully.")
	return cache.NewTieredCache(l1, cache.NewRedisCache(redisClient, cache.DefaultTTL))
}
