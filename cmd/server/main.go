package main

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/radhakrishnanganapathy/YTAnalyis/internal/config"
	"github.com/radhakrishnanganapathy/YTAnalyis/internal/db"
	"github.com/radhakrishnanganapathy/YTAnalyis/internal/handler"
	"github.com/radhakrishnanganapathy/YTAnalyis/internal/middleware"
	"github.com/radhakrishnanganapathy/YTAnalyis/internal/repository"
	"github.com/radhakrishnanganapathy/YTAnalyis/internal/router"
	"github.com/radhakrishnanganapathy/YTAnalyis/internal/service"
	"github.com/radhakrishnanganapathy/YTAnalyis/internal/youtube"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "ytanalytics-api")

	ctx := context.Background()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	ytClient, err := youtube.NewClient(ctx, cfg.YTAPIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create youtube client")
	}

	handler.InitMetrics(pool)

	channelRepo := repository.NewChannelRepo(pool)
	videoRepo := repository.NewVideoRepo(pool)
	categoryRepo := repository.NewCategoryRepo(pool)
	statsRepo := repository.NewStatsRepo(pool)

	categorySvc := service.NewCategoryService(categoryRepo, cache)
	channelSvc := service.NewChannelService(channelRepo, cache)
	videoSvc := service.NewVideoService(videoRepo, cache)
	statsSvc := service.NewStatsService(statsRepo, cache)
	scrapeSvc := service.NewScrapeService(ytClient, channelRepo, videoRepo, cache)

	app := fiber.New(fiber.Config{
		AppName:      "YTAnalytics API",
		ServerHeader: "YTAnalytics",
	})

	router.Setup(app, &router.Handlers{
		Scrape:   handler.NewScrapeHandler(scrapeSvc, categorySvc),
		Channel:  handler.NewChannelHandler(channelSvc, categorySvc),
		Video:    handler.NewVideoHandler(videoSvc),
		Category: handler.NewCategoryHandler(categorySvc),
		Stats:    handler.NewStatsHandler(statsSvc),
		Health:   handler.NewHealthHandler(pool, cache.Client()),
	}, cfg.CORSOrigins)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("ytanalytics backend starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
