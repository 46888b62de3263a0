package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/radhakrishnanganapathy/YTAnalyis/internal/handler"
	"github.com/radhakrishnanganapathy/YTAnalyis/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Scrape   *handler.ScrapeHandler
	Channel  *handler.ChannelHandler
	Video    *handler.VideoHandler
	Category *handler.CategoryHandler
	Stats    *handler.StatsHandler
	Health   *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Probes and metrics (outside the API group)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	api := app.Group("/api")

	// Scrape routes — throttled, every call burns provider quota
	scrapeLimiter := middleware.NewScrapeRateLimiter()
	scrape := api.Group("/scrape", scrapeLimiter.Handler())
	scrape.Post("/channel", h.Scrape.ScrapeChannel)
	scrape.Post("/video", h.Scrape.ScrapeVideo)
	scrape.Post("/channel-videos", h.Scrape.ScrapeChannelVideos)

	// Catalog reads
	api.Get("/channels", h.Channel.List)
	api.Get("/videos", h.Video.List)
	api.Get("/categories", h.Category.List)
	api.Get("/stats", h.Stats.GetStats)

	// Catalog deletes
	api.Delete("/channels/:channelId", h.Channel.Delete)
	api.Delete("/videos/:videoId", h.Video.Delete)
}
