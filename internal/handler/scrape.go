package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/radhakrishnanganapathy/YTAnalyis/internal/middleware"
	"github.com/radhakrishnanganapathy/YTAnalyis/internal/model"
	"github.com/radhakrishnanganapathy/YTAnalyis/internal/repository"
	"github.com/radhakrishnanganapathy/YTAnalyis/internal/service"
	"github.com/radhakrishnanganapathy/YTAnalyis/internal/youtube"
)

type ScrapeHandler struct {
	svc        *service.ScrapeService
	categories *service.CategoryService
}

func NewScrapeHandler(svc *service.ScrapeService, categories *service.CategoryService) *ScrapeHandler {
	return &ScrapeHandler{svc: svc, categories: categories}
}

type scrapeChannelRequest struct {
	Channel  string `json:"channel"`
	Category string `json:"category"`
}

// ScrapeChannel handles POST /api/scrape/channel
func (h *ScrapeHandler) ScrapeChannel(c fiber.Ctx) error {
	var req scrapeChannelRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Malformed request body")
	}

	channel, errMsg := middleware.ValidateChannelRef(req.Channel)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	category, errMsg := middleware.ValidateCategory(req.Category)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	if err := h.requireKnownCategory(c, category); err != nil {
		return err
	}

	summary, err := h.svc.ScrapeChannel(c.Context(), channel, category)
	if err != nil {
		return scrapeErrorResponse(c, err, "Channel")
	}

	Metrics.ScrapesTotal.WithLabelValues("channel", "success").Inc()
	return c.JSON(summary)
}

type scrapeVideoRequest struct {
	VideoID  string `json:"videoId"`
	Category string `json:"category"`
}

// ScrapeVideo handles POST /api/scrape/video
func (h *ScrapeHandler) ScrapeVideo(c fiber.Ctx) error {
	var req scrapeVideoRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Malformed request body")
	}

	videoID, errMsg := middleware.ValidateVideoID(req.VideoID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	category, errMsg := middleware.ValidateCategory(req.Category)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	if err := h.requireKnownCategory(c, category); err != nil {
		return err
	}

	summary, err := h.svc.ScrapeVideo(c.Context(), videoID, category)
	if err != nil {
		return scrapeErrorResponse(c, err, "Video")
	}

	Metrics.ScrapesTotal.WithLabelValues("video", "success").Inc()
	return c.JSON(summary)
}

type scrapeChannelVideosRequest struct {
	ChannelID        string `json:"channelId"`
	VideoType        string `json:"videoType"`
	MaxPages         int    `json:"maxPages"`
	MaxVideosPerPage int    `json:"maxVideosPerPage"`
}

// ScrapeChannelVideos handles POST /api/scrape/channel-videos
func (h *ScrapeHandler) ScrapeChannelVideos(c fiber.Ctx) error {
	var req scrapeChannelVideosRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Malformed request body")
	}

	channelID, errMsg := middleware.ValidateChannelID(req.ChannelID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	videoType, err := model.ParseFormatType(req.VideoType)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", err.Error())
	}
	if req.MaxPages == 0 {
		req.MaxPages = 1
	}
	if req.MaxVideosPerPage == 0 {
		req.MaxVideosPerPage = 10
	}
	if errMsg := middleware.ValidatePageBounds(req.MaxPages, req.MaxVideosPerPage); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	scraped, err := h.svc.ScrapeChannelVideos(c.Context(), channelID, videoType, req.MaxPages, req.MaxVideosPerPage)
	if err != nil {
		// Videos ingested before the failure stay committed; the walk as
		// a whole still reports the failure.
		Metrics.VideosIngested.Add(float64(scraped))
		return scrapeErrorResponse(c, err, "Channel")
	}

	Metrics.ScrapesTotal.WithLabelValues("channel-videos", "success").Inc()
	Metrics.VideosIngested.Add(float64(scraped))
	return c.JSON(fiber.Map{"scraped": scraped})
}

// requireKnownCategory rejects category values outside the store's closed
// enumeration. Returns nil when the category is acceptable.
func (h *ScrapeHandler) requireKnownCategory(c fiber.Ctx, category string) error {
	ok, err := h.categories.Valid(c.Context(), category)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to verify category")
	}
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "Unknown category")
	}
	return nil
}

// scrapeErrorResponse maps the scrape error taxonomy onto HTTP responses.
func scrapeErrorResponse(c fiber.Ctx, err error, subject string) error {
	var storeErr *repository.StoreError

	switch {
	case errors.Is(err, youtube.ErrQuotaOrAuth):
		Metrics.ScrapesTotal.WithLabelValues(kindOf(c), "quota_or_auth").Inc()
		return middleware.ErrorResponse(c, fiber.StatusBadGateway, "QUOTA_OR_AUTH", "API quota exceeded or key rejected")
	case errors.Is(err, youtube.ErrInvalidIdentifier):
		Metrics.ScrapesTotal.WithLabelValues(kindOf(c), "invalid_id").Inc()
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_IDENTIFIER", subject+" identifier rejected by provider")
	case errors.Is(err, service.ErrChannelNotFound), errors.Is(err, youtube.ErrNotFound):
		Metrics.ScrapesTotal.WithLabelValues(kindOf(c), "not_found").Inc()
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", subject+" not found")
	case errors.As(err, &storeErr):
		Metrics.ScrapesTotal.WithLabelValues(kindOf(c), "store_error").Inc()
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "STORE_ERROR", "Failed to persist scraped data")
	default:
		Metrics.ScrapesTotal.WithLabelValues(kindOf(c), "upstream_error").Inc()
		return middleware.ErrorResponse(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", "Provider request failed")
	}
}

func kindOf(c fiber.Ctx) string {
	switch c.Path() {
	case "/api/scrape/video":
		return "video"
	case "/api/scrape/channel-videos":
		return "channel-videos"
	default:
		return "channel"
	}
}
