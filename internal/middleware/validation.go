package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Field length limits matching database schema constraints.
const (
	MaxVideoIDLen    = 16  // videos.video_id VARCHAR(16)
	MaxChannelIDLen  = 32  // channels.channel_id VARCHAR(32)
	MaxChannelRefLen = 64  // channel id or legacy username form input
	MaxCategoryLen   = 50  // video_category_enum labels
	MaxPagesLimit    = 100 // sanity cap on a bulk walk request
)

var (
	// videoIDRe matches YouTube video ids: alphanumeric, dash, underscore.
	videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	// channelIDRe matches canonical channel ids ("UC..." and friends).
	channelIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	// channelRefRe additionally admits legacy usernames and handles,
	// which may carry "@" and dots.
	channelRefRe = regexp.MustCompile(`^@?[A-Za-z0-9._-]+$`)
	// categoryRe is a syntactic pre-check only; membership in the enum is
	// verified against the store before the value reaches a query.
	categoryRe = regexp.MustCompile(`^[A-Za-z0-9&/ _-]+$`)
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateVideoID checks that a video id is well-formed and within DB limits.
func ValidateVideoID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "videoId is required"
	}
	if len(id) > MaxVideoIDLen {
		return "", "videoId must be at most 16 characters"
	}
	if !videoIDRe.MatchString(id) {
		return "", "videoId contains invalid characters"
	}
	return id, ""
}

// ValidateChannelID checks that a canonical channel id is well-formed.
func ValidateChannelID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "channelId is required"
	}
	if len(id) > MaxChannelIDLen {
		return "", "channelId must be at most 32 characters"
	}
	if !channelIDRe.MatchString(id) {
		return "", "channelId contains invalid characters"
	}
	return id, ""
}

// ValidateChannelRef accepts either a canonical channel id or a legacy
// username/handle, as used by the channel scrape form.
func ValidateChannelRef(ref string) (string, string) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", "channel id or username is required"
	}
	if len(ref) > MaxChannelRefLen {
		return "", "channel reference must be at most 64 characters"
	}
	if !channelRefRe.MatchString(ref) {
		return "", "channel reference contains invalid characters"
	}
	return ref, ""
}

// ValidateCategory checks the syntactic shape of a category label. It does
// not prove enum membership — callers confirm that against the store.
func ValidateCategory(category string) (string, string) {
	category = strings.TrimSpace(category)
	if category == "" {
		return "", "category is required"
	}
	if len(category) > MaxCategoryLen {
		return "", "category must be at most 50 characters"
	}
	if !categoryRe.MatchString(category) {
		return "", "category contains invalid characters"
	}
	return category, ""
}

// ValidatePageBounds checks the bulk walk paging parameters.
func ValidatePageBounds(maxPages, maxVideosPerPage int) string {
	if maxPages < 1 {
		return "maxPages must be at least 1"
	}
	if maxPages > MaxPagesLimit {
		return "maxPages must be at most 100"
	}
	if maxVideosPerPage < 1 {
		return "maxVideosPerPage must be at least 1"
	}
	return ""
}
