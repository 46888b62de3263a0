package youtube

import "github.com/radhakrishnanganapathy/YTAnalyis/internal/model"

// ShortsMaxSeconds is the duration threshold separating shorts from
// regular videos.
const ShortsMaxSeconds = 60

// Classify labels a video by its duration: at most 60 seconds is a short,
// anything longer is a regular video. The label is recomputed on every
// scrape and never trusted from a stored row or the provider.
func Classify(durationSeconds int) model.FormatType {
	if durationSeconds <= ShortsMaxSeconds {
		return model.FormatShorts
	}
	return model.FormatVideo
}
