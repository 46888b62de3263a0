package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/radhakrishnanganapathy/YTAnalyis/internal/model"
	"github.com/radhakrishnanganapathy/YTAnalyis/internal/youtube"
)

type fakeProvider struct {
	uploadsID  string
	uploadsErr error

	pages    [][]string
	payloads map[string]youtube.VideoPayload

	listCalls     int
	listPageSizes []int64
	failListCall  int // 1-based list call that fails; 0 = never
}

func (f *fakeProvider) FetchChannel(ctx context.Context, idOrUsername string) (*youtube.ChannelPayload, error) {
	return nil, errors.New("not used")
}

func (f *fakeProvider) FetchUploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	if f.uploadsErr != nil {
		return "", f.uploadsErr
	}
	return f.uploadsID, nil
}

func (f *fakeProvider) ListPlaylistItems(ctx context.Context, playlistID string, pageSize int64, pageToken string) ([]string, string, error) {
	f.listCalls++
	f.listPageSizes = append(f.listPageSizes, pageSize)
	if f.failListCall > 0 && f.listCalls >= f.failListCall {
		return nil, "", fmt.Errorf("youtube: api request failed: %w", errors.New("connection reset"))
	}

	page := f.listCalls - 1
	if page >= len(f.pages) {
		return nil, "", nil
	}
	next := ""
	if page+1 < len(f.pages) {
		next = fmt.Sprintf("token-%d", page+1)
	}
	return f.pages[page], next, nil
}

func (f *fakeProvider) FetchVideosBatch(ctx context.Context, videoIDs []string) ([]youtube.VideoPayload, error) {
	var out []youtube.VideoPayload
	for _, id := range videoIDs {
		if p, ok := f.payloads[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeChannelStore struct {
	category string
	channels map[string]model.Channel
}

func (f *fakeChannelStore) UpsertWithStats(ctx context.Context, ch model.Channel, cs model.ChannelStats) error {
	if f.channels == nil {
		f.channels = make(map[string]model.Channel)
	}
	f.channels[ch.ChannelID] = ch
	return nil
}

func (f *fakeChannelStore) CategoryOf(ctx context.Context, channelID string) (string, error) {
	return f.category, nil
}

type fakeVideoStore struct {
	videos  map[string]model.Video
	stats   map[string]model.VideoStats
	upserts int
	failErr error
}

func (f *fakeVideoStore) UpsertWithStats(ctx context.Context, v model.Video, vs model.VideoStats) error {
	if f.failErr != nil {
		return f.failErr
	}
	if f.videos == nil {
		f.videos = make(map[string]model.Video)
		f.stats = make(map[string]model.VideoStats)
	}
	f.upserts++
	if existing, ok := f.videos[v.VideoID]; ok {
		// channel_id is immutable once set, matching the SQL upsert
		v.ChannelID = existing.ChannelID
	}
	f.videos[v.VideoID] = v
	f.stats[vs.VideoID] = vs
	return nil
}

func shortPayload(id string, seconds int) youtube.VideoPayload {
	return videoPayload(id, fmt.Sprintf("PT%dS", seconds))
}

func videoPayload(id, rawDuration string) youtube.VideoPayload {
	return youtube.VideoPayload{
		ID:          id,
		Title:       "title " + id,
		ChannelID:   "UCchannel",
		RawDuration: rawDuration,
		ViewCount:   100,
	}
}

func TestScrapeChannelVideos_FiltersByRecomputedDuration(t *testing.T) {
	provider := &fakeProvider{
		uploadsID: "UU123",
		pages:     [][]string{{"a", "b", "c", "d"}},
		payloads: map[string]youtube.VideoPayload{
			"a": shortPayload("a", 30),
			"b": shortPayload("b", 90),
			"c": shortPayload("c", 45),
			"d": shortPayload("d", 120),
		},
	}
	videos := &fakeVideoStore{}
	svc := NewScrapeService(provider, &fakeChannelStore{category: "Tech"}, videos, nil)

	scraped, err := svc.ScrapeChannelVideos(context.Background(), "UCchannel", model.FormatShorts, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scraped != 2 {
		t.Errorf("scraped = %d, want 2", scraped)
	}
	for _, id := range []string{"a", "c"} {
		if _, ok := videos.videos[id]; !ok {
			t.Errorf("short %q not ingested", id)
		}
	}
	for _, id := range []string{"b", "d"} {
		if _, ok := videos.videos[id]; ok {
			t.Errorf("long video %q must not be ingested for shorts walk", id)
		}
	}
}

func TestScrapeChannelVideos_PageBound(t *testing.T) {
	provider := &fakeProvider{
		uploadsID: "UU123",
		pages:     [][]string{{"a"}, {"b"}, {"c"}, {"d"}},
		payloads: map[string]youtube.VideoPayload{
			"a": shortPayload("a", 10), "b": shortPayload("b", 20),
			"c": shortPayload("c", 30), "d": shortPayload("d", 40),
		},
	}
	svc := NewScrapeService(provider, &fakeChannelStore{category: "Tech"}, &fakeVideoStore{}, nil)

	scraped, err := svc.ScrapeChannelVideos(context.Background(), "UCchannel", model.FormatShorts, 2, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.listCalls != 2 {
		t.Errorf("listing calls = %d, want 2 (maxPages bound)", provider.listCalls)
	}
	if scraped != 2 {
		t.Errorf("scraped = %d, want 2", scraped)
	}
	for _, size := range provider.listPageSizes {
		if size != 10 {
			t.Errorf("requested page size = %d, want 10", size)
		}
	}
}

func TestScrapeChannelVideos_PageSizeClampedToProviderMax(t *testing.T) {
	provider := &fakeProvider{
		uploadsID: "UU123",
		pages:     [][]string{{"a"}},
		payloads:  map[string]youtube.VideoPayload{"a": shortPayload("a", 10)},
	}
	svc := NewScrapeService(provider, &fakeChannelStore{category: "Tech"}, &fakeVideoStore{}, nil)

	if _, err := svc.ScrapeChannelVideos(context.Background(), "UCchannel", model.FormatShorts, 1, 500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := provider.listPageSizes[0]; got != 50 {
		t.Errorf("page size = %d, want clamp to 50", got)
	}
}

func TestScrapeChannelVideos_StopsOnEmptyPage(t *testing.T) {
	provider := &fakeProvider{
		uploadsID: "UU123",
		pages:     nil,
	}
	svc := NewScrapeService(provider, &fakeChannelStore{category: "Tech"}, &fakeVideoStore{}, nil)

	scraped, err := svc.ScrapeChannelVideos(context.Background(), "UCchannel", model.FormatShorts, 5, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scraped != 0 {
		t.Errorf("scraped = %d, want 0", scraped)
	}
	if provider.listCalls != 1 {
		t.Errorf("listing calls = %d, want 1", provider.listCalls)
	}
}

func TestScrapeChannelVideos_PartialFailureKeepsCommittedVideos(t *testing.T) {
	provider := &fakeProvider{
		uploadsID: "UU123",
		pages:     [][]string{{"a", "b", "c"}, {"d"}},
		payloads: map[string]youtube.VideoPayload{
			"a": shortPayload("a", 10), "b": shortPayload("b", 20),
			"c": shortPayload("c", 30), "d": shortPayload("d", 40),
		},
		failListCall: 2,
	}
	videos := &fakeVideoStore{}
	svc := NewScrapeService(provider, &fakeChannelStore{category: "Tech"}, videos, nil)

	scraped, err := svc.ScrapeChannelVideos(context.Background(), "UCchannel", model.FormatShorts, 2, 10)
	if err == nil {
		t.Fatal("expected walk to fail on page 2")
	}
	if scraped != 3 {
		t.Errorf("best-effort count = %d, want 3", scraped)
	}
	if len(videos.videos) != 3 {
		t.Errorf("persisted videos = %d, want 3 (page 1 stays committed)", len(videos.videos))
	}
}

func TestScrapeChannelVideos_CategoryFallbackForUnknownChannel(t *testing.T) {
	provider := &fakeProvider{
		uploadsID: "UU123",
		pages:     [][]string{{"a"}},
		payloads:  map[string]youtube.VideoPayload{"a": shortPayload("a", 10)},
	}
	videos := &fakeVideoStore{}
	svc := NewScrapeService(provider, &fakeChannelStore{category: ""}, videos, nil)

	if _, err := svc.ScrapeChannelVideos(context.Background(), "UCunknown", model.FormatShorts, 1, 10); err != nil {
		t.Fatalf("walk must not be blocked by an unregistered channel: %v", err)
	}
	if got := videos.videos["a"].VideoCategory; got != FallbackCategory {
		t.Errorf("category = %q, want %q", got, FallbackCategory)
	}
}

func TestScrapeChannelVideos_ChannelNotFound(t *testing.T) {
	provider := &fakeProvider{
		uploadsErr: fmt.Errorf("%w: channel %q", youtube.ErrNotFound, "UCnope"),
	}
	svc := NewScrapeService(provider, &fakeChannelStore{}, &fakeVideoStore{}, nil)

	_, err := svc.ScrapeChannelVideos(context.Background(), "UCnope", model.FormatVideo, 1, 10)
	if !errors.Is(err, ErrChannelNotFound) {
		t.Errorf("err = %v, want ErrChannelNotFound", err)
	}
}

func TestScrapeChannelVideos_StoreFailureAborts(t *testing.T) {
	provider := &fakeProvider{
		uploadsID: "UU123",
		pages:     [][]string{{"a", "b"}},
		payloads: map[string]youtube.VideoPayload{
			"a": shortPayload("a", 10), "b": shortPayload("b", 20),
		},
	}
	storeFail := errors.New("store: upsert video: connection lost")
	svc := NewScrapeService(provider, &fakeChannelStore{category: "Tech"}, &fakeVideoStore{failErr: storeFail}, nil)

	_, err := svc.ScrapeChannelVideos(context.Background(), "UCchannel", model.FormatShorts, 1, 10)
	if !errors.Is(err, storeFail) {
		t.Errorf("err = %v, want store failure surfaced unchanged", err)
	}
}

func TestScrapeVideo_NotFound(t *testing.T) {
	provider := &fakeProvider{payloads: map[string]youtube.VideoPayload{}}
	svc := NewScrapeService(provider, &fakeChannelStore{}, &fakeVideoStore{}, nil)

	_, err := svc.ScrapeVideo(context.Background(), "missing", "Tech")
	if !errors.Is(err, youtube.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestScrapeVideo_SummaryAndClassification(t *testing.T) {
	provider := &fakeProvider{
		payloads: map[string]youtube.VideoPayload{
			"v1": videoPayload("v1", "PT1M30S"),
		},
	}
	svc := NewScrapeService(provider, &fakeChannelStore{}, &fakeVideoStore{}, nil)

	sum, err := svc.ScrapeVideo(context.Background(), "v1", "Music")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Duration != 90 {
		t.Errorf("duration = %d, want 90", sum.Duration)
	}
	if sum.Format != model.FormatVideo {
		t.Errorf("format = %q, want %q", sum.Format, model.FormatVideo)
	}
	if sum.ChannelID != "UCchannel" {
		t.Errorf("channelId = %q, want %q", sum.ChannelID, "UCchannel")
	}
}

func TestScrapeVideo_IdempotentReScrape(t *testing.T) {
	provider := &fakeProvider{
		payloads: map[string]youtube.VideoPayload{
			"v1": videoPayload("v1", "PT30S"),
		},
	}
	videos := &fakeVideoStore{}
	svc := NewScrapeService(provider, &fakeChannelStore{}, videos, nil)

	if _, err := svc.ScrapeVideo(context.Background(), "v1", "Music"); err != nil {
		t.Fatalf("first scrape: %v", err)
	}

	// Second scrape with a refreshed title and a payload claiming a
	// different owning channel.
	p := provider.payloads["v1"]
	p.Title = "updated title"
	p.ChannelID = "UCother"
	provider.payloads["v1"] = p

	if _, err := svc.ScrapeVideo(context.Background(), "v1", "Music"); err != nil {
		t.Fatalf("second scrape: %v", err)
	}

	if len(videos.videos) != 1 || len(videos.stats) != 1 {
		t.Fatalf("rows = %d/%d, want exactly one video and one stats row", len(videos.videos), len(videos.stats))
	}
	got := videos.videos["v1"]
	if got.VideoTitle != "updated title" {
		t.Errorf("title = %q, want second scrape's value", got.VideoTitle)
	}
	if got.ChannelID != "UCchannel" {
		t.Errorf("channelId = %q, want original %q (immutable after insert)", got.ChannelID, "UCchannel")
	}
}
