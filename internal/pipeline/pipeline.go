package pipeline

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/yt-trendscout/internal/analysis"
	"github.com/yt-trendscout/internal/config"
	"github.com/yt-trendscout/internal/generator"
	"github.com/yt-trendscout/internal/models"
)

// ErrNoInfluencers is returned when discovery turns up no channel passing
// the relevance gate and subscriber threshold. Callers decide whether that
// is fatal; the CLI exits non-zero.
var ErrNoInfluencers = errors.New("no AI influencers found")

// Source is the data-source capability the pipeline consumes. The YouTube
// client implements it; tests substitute a fake.
type Source interface {
	SearchChannels(ctx context.Context, query string, maxResults int64) ([]models.Channel, error)
	GetChannelStatistics(ctx context.Context, channelIDs []string) ([]models.Channel, error)
	GetChannelVideos(ctx context.Context, channelID string, maxResults int64) ([]models.Video, error)
	SearchVideos(ctx context.Context, query string, maxResults int64) ([]models.Video, error)
}

// Options bound a single analysis run.
type Options struct {
	InfluencerLimit int
	NumIdeas        int
	NumScripts      int
}

// DefaultOptions match a full analysis run.
var DefaultOptions = Options{
	InfluencerLimit: 20,
	NumIdeas:        50,
	NumScripts:      25,
}

// Result holds everything one analysis run produced.
type Result struct {
	RunID       string               `json:"runId"`
	Influencers []models.Channel     `json:"influencers"`
	Videos      []models.Video       `json:"videos"`
	Topics      models.TrendTable    `json:"trendingTopics"`
	Hashtags    []string             `json:"hashtags"`
	Ideas       []models.ContentIdea `json:"contentIdeas"`
	Scripts     []models.VideoScript `json:"scripts"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// Pipeline runs the full analysis: discover influencers, score their
// videos, extract trends, generate ideas and scripts.
type Pipeline struct {
	source Source
	cfg    *config.Config
	rng    *rand.Rand
	now    func() time.Time
}

// New creates a pipeline over the given data source. The random source
// feeds the content generator; seed it for reproducible runs.
func New(source Source, cfg *config.Config, rng *rand.Rand) *Pipeline {
	return &Pipeline{
		source: source,
		cfg:    cfg,
		rng:    rng,
		now:    time.Now,
	}
}

// FindInfluencers discovers channels across the configured search keywords
// and ranks them by the composite influencer score. Failed searches are
// logged and skipped, not fatal.
func (p *Pipeline) FindInfluencers(ctx context.Context, limit int) ([]models.Channel, error) {
	var candidates []models.Channel
	for _, keyword := range config.SearchKeywords {
		log.Printf("Searching for channels with keyword: %s", keyword)
		channels, err := p.source.SearchChannels(ctx, keyword, 20)
		if err != nil {
			log.Printf("Channel search for %q failed, continuing: %v", keyword, err)
			continue
		}
		candidates = append(candidates, channels...)
	}

	unique := analysis.DedupeChannels(candidates)
	log.Printf("Found %d unique channels", len(unique))

	ids := make([]string, 0, len(unique))
	for _, ch := range unique {
		ids = append(ids, ch.ID)
	}

	stats, err := p.source.GetChannelStatistics(ctx, ids)
	if err != nil {
		return nil, err
	}

	influencers := analysis.RankInfluencers(stats, p.cfg.MinSubscriberCount, limit, p.now())
	log.Printf("Found %d top AI influencers", len(influencers))
	return influencers, nil
}

// AnalyzeVideos fetches recent uploads for each influencer, enriches them
// with engagement and performance scores and returns the high performers
// sorted by performance.
func (p *Pipeline) AnalyzeVideos(ctx context.Context, influencers []models.Channel) []models.Video {
	var all []models.Video
	now := p.now()
	for i, influencer := range influencers {
		log.Printf("Analyzing videos from %s (%d/%d)", influencer.Title, i+1, len(influencers))
		videos, err := p.source.GetChannelVideos(ctx, influencer.ID, p.cfg.MaxVideosPerChannel)
		if err != nil {
			log.Printf("Video fetch for %s failed, continuing: %v", influencer.ID, err)
			continue
		}
		all = append(all, analysis.EnrichVideos(videos, influencer, now)...)
	}

	ranked := analysis.RankVideos(all, p.cfg.MinViewCount)
	log.Printf("Analyzed %d total videos, %d high-performing", len(all), len(ranked))
	return ranked
}

// Run executes the whole pipeline and returns its result. The only fatal
// condition is finding no influencers at all.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Result, error) {
	influencers, err := p.FindInfluencers(ctx, opts.InfluencerLimit)
	if err != nil {
		return nil, err
	}
	if len(influencers) == 0 {
		return nil, ErrNoInfluencers
	}

	videos := p.AnalyzeVideos(ctx, influencers)

	topics := analysis.ExtractTopics(videos)
	hashtags := analysis.ExtractHashtags(videos, p.cfg.MinViewCount)
	log.Printf("Found %d trending topics, %d hashtags", len(topics), len(hashtags))

	gen := generator.New(p.rng)
	ideas := gen.GenerateIdeas(topics, hashtags, opts.NumIdeas)
	scripts := gen.GenerateScripts(ideas, opts.NumScripts)
	log.Printf("Generated %d content ideas, %d scripts", len(ideas), len(scripts))

	return &Result{
		RunID:       uuid.NewString(),
		Influencers: influencers,
		Videos:      videos,
		Topics:      topics,
		Hashtags:    hashtags,
		Ideas:       ideas,
		Scripts:     scripts,
		CreatedAt:   p.now(),
	}, nil
}
