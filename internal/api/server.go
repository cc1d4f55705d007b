package api

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yt-trendscout/internal/analysis"
	"github.com/yt-trendscout/internal/config"
	"github.com/yt-trendscout/internal/generator"
	"github.com/yt-trendscout/internal/models"
	"github.com/yt-trendscout/internal/pipeline"
)

// Server represents the API server
type Server struct {
	router *gin.Engine
	client *Client
	pipe   *pipeline.Pipeline
	db     *models.Database
	cfg    *config.Config
}

// NewServer creates a new API server. The database may be nil, in which
// case analysis runs are recomputed on every request instead of cached.
// Middleware must be passed here so it lands ahead of the routes.
func NewServer(cfg *config.Config, client *Client, db *models.Database, middleware ...gin.HandlerFunc) *Server {
	router := gin.Default()
	router.Use(middleware...)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	server := &Server{
		router: router,
		client: client,
		pipe:   pipeline.New(client, cfg, rng),
		db:     db,
		cfg:    cfg,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes for the server
func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// Channel endpoints
	s.router.GET("/channel/:id", s.getChannel)
	s.router.GET("/channel/:id/videos", s.getChannelVideos)

	// Discovery and trend endpoints
	s.router.GET("/videos/trending", s.getTrendingVideos)
	s.router.GET("/influencers", s.getInfluencers)

	// Analysis endpoints
	s.router.GET("/analysis/run", s.runAnalysis)
	s.router.GET("/ideas", s.getIdeas)
}

// getChannel returns full statistics for a single channel.
func (s *Server) getChannel(c *gin.Context) {
	channelID := c.Param("id")
	if channelID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Channel ID is required"})
		return
	}

	channels, err := s.client.GetChannelStatistics(c.Request.Context(), []string{channelID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(channels) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Channel not found"})
		return
	}
	c.JSON(http.StatusOK, channels[0])
}

// getChannelVideos returns recent uploads for a channel, enriched with
// engagement and performance scores.
func (s *Server) getChannelVideos(c *gin.Context) {
	channelID := c.Param("id")
	if channelID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Channel ID is required"})
		return
	}

	maxVideos := s.cfg.MaxVideosPerChannel
	if v := c.Query("maxVideos"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			maxVideos = n
		}
	}

	channels, err := s.client.GetChannelStatistics(c.Request.Context(), []string{channelID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(channels) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Channel not found"})
		return
	}

	videos, err := s.client.GetChannelVideos(c.Request.Context(), channelID, maxVideos)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	enriched := analysis.EnrichVideos(videos, channels[0], time.Now())
	c.JSON(http.StatusOK, analysis.RankVideos(enriched, 0))
}

// getTrendingVideos returns high-view videos across the configured search
// keywords.
func (s *Server) getTrendingVideos(c *gin.Context) {
	maxResults := int64(100)
	if v := c.Query("maxResults"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			maxResults = n
		}
	}

	videos, err := s.client.GetTrendingVideos(c.Request.Context(), maxResults, s.cfg.MinViewCount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, videos)
}

// getInfluencers discovers and ranks AI influencer channels.
func (s *Server) getInfluencers(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	influencers, err := s.pipe.FindInfluencers(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, influencers)
}

// runAnalysis executes the full pipeline. Same-day results are served from
// the run cache instead of hitting the YouTube API again.
func (s *Server) runAnalysis(c *gin.Context) {
	if cached := s.loadCachedRun(models.RunKindFull); cached != nil {
		var result pipeline.Result
		if err := json.Unmarshal(cached.JSONResponse, &result); err != nil {
			log.Printf("Failed to unmarshal cached run: %v", err)
		} else {
			log.Printf("Returning cached analysis run %s", result.RunID)
			c.JSON(http.StatusOK, result)
			return
		}
	}

	log.Printf("Running fresh analysis")
	result, err := s.pipe.Run(c.Request.Context(), pipeline.DefaultOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.storeRun(models.RunKindFull, result.RunID, result)
	c.JSON(http.StatusOK, result)
}

// getIdeas generates content ideas from the most recent cached analysis
// run's trend data.
func (s *Server) getIdeas(c *gin.Context) {
	count := 20
	if v := c.Query("count"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			count = n
		}
	}

	cached := s.loadCachedRun(models.RunKindFull)
	if cached == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No analysis run available; call /analysis/run first"})
		return
	}

	var result pipeline.Result
	if err := json.Unmarshal(cached.JSONResponse, &result); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read cached analysis run"})
		return
	}

	gen := generator.New(rand.New(rand.NewSource(time.Now().UnixNano())))
	ideas := gen.GenerateIdeas(result.Topics, result.Hashtags, count)
	c.JSON(http.StatusOK, ideas)
}

// loadCachedRun returns the latest stored run of a kind if it is from
// today, nil otherwise.
func (s *Server) loadCachedRun(kind models.RunKind) *models.AnalysisRun {
	if s.db == nil {
		return nil
	}

	run, err := s.db.GetLatestRun(kind)
	if err != nil {
		log.Printf("Error fetching cached run: %v", err)
		return nil
	}
	if run == nil {
		log.Printf("No cached %s run found", kind)
		return nil
	}
	if run.CreateDate.UTC().Format("2006-01-02") != time.Now().UTC().Format("2006-01-02") {
		log.Printf("Cached %s run is from a different day, fetching fresh data", kind)
		return nil
	}
	return run
}

// storeRun caches a run result; failures are logged, never fatal.
func (s *Server) storeRun(kind models.RunKind, runID string, payload interface{}) {
	if s.db == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshaling run data: %v", err)
		return
	}
	err = s.db.StoreRun(&models.AnalysisRun{
		RunID:        runID,
		Kind:         kind,
		JSONResponse: data,
	})
	if err != nil {
		log.Printf("Failed to store run data: %v", err)
	} else {
		log.Printf("Successfully stored %s run %s", kind, runID)
	}
}

// Start starts the server on the specified port
func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}
