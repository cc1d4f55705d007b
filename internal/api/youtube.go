package api

import (
	"context"
	"fmt"
	"log"
	"sort"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/yt-trendscout/internal/config"
	"github.com/yt-trendscout/internal/models"
)

// YouTube Data API v3 limit on items per list request.
const maxResultsPerRequest = 50

// Quota budget enforced by the client-side rate limiter.
const maxRequestsPerMinute = 100

// Client wraps the YouTube Data API for the analysis pipeline. Fetch
// failures surface as errors to the caller; the pipeline treats empty
// result lists as "nothing found" and keeps going.
type Client struct {
	service *youtube.Service
	limiter *RateLimiter
}

// NewClient creates a YouTube Data API client using the given API key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, config.ErrMissingAPIKey
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %v", err)
	}

	return &Client{
		service: service,
		limiter: NewRateLimiter(maxRequestsPerMinute),
	}, nil
}

// SearchChannels searches for channels matching a query and returns partial
// channel records (no statistics yet).
func (c *Client) SearchChannels(ctx context.Context, query string, maxResults int64) ([]models.Channel, error) {
	c.limiter.Wait()

	call := c.service.Search.List([]string{"id", "snippet"}).
		Q(query).
		Type("channel").
		MaxResults(min(maxResults, maxResultsPerRequest)).
		Order("relevance").
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("channel search failed for %q: %v", query, err)
	}

	channels := make([]models.Channel, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id == nil || item.Snippet == nil {
			continue
		}
		channels = append(channels, models.Channel{
			ID:          item.Id.ChannelId,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			PublishedAt: item.Snippet.PublishedAt,
			Thumbnail:   defaultThumbnail(item.Snippet.Thumbnails),
		})
	}
	return channels, nil
}

// GetChannelStatistics fetches full statistics for the given channel IDs,
// batching requests at the API's 50-ID limit.
func (c *Client) GetChannelStatistics(ctx context.Context, channelIDs []string) ([]models.Channel, error) {
	var channels []models.Channel

	for i := 0; i < len(channelIDs); i += maxResultsPerRequest {
		end := min(int64(i+maxResultsPerRequest), int64(len(channelIDs)))
		batch := channelIDs[i:end]

		c.limiter.Wait()
		call := c.service.Channels.List([]string{"snippet", "statistics"}).
			Id(batch...).
			Context(ctx)

		response, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("channel statistics fetch failed: %v", err)
		}

		for _, item := range response.Items {
			if item.Snippet == nil || item.Statistics == nil {
				continue
			}
			channels = append(channels, models.Channel{
				ID:          item.Id,
				Title:       item.Snippet.Title,
				Description: item.Snippet.Description,
				PublishedAt: item.Snippet.PublishedAt,
				Subscribers: int64(item.Statistics.SubscriberCount),
				VideoCount:  int64(item.Statistics.VideoCount),
				ViewCount:   int64(item.Statistics.ViewCount),
				Country:     item.Snippet.Country,
				CustomURL:   item.Snippet.CustomUrl,
				Thumbnail:   defaultThumbnail(item.Snippet.Thumbnails),
			})
		}
	}
	return channels, nil
}

// GetChannelVideos fetches up to maxResults recent uploads for a channel by
// walking its uploads playlist.
func (c *Client) GetChannelVideos(ctx context.Context, channelID string, maxResults int64) ([]models.Video, error) {
	c.limiter.Wait()

	channelCall := c.service.Channels.List([]string{"contentDetails"}).
		Id(channelID).
		Context(ctx)
	channelResponse, err := channelCall.Do()
	if err != nil {
		return nil, fmt.Errorf("channel lookup failed for %s: %v", channelID, err)
	}
	if len(channelResponse.Items) == 0 {
		return nil, nil
	}

	item := channelResponse.Items[0]
	if item.ContentDetails == nil || item.ContentDetails.RelatedPlaylists == nil {
		return nil, nil
	}
	uploadsPlaylistID := item.ContentDetails.RelatedPlaylists.Uploads
	if uploadsPlaylistID == "" {
		return nil, nil
	}

	var videos []models.Video
	nextPageToken := ""
	for int64(len(videos)) < maxResults {
		c.limiter.Wait()

		playlistCall := c.service.PlaylistItems.List([]string{"snippet"}).
			PlaylistId(uploadsPlaylistID).
			MaxResults(min(maxResultsPerRequest, maxResults-int64(len(videos)))).
			Context(ctx)
		if nextPageToken != "" {
			playlistCall = playlistCall.PageToken(nextPageToken)
		}

		playlistResponse, err := playlistCall.Do()
		if err != nil {
			return nil, fmt.Errorf("playlist fetch failed for %s: %v", channelID, err)
		}

		var videoIDs []string
		for _, item := range playlistResponse.Items {
			if item.Snippet != nil && item.Snippet.ResourceId != nil {
				videoIDs = append(videoIDs, item.Snippet.ResourceId.VideoId)
			}
		}

		details, err := c.GetVideoDetails(ctx, videoIDs)
		if err != nil {
			return nil, err
		}
		videos = append(videos, details...)

		nextPageToken = playlistResponse.NextPageToken
		if nextPageToken == "" {
			break
		}
	}

	if int64(len(videos)) > maxResults {
		videos = videos[:maxResults]
	}
	return videos, nil
}

// GetVideoDetails fetches full metadata and statistics for video IDs,
// batching at the API's 50-ID limit.
func (c *Client) GetVideoDetails(ctx context.Context, videoIDs []string) ([]models.Video, error) {
	var videos []models.Video

	for i := 0; i < len(videoIDs); i += maxResultsPerRequest {
		end := min(int64(i+maxResultsPerRequest), int64(len(videoIDs)))
		batch := videoIDs[i:end]
		if len(batch) == 0 {
			break
		}

		c.limiter.Wait()
		call := c.service.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
			Id(batch...).
			Context(ctx)

		response, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("video details fetch failed: %v", err)
		}

		for _, item := range response.Items {
			if item.Snippet == nil || item.Statistics == nil || item.ContentDetails == nil {
				continue
			}
			videos = append(videos, models.Video{
				ID:           item.Id,
				Title:        item.Snippet.Title,
				Description:  item.Snippet.Description,
				ChannelID:    item.Snippet.ChannelId,
				ChannelTitle: item.Snippet.ChannelTitle,
				PublishedAt:  item.Snippet.PublishedAt,
				ViewCount:    int64(item.Statistics.ViewCount),
				LikeCount:    int64(item.Statistics.LikeCount),
				CommentCount: int64(item.Statistics.CommentCount),
				Duration:     item.ContentDetails.Duration,
				Tags:         item.Snippet.Tags,
				Thumbnail:    bestThumbnail(item.Snippet.Thumbnails),
				URL:          "https://www.youtube.com/watch?v=" + item.Id,
			})
		}
	}
	return videos, nil
}

// SearchVideos searches for videos matching a query and returns full
// records.
func (c *Client) SearchVideos(ctx context.Context, query string, maxResults int64) ([]models.Video, error) {
	c.limiter.Wait()

	call := c.service.Search.List([]string{"id", "snippet"}).
		Q(query).
		Type("video").
		MaxResults(min(maxResults, maxResultsPerRequest)).
		Order("relevance").
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("video search failed for %q: %v", query, err)
	}

	var videoIDs []string
	for _, item := range response.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			videoIDs = append(videoIDs, item.Id.VideoId)
		}
	}
	return c.GetVideoDetails(ctx, videoIDs)
}

// GetTrendingVideos spreads the configured search keywords across a video
// search, deduplicates by video ID, drops videos under minViews and returns
// the top maxResults by view count.
func (c *Client) GetTrendingVideos(ctx context.Context, maxResults, minViews int64) ([]models.Video, error) {
	perKeyword := maxResults / int64(len(config.SearchKeywords))
	if perKeyword < 1 {
		perKeyword = 1
	}

	var all []models.Video
	for _, keyword := range config.SearchKeywords {
		videos, err := c.SearchVideos(ctx, keyword, perKeyword)
		if err != nil {
			log.Printf("Search for %q failed, continuing: %v", keyword, err)
			continue
		}
		all = append(all, videos...)
	}

	seen := make(map[string]bool, len(all))
	filtered := make([]models.Video, 0, len(all))
	for _, v := range all {
		if seen[v.ID] || v.ViewCount < minViews {
			continue
		}
		seen[v.ID] = true
		filtered = append(filtered, v)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].ViewCount > filtered[j].ViewCount
	})
	if int64(len(filtered)) > maxResults {
		filtered = filtered[:maxResults]
	}
	return filtered, nil
}

// defaultThumbnail returns the default-resolution thumbnail URL if present.
func defaultThumbnail(details *youtube.ThumbnailDetails) string {
	if details == nil || details.Default == nil {
		return ""
	}
	return details.Default.Url
}

// bestThumbnail prefers the highest-resolution thumbnail available.
func bestThumbnail(details *youtube.ThumbnailDetails) string {
	if details == nil {
		return ""
	}
	for _, t := range []*youtube.Thumbnail{details.Maxres, details.High, details.Medium, details.Default} {
		if t != nil && t.Url != "" {
			return t.Url
		}
	}
	return ""
}
