// Package service contains the application business logic.
package service

import (
	"context"
	"log/slog"
	"time"

	"plantify/internal/cache"
	"plantify/internal/middleware"
	"plantify/internal/models"
	"plantify/internal/observability"
	"plantify/internal/repository"

	"golang.org/x/sync/errgroup"
)

// Defaults applied when a post's author snapshot is missing a field.
const (
	DefaultUsername = "Anonymous"
	DefaultAvatar   = "https://api.dicebear.com/7.x/avataaars/svg?seed=default"
)

// FeedItem is one rendered entry of the feed.
type FeedItem struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	UserAvatar  string    `json:"userAvatar"`
	PlantName   string    `json:"plantName"`
	PlantImage  string    `json:"plantImage"`
	Likes       int64     `json:"likes"`
	Comments    int64     `json:"comments"`
	Shares      int64     `json:"shares"`
	Description string    `json:"description"`
	HasStory    bool      `json:"hasStory"`
	IsVerified  bool      `json:"isVerified"`
	IsFollowing bool      `json:"isFollowing"`
	CreatedAt   time.Time `json:"createdAt"`
}

type FeedService struct {
	postRepo repository.PostRepository
}

func NewFeedService(postRepo repository.PostRepository) *FeedService {
	return &FeedService{postRepo: postRepo}
}

// ListFeed returns all posts newest first with fresh engagement counts.
// The anonymous feed is served through the cache; a short TTL bounds
// how stale the counts can get.
func (s *FeedService) ListFeed(ctx context.Context, anonymous bool) ([]FeedItem, error) {
	span, ctx := observability.NewSpan(ctx, "feed.list")
	defer span.End()

	var items []FeedItem
	if anonymous {
		err := cache.Aside(ctx, cache.FeedKey(), &items, cache.FeedTTL, func() error {
			var buildErr error
			items, buildErr = s.buildFeed(ctx)
			return buildErr
		})
		if err != nil {
			span.SetError(err)
			return nil, err
		}
		return items, nil
	}

	items, err := s.buildFeed(ctx)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	return items, nil
}

// buildFeed fetches the post rows, then resolves each post's like and
// comment counts concurrently.
func (s *FeedService) buildFeed(ctx context.Context) ([]FeedItem, error) {
	start := time.Now()
	defer observability.ObserveFeedBuild(start)

	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	items := make([]FeedItem, len(posts))
	g, gctx := errgroup.WithContext(ctx)
	for i, post := range posts {
		g.Go(func() error {
			likes, err := s.postRepo.CountLikes(gctx, post.ID)
			if err != nil {
				// A failed like count degrades to zero instead of
				// failing the whole feed.
				middleware.Logger.WarnContext(gctx, "Like count failed",
					slog.Uint64("post_id", uint64(post.ID)),
					slog.String("error", err.Error()),
				)
				likes = 0
			}

			comments, err := s.postRepo.CountComments(gctx, post.ID)
			if err != nil {
				return err
			}

			items[i] = newFeedItem(post, likes, comments)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, models.NewInternalError(err)
	}

	return items, nil
}

func newFeedItem(post *models.Post, likes, comments int64) FeedItem {
	username := post.Username
	if username == "" {
		username = DefaultUsername
	}
	avatar := post.UserAvatar
	if avatar == "" {
		avatar = DefaultAvatar
	}
	description := ""
	if post.Description != nil {
		description = *post.Description
	}

	return FeedItem{
		ID:          post.ID,
		Username:    username,
		UserAvatar:  avatar,
		PlantName:   post.PlantName,
		PlantImage:  post.PlantImage,
		Likes:       likes,
		Comments:    comments,
		Shares:      0,
		Description: description,
		IsVerified:  post.IsVerified,
		CreatedAt:   post.CreatedAt,
	}
}
