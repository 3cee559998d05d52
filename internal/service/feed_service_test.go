package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"plantify/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestFeedService_ListFeed(t *testing.T) {
	t.Parallel()

	now := time.Now()
	postRepo := noopPostRepo()
	postRepo.listFn = func(_ context.Context) ([]*models.Post, error) {
		return []*models.Post{
			{ID: 2, Username: "rosa", UserAvatar: "https://example.com/rosa.png", PlantName: "Monstera", PlantImage: "img2", Description: strPtr("new leaf!"), CreatedAt: now},
			{ID: 1, PlantName: "Pothos", PlantImage: "img1", CreatedAt: now.Add(-time.Hour)},
		}, nil
	}
	postRepo.countLikesFn = func(_ context.Context, postID uint) (int64, error) {
		return int64(postID * 10), nil
	}
	postRepo.countCommentsFn = func(_ context.Context, postID uint) (int64, error) {
		return int64(postID), nil
	}

	svc := NewFeedService(postRepo)
	items, err := svc.ListFeed(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, uint(2), items[0].ID, "repository order is preserved")
	assert.Equal(t, "rosa", items[0].Username)
	assert.Equal(t, int64(20), items[0].Likes)
	assert.Equal(t, int64(2), items[0].Comments)
	assert.Equal(t, "new leaf!", items[0].Description)

	assert.Equal(t, DefaultUsername, items[1].Username, "missing author name falls back")
	assert.Equal(t, DefaultAvatar, items[1].UserAvatar, "missing avatar falls back")
	assert.Equal(t, "", items[1].Description)
	assert.Equal(t, int64(0), items[1].Shares)
}

func TestFeedService_ListFeed_LikeCountFailureDegradesToZero(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.listFn = func(_ context.Context) ([]*models.Post, error) {
		return []*models.Post{{ID: 1, PlantName: "Fern"}}, nil
	}
	postRepo.countLikesFn = func(_ context.Context, _ uint) (int64, error) {
		return 0, errors.New("likes table unavailable")
	}
	postRepo.countCommentsFn = func(_ context.Context, _ uint) (int64, error) {
		return 4, nil
	}

	svc := NewFeedService(postRepo)
	items, err := svc.ListFeed(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(0), items[0].Likes)
	assert.Equal(t, int64(4), items[0].Comments)
}

func TestFeedService_ListFeed_CommentCountFailureFails(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.listFn = func(_ context.Context) ([]*models.Post, error) {
		return []*models.Post{{ID: 1, PlantName: "Fern"}}, nil
	}
	postRepo.countCommentsFn = func(_ context.Context, _ uint) (int64, error) {
		return 0, errors.New("comments table unavailable")
	}

	svc := NewFeedService(postRepo)
	_, err := svc.ListFeed(context.Background(), false)
	require.Error(t, err)
}

func TestFeedService_ListFeed_Empty(t *testing.T) {
	t.Parallel()

	svc := NewFeedService(noopPostRepo())
	items, err := svc.ListFeed(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, items)
}
