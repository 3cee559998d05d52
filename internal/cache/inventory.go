package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix = "user:%d"
	PostKeyPrefix = "post:%d"
	FeedKeyName   = "feed:all"
)

const (
	UserTTL = 5 * time.Minute
	PostTTL = 10 * time.Minute
	// FeedTTL stays short: cached counts may lag the store until the
	// next refetch, and a short window bounds that staleness.
	FeedTTL = 30 * time.Second
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func FeedKey() string {
	return FeedKeyName
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
	InvalidateFeed(ctx)
}

func InvalidateFeed(ctx context.Context) {
	Invalidate(ctx, FeedKey())
}
