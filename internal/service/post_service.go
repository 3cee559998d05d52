package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"plantify/internal/middleware"
	"plantify/internal/models"
	"plantify/internal/observability"
	"plantify/internal/repository"
	"plantify/internal/storage"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// maxUploadSize is the largest accepted image payload.
const maxUploadSize = 5 << 20

// PostDetail is a single post with its full comment thread.
type PostDetail struct {
	Post          FeedItem      `json:"post"`
	Comments      []CommentView `json:"comments"`
	CommentsCount int           `json:"commentsCount"`
}

type CreatePostInput struct {
	UserID      uint
	PlantName   string
	Description string
	Filename    string
	ContentType string
	Content     []byte
}

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	comments repository.CommentRepository
	store    storage.Store
	now      func() time.Time
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	comments repository.CommentRepository,
	store storage.Store,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		comments: comments,
		store:    store,
		now:      time.Now,
	}
}

// GetPostDetail loads one post together with all its comments. The
// comment list is always non-nil so an empty thread renders as an
// explicit empty state.
func (s *PostService) GetPostDetail(ctx context.Context, postID uint) (*PostDetail, error) {
	span, ctx := observability.NewSpan(ctx, "post.detail")
	defer span.End()

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		span.SetError(err)
		return nil, models.NewInternalError(err)
	}

	var likes int64
	comments := []CommentView{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.postRepo.CountLikes(gctx, postID)
		if err != nil {
			middleware.Logger.WarnContext(gctx, "Like count failed",
				slog.Uint64("post_id", uint64(postID)),
				slog.String("error", err.Error()),
			)
			return nil
		}
		likes = count
		return nil
	})
	g.Go(func() error {
		rows, err := s.comments.ListByPost(gctx, postID)
		if err != nil {
			return err
		}
		for _, c := range rows {
			comments = append(comments, newCommentView(c))
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		span.SetError(err)
		return nil, models.NewInternalError(err)
	}

	return &PostDetail{
		Post:          newFeedItem(post, likes, int64(len(comments))),
		Comments:      comments,
		CommentsCount: len(comments),
	}, nil
}

// CreatePost validates and uploads the image, then inserts the post with
// a snapshot of the author's profile. Validation failures happen before
// anything is uploaded.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	span, ctx := observability.NewSpan(ctx, "post.create")
	defer span.End()

	if in.UserID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	if strings.TrimSpace(in.PlantName) == "" {
		return nil, models.NewValidationError("Plant name is required")
	}
	if len(in.Content) == 0 {
		return nil, models.NewValidationError("An image is required")
	}
	if !strings.HasPrefix(in.ContentType, "image/") {
		observability.ImageUploads.WithLabelValues("rejected").Inc()
		return nil, models.NewValidationError("File must be an image")
	}
	if len(in.Content) > maxUploadSize {
		observability.ImageUploads.WithLabelValues("rejected").Inc()
		return nil, models.NewValidationError("Image must be 5MB or smaller")
	}

	ext := strings.TrimPrefix(filepath.Ext(in.Filename), ".")
	if ext == "" {
		ext = "jpg"
	}
	key := fmt.Sprintf("%d/%d.%s", in.UserID, s.now().UnixMilli(), ext)

	imageURL, err := s.store.Upload(ctx, key, in.Content, in.ContentType, false)
	if err != nil {
		observability.ImageUploads.WithLabelValues("failed").Inc()
		span.SetError(err)
		return nil, models.NewInternalError(err)
	}
	observability.ImageUploads.WithLabelValues("accepted").Inc()

	username, avatar, verified := s.profileSnapshot(ctx, in.UserID)

	var description *string
	if trimmed := strings.TrimSpace(in.Description); trimmed != "" {
		description = &trimmed
	}

	post := &models.Post{
		UserID:      in.UserID,
		Username:    username,
		UserAvatar:  avatar,
		PlantName:   strings.TrimSpace(in.PlantName),
		PlantImage:  imageURL,
		Description: description,
		IsVerified:  verified,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		span.SetError(err)
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

// profileSnapshot resolves the display name, avatar and verification
// flag to stamp onto a new post. A missing profile falls back to
// defaults rather than failing the creation.
func (s *PostService) profileSnapshot(ctx context.Context, userID uint) (string, string, bool) {
	username := DefaultUsername
	avatar := fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%d", userID)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "Profile lookup failed, using defaults",
			slog.Uint64("user_id", uint64(userID)),
			slog.String("error", err.Error()),
		)
		return username, avatar, false
	}

	switch {
	case user.Username != "":
		username = user.Username
	case user.Email != "":
		username = strings.SplitN(user.Email, "@", 2)[0]
	}
	if user.AvatarURL != "" {
		avatar = user.AvatarURL
	}
	return username, avatar, user.IsVerified
}
