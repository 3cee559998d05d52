package service

import (
	"context"
	"strings"
	"time"

	"plantify/internal/models"
	"plantify/internal/repository"
)

// maxCommentLength bounds a single comment's content.
const maxCommentLength = 10000

// CommentView is a comment rendered with its author's display fields.
type CommentView struct {
	ID        uint      `json:"id"`
	PostID    uint      `json:"postId"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

// CreateComment inserts a comment and returns it with the author
// preloaded. Blank content is rejected before any store access.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*CommentView, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Comment cannot be empty")
	}
	if len(content) > maxCommentLength {
		return nil, models.NewValidationError("Comment is too long")
	}
	if in.UserID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, models.NewNotFoundError("Post", in.PostID)
	}

	comment := &models.Comment{
		Content: content,
		UserID:  in.UserID,
		PostID:  in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}

	// Refetch to pick up the author association.
	created, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	view := newCommentView(created)
	return &view, nil
}

// ListComments returns the full thread for a post, newest first.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]CommentView, error) {
	rows, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	views := make([]CommentView, 0, len(rows))
	for _, c := range rows {
		views = append(views, newCommentView(c))
	}
	return views, nil
}

// ListRecent returns the newest comments of a post, capped at limit.
func (s *CommentService) ListRecent(ctx context.Context, postID uint, limit int) ([]CommentView, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := s.commentRepo.ListRecentByPost(ctx, postID, limit)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	views := make([]CommentView, 0, len(rows))
	for _, c := range rows {
		views = append(views, newCommentView(c))
	}
	return views, nil
}

func newCommentView(c *models.Comment) CommentView {
	username := c.User.Username
	if username == "" {
		username = DefaultUsername
	}
	avatar := c.User.AvatarURL
	if avatar == "" {
		avatar = DefaultAvatar
	}
	return CommentView{
		ID:        c.ID,
		PostID:    c.PostID,
		Username:  username,
		Avatar:    avatar,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}
