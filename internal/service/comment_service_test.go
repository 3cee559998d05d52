package service

import (
	"context"
	"strings"
	"testing"

	"plantify/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCommentService_CreateComment_Blank(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	created := 0
	commentRepo.createFn = func(_ context.Context, _ *models.Comment) error {
		created++
		return nil
	}

	svc := NewCommentService(commentRepo, noopPostRepo())

	for _, content := range []string{"", "   ", "\n\t "} {
		_, err := svc.CreateComment(context.Background(), CreateCommentInput{
			UserID: 1, PostID: 1, Content: content,
		})
		assertValidationError(t, err)
	}
	assert.Zero(t, created, "blank comments must never reach the store")
}

func TestCommentService_CreateComment_TooLong(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo(), noopPostRepo())
	_, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID: 1, PostID: 1, Content: strings.Repeat("x", maxCommentLength+1),
	})
	assertValidationError(t, err)
}

func TestCommentService_CreateComment_PostMissing(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewCommentService(noopCommentRepo(), postRepo)
	_, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID: 1, PostID: 99, Content: "hello",
	})
	assertNotFoundError(t, err)
}

func TestCommentService_CreateComment_Success(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 11
		return nil
	}
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{
			ID: id, PostID: 1, Content: "Gorgeous variegation",
			User: models.User{Username: "kai", AvatarURL: "https://example.com/kai.png"},
		}, nil
	}

	svc := NewCommentService(commentRepo, noopPostRepo())
	view, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID: 1, PostID: 1, Content: "  Gorgeous variegation  ",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(11), view.ID)
	assert.Equal(t, "kai", view.Username)
	assert.Equal(t, "Gorgeous variegation", view.Content)
}

func TestCommentService_ListComments_AuthorFallbacks(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.listByPostFn = func(_ context.Context, postID uint) ([]*models.Comment, error) {
		return []*models.Comment{{ID: 1, PostID: postID, Content: "hi"}}, nil
	}

	svc := NewCommentService(commentRepo, noopPostRepo())
	views, err := svc.ListComments(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, DefaultUsername, views[0].Username)
	assert.Equal(t, DefaultAvatar, views[0].Avatar)
}

func TestCommentService_ListRecent_DefaultLimit(t *testing.T) {
	t.Parallel()

	var gotLimit int
	commentRepo := noopCommentRepo()
	commentRepo.listRecentByPostFn = func(_ context.Context, _ uint, limit int) ([]*models.Comment, error) {
		gotLimit = limit
		return nil, nil
	}

	svc := NewCommentService(commentRepo, noopPostRepo())
	views, err := svc.ListRecent(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, gotLimit)
	assert.NotNil(t, views)
}
