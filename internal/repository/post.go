package repository

import (
	"context"

	"plantify/internal/cache"
	"plantify/internal/models"

	"gorm.io/gorm"
)

// Counts holds engagement totals for a single post.
type Counts struct {
	Likes    int64
	Comments int64
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	CountLikes(ctx context.Context, postID uint) (int64, error)
	CountComments(ctx context.Context, postID uint) (int64, error)
	CountsForPosts(ctx context.Context, postIDs []uint) (map[uint]Counts, error)
	UpdateImageBySource(ctx context.Context, oldImage, newImage string) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Create(post).Error
	if err == nil {
		cache.InvalidateFeed(ctx)
	}
	return err
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns all posts, newest first. The feed has no pagination.
func (r *postRepository) List(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) CountLikes(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (r *postRepository) CountComments(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

// CountsForPosts returns like and comment totals for the given posts in
// two grouped queries. Posts without engagement get a zero entry.
func (r *postRepository) CountsForPosts(ctx context.Context, postIDs []uint) (map[uint]Counts, error) {
	result := make(map[uint]Counts, len(postIDs))
	for _, id := range postIDs {
		result[id] = Counts{}
	}
	if len(postIDs) == 0 {
		return result, nil
	}

	type row struct {
		PostID uint
		Total  int64
	}

	var likeRows []row
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&likeRows).Error
	if err != nil {
		return nil, err
	}
	for _, lr := range likeRows {
		c := result[lr.PostID]
		c.Likes = lr.Total
		result[lr.PostID] = c
	}

	var commentRows []row
	err = r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&commentRows).Error
	if err != nil {
		return nil, err
	}
	for _, cr := range commentRows {
		c := result[cr.PostID]
		c.Comments = cr.Total
		result[cr.PostID] = c
	}

	return result, nil
}

// UpdateImageBySource rewrites the image URL of every post whose image
// still points at oldImage. Returns the number of rows updated.
func (r *postRepository) UpdateImageBySource(ctx context.Context, oldImage, newImage string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("plant_image = ?", oldImage).
		Update("plant_image", newImage)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		cache.InvalidateFeed(ctx)
	}
	return res.RowsAffected, nil
}
