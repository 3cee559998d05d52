// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"plantify/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedOptions controls how the factory behaves.
type SeedOptions struct {
	// DryRun builds entities and assigns synthetic IDs without writing
	// to the database.
	DryRun bool
	// SkipBcrypt uses a fixed cheap hash instead of hashing every
	// seeded password. Large seeds are CPU-bound on bcrypt otherwise.
	SkipBcrypt bool
	// MaxDays is how far back seeded created_at timestamps spread.
	MaxDays int
}

// plantNames are realistic display names for seeded plant posts.
var plantNames = []string{
	"Monstera Deliciosa",
	"Golden Pothos",
	"Fiddle Leaf Fig",
	"Snake Plant",
	"Peace Lily",
	"String of Pearls",
	"Calathea Orbifolia",
	"Rubber Plant",
	"ZZ Plant",
	"Boston Fern",
	"Aloe Vera",
	"Pilea Peperomioides",
	"Philodendron Brasil",
	"Alocasia Polly",
	"Bird of Paradise",
}

var plantCaptions = []string{
	"New growth this week!",
	"Finally unfurled its first leaf.",
	"Repotted today, wish her luck.",
	"This one survived my vacation.",
	"Propagation station update.",
	"Morning light hits different.",
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts SeedOptions
	rng  *rand.Rand
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts SeedOptions) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:     db,
		opts:   opts,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		nextID: 1000,
	}
}

// CreateUser constructs and persists a sample models.User.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username:  gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:     gofakeit.Email(),
		AvatarURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	if f.opts.SkipBcrypt {
		user.Password = "$2a$04$seedseedseedseedseedseedseedseedseedseedseedseedseedse"
	} else {
		hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s (no DB write)", user.Username)
		return user, nil
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildPost constructs a post for the given author without persisting it.
func (f *Factory) BuildPost(user *models.User, overrides ...func(*models.Post)) *models.Post {
	caption := plantCaptions[f.rng.Intn(len(plantCaptions))]
	post := &models.Post{
		UserID:      user.ID,
		Username:    user.Username,
		UserAvatar:  user.AvatarURL,
		PlantName:   plantNames[f.rng.Intn(len(plantNames))],
		PlantImage:  fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
		Description: &caption,
		IsVerified:  f.rng.Intn(10) == 0,
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePost builds and persists a post for the given author.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := f.BuildPost(user, overrides...)
	if f.opts.DryRun {
		f.nextID++
		post.ID = f.nextID
		log.Printf("[dry-run] CreatePost: %s (no DB write)", post.PlantName)
		return post, nil
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a generated comment from user on post.
func (f *Factory) CreateComment(user *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content: gofakeit.Sentence(f.rng.Intn(8) + 3),
		UserID:  user.ID,
		PostID:  post.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if f.opts.DryRun {
		f.nextID++
		comment.ID = f.nextID
		return comment, nil
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like from user on post. Duplicate likes from the
// same user are skipped.
func (f *Factory) CreateLike(user *models.User, post *models.Post) (*models.Like, error) {
	like := &models.Like{
		UserID: user.ID,
		PostID: post.ID,
	}

	if f.opts.DryRun {
		f.nextID++
		like.ID = f.nextID
		return like, nil
	}

	var existing int64
	f.db.Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", user.ID, post.ID).
		Count(&existing)
	if existing > 0 {
		return nil, nil
	}

	if err := f.db.Create(like).Error; err != nil {
		return nil, err
	}
	return like, nil
}
