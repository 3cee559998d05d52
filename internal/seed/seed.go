package seed

import (
	"fmt"
	"log"

	"plantify/internal/models"

	"gorm.io/gorm"
)

// Seeder populates the database with demo users, posts, and engagement.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder with the given options.
func NewSeeder(db *gorm.DB, opts SeedOptions) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts)}
}

// ClearAll removes all seeded data. Order matters because of foreign keys.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{
		&models.Like{},
		&models.Comment{},
		&models.Post{},
		&models.User{},
	} {
		if err := s.db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	log.Println("Cleared all seeded data")
	return nil
}

// Run seeds userCount users each with up to postsPerUser posts, then
// spreads likes and comments across the posts.
func (s *Seeder) Run(userCount, postsPerUser int) error {
	users := make([]*models.User, 0, userCount)
	for i := 0; i < userCount; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}

	posts := make([]*models.Post, 0, userCount*postsPerUser)
	for _, user := range users {
		n := s.factory.rng.Intn(postsPerUser) + 1
		for i := 0; i < n; i++ {
			post, err := s.factory.CreatePost(user)
			if err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
			posts = append(posts, post)
		}
	}

	if err := s.seedEngagement(users, posts); err != nil {
		return err
	}

	log.Printf("Seeded %d users and %d posts", len(users), len(posts))
	return nil
}

// seedEngagement adds likes and comments from random users to random posts.
func (s *Seeder) seedEngagement(users []*models.User, posts []*models.Post) error {
	if len(users) == 0 || len(posts) == 0 {
		return nil
	}
	rng := s.factory.rng

	for _, post := range posts {
		likers := rng.Intn(len(users) + 1)
		for i := 0; i < likers; i++ {
			user := users[rng.Intn(len(users))]
			if _, err := s.factory.CreateLike(user, post); err != nil {
				return fmt.Errorf("seed like: %w", err)
			}
		}

		commenters := rng.Intn(4)
		for i := 0; i < commenters; i++ {
			user := users[rng.Intn(len(users))]
			if _, err := s.factory.CreateComment(user, post); err != nil {
				return fmt.Errorf("seed comment: %w", err)
			}
		}
	}
	return nil
}
