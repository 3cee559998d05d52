// Command main runs the database seeder for Plantify.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	"plantify/internal/config"
	"plantify/internal/database"
	"plantify/internal/repository"
	"plantify/internal/seed"
	"plantify/internal/storage"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	postsPerUser := flag.Int("posts", 3, "Maximum posts per user")
	shouldClean := flag.Bool("clean", false, "Clean database before seeding")
	demoImages := flag.Bool("demo-images", false, "Mirror demo stock photos into storage and relink posts")
	dryRun := flag.Bool("dry-run", false, "Build entities without writing to the database")
	flag.Parse()

	log.Println("Plantify seeder")
	log.Printf("Target: %d users, up to %d posts each, clean=%v, demo-images=%v\n",
		*numUsers, *postsPerUser, *shouldClean, *demoImages)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seeder := seed.NewSeeder(database.DB, seed.SeedOptions{
		DryRun:     *dryRun,
		SkipBcrypt: true,
		MaxDays:    90,
	})

	if *shouldClean && !*dryRun {
		if err := seeder.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := seeder.Run(*numUsers, *postsPerUser); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	if *demoImages {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		store := storage.NewDiskStore(cfg.StorageDir, cfg.StorageBaseURL)
		posts := repository.NewPostRepository(database.DB)
		results, err := seed.RefreshDemoImages(ctx, posts, store, http.DefaultClient, seed.DemoImages)
		if err != nil {
			log.Fatalf("Demo image refresh failed: %v", err)
		}
		for _, r := range results {
			log.Printf("  %s -> %s (%d posts relinked)", r.Name, r.PublicURL, r.PostsUpdated)
		}
	}

	log.Println("Done")
}
