package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"

	"blog-service/config"
	"blog-service/db"
	"blog-service/models"
	"blog-service/repositories"
)

// Seeds generated posts into the configured store, for local dev and for the
// integration scenario of listing a known document count.
func main() {
	n := flag.Int("n", 10, "number of posts to seed")
	useTest := flag.Bool("test", false, "seed TEST_DATABASE_URL instead of DATABASE_URL")
	flag.Parse()

	config.InitApp()
	cfg := config.GetConfig()

	uri := cfg.DatabaseURL
	if *useTest {
		if cfg.TestDatabaseURL == "" {
			log.Fatal("TEST_DATABASE_URL is not set")
		}
		uri = cfg.TestDatabaseURL
	}

	ctx := context.Background()
	handle, err := db.Connect(ctx, uri)
	if err != nil {
		log.Fatal("failed to connect to MongoDB: ", err)
	}
	defer handle.Close(ctx)

	repo := repositories.NewPostRepository(handle.Database())
	for i := 0; i < *n; i++ {
		tag := uuid.NewString()[:8]
		p, err := repo.Insert(ctx, &models.Post{
			Title:   fmt.Sprintf("Generated post %d (%s)", i+1, tag),
			Content: fmt.Sprintf("Generated content for post %d.", i+1),
			Author: models.Author{
				FirstName: "Seed",
				LastName:  tag,
			},
		})
		if err != nil {
			log.Fatalf("failed to seed post %d: %v", i+1, err)
		}
		log.Printf("seeded post %s", p.ID.Hex())
	}
}
