package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cinebook/cinebook-api/config"
	"github.com/cinebook/cinebook-api/internal/domain/entity"
	"github.com/cinebook/cinebook-api/internal/infrastructure/mongodb"
	"github.com/cinebook/cinebook-api/pkg/helpers"
)

// Seeds a bootstrap admin and a couple of movies so the API is usable
// right after a fresh deployment.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.MongoURI == "" {
		log.Fatal("MONGODB_URI is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.ConnectTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(cfg.MongoDatabase)

	email := "admin@cinebook.local"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	res, err := db.Collection("admins").UpdateOne(ctx,
		bson.D{{Key: "email", Value: email}},
		bson.D{{Key: "$setOnInsert", Value: bson.D{
			{Key: "email", Value: email},
			{Key: "password", Value: hash},
			{Key: "created_at", Value: time.Now().UTC()},
		}}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	if res.UpsertedCount > 0 {
		fmt.Printf("seeded admin: email=%s password=%s\n", email, password)
	} else {
		fmt.Printf("admin already present: email=%s\n", email)
	}

	admin := &entity.Admin{}
	if err := db.Collection("admins").FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(admin); err != nil {
		log.Fatalf("failed to read seeded admin: %v", err)
	}

	movies := mongodb.NewMovieRepository(db)
	existing, err := movies.GetAll(ctx)
	if err != nil {
		log.Fatalf("failed to list movies: %v", err)
	}
	if len(existing) > 0 {
		fmt.Printf("movies already present: %d\n", len(existing))
		return
	}

	samples := []entity.Movie{
		{
			Title:       "Interstellar",
			Description: "A crew travels through a wormhole in search of a new home for humanity.",
			ReleaseDate: time.Date(2014, 11, 7, 0, 0, 0, 0, time.UTC),
			PosterURL:   "https://image.tmdb.org/t/p/original/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg",
			Featured:    true,
			Actors:      []string{"Matthew McConaughey", "Anne Hathaway"},
			Admin:       admin.ID,
		},
		{
			Title:       "The Grand Budapest Hotel",
			Description: "The adventures of a legendary concierge and his trusted lobby boy.",
			ReleaseDate: time.Date(2014, 3, 28, 0, 0, 0, 0, time.UTC),
			PosterURL:   "https://image.tmdb.org/t/p/original/eWdyYQreja6JGCzqHWXpWHDrrPo.jpg",
			Featured:    false,
			Actors:      []string{"Ralph Fiennes", "Tony Revolori"},
			Admin:       admin.ID,
		},
	}
	for i := range samples {
		id, err := movies.Create(ctx, &samples[i])
		if err != nil {
			log.Fatalf("failed to seed movie %q: %v", samples[i].Title, err)
		}
		fmt.Printf("seeded movie: id=%s title=%s\n", id.Hex(), samples[i].Title)
	}
}
