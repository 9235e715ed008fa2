// Command main runs the database seeder for Artfolio.
package main

import (
	"flag"
	"log"

	"artfolio/internal/config"
	"artfolio/internal/database"
	"artfolio/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numArtworks := flag.Int("artworks", 200, "Number of artworks to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d artworks, clean=%v\n", *numUsers, *numArtworks, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumArtworks: *numArtworks,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with test data.")
	log.Println("All test users have the password: password123")
}
