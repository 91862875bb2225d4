// Command main runs the database seeder for Chirp.
package main

import (
	"flag"
	"log"

	"chirp/internal/config"
	"chirp/internal/database"
	"chirp/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "Number of users to create")
	tweetsPerUser := flag.Int("tweets", 5, "Number of tweets per user")
	password := flag.String("password", "password", "Password for all seeded users")
	shouldClean := flag.Bool("clean", false, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.Run(seed.Options{
		NumUsers:       *numUsers,
		TweetsPerUser:  *tweetsPerUser,
		Password:       *password,
		SkipIfNotEmpty: !*shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
