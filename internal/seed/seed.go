// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"chirp/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers       int
	TweetsPerUser  int
	Password       string
	SkipIfNotEmpty bool
}

// Seeder populates the database with fake users and tweets.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{db: db}
}

// ClearAll removes all seeded data. Tweets go first to keep the user
// foreign key satisfied.
func (s *Seeder) ClearAll() error {
	if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Tweet{}).Error; err != nil {
		return fmt.Errorf("failed to clear tweets: %w", err)
	}
	if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.User{}).Error; err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}
	return nil
}

// Run seeds users and tweets according to opts.
func (s *Seeder) Run(opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 10
	}
	if opts.TweetsPerUser < 0 {
		opts.TweetsPerUser = 0
	}
	if opts.Password == "" {
		opts.Password = "password"
	}

	if opts.SkipIfNotEmpty {
		var count int64
		if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count users: %w", err)
		}
		if count > 0 {
			log.Printf("Seeder skipped: %d users already present", count)
			return nil
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	for i := 0; i < opts.NumUsers; i++ {
		username := fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), i)
		user := models.User{
			Username: username,
			Email:    fmt.Sprintf("%s@%s", username, gofakeit.DomainName()),
			Password: string(hash),
		}
		if err := s.db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create seed user: %w", err)
		}

		for j := 0; j < opts.TweetsPerUser; j++ {
			tweet := models.Tweet{
				Content:    gofakeit.Sentence(4 + rand.Intn(12)),
				DatePosted: gofakeit.DateRange(time.Now().AddDate(0, 0, -90), time.Now()),
				UserID:     user.ID,
			}
			if err := s.db.Create(&tweet).Error; err != nil {
				return fmt.Errorf("failed to create seed tweet: %w", err)
			}
		}
	}

	log.Printf("Seeded %d users with %d tweets each", opts.NumUsers, opts.TweetsPerUser)
	return nil
}
