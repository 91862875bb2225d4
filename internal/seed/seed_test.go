package seed

import (
	"testing"

	"chirp/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Tweet{}); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

func TestSeederRun(t *testing.T) {
	db := setupSeedTestDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Run(Options{NumUsers: 3, TweetsPerUser: 2, Password: "pw1"}))

	var userCount, tweetCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Tweet{}).Count(&tweetCount).Error)
	assert.Equal(t, int64(3), userCount)
	assert.Equal(t, int64(6), tweetCount)

	// Seeded credentials are hashed and verifiable
	var user models.User
	require.NoError(t, db.First(&user).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("pw1")))

	// Every tweet references a seeded user
	var orphans int64
	require.NoError(t, db.Model(&models.Tweet{}).
		Where("user_id NOT IN (?)", db.Model(&models.User{}).Select("id")).
		Count(&orphans).Error)
	assert.Zero(t, orphans)
}

func TestSeederSkipIfNotEmpty(t *testing.T) {
	db := setupSeedTestDB(t)
	s := NewSeeder(db)

	require.NoError(t, db.Create(&models.User{Username: "existing", Email: "e@x.com", Password: "hash"}).Error)

	require.NoError(t, s.Run(Options{NumUsers: 5, TweetsPerUser: 1, SkipIfNotEmpty: true}))

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(1), userCount)
}

func TestSeederClearAll(t *testing.T) {
	db := setupSeedTestDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Run(Options{NumUsers: 2, TweetsPerUser: 1}))
	require.NoError(t, s.ClearAll())

	var userCount, tweetCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Tweet{}).Count(&tweetCount).Error)
	assert.Zero(t, userCount)
	assert.Zero(t, tweetCount)
}
