package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/microblog/api-go/models"
)

// InitDB opens the database and creates the schema once at startup.
// TranslateError turns driver-level unique violations into
// gorm.ErrDuplicatedKey, which the repository maps to Conflict.
func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Tweet{},
		&models.Like{},
		&models.Follow{},
		&models.Media{},
	)
}

// Seed loads the demo fixture into an empty database: three users with
// static keys, a small follow graph, tweets and likes. A non-empty users
// table makes it a no-op.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users := []models.User{
		{Name: "user_1", SecretKey: "test"},
		{Name: "user_2", SecretKey: "test_2"},
		{Name: "user_3", SecretKey: "test_3"},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	follows := []models.Follow{
		{FollowerID: 3, FollowedID: 1},
		{FollowerID: 1, FollowedID: 2},
		{FollowerID: 1, FollowedID: 3},
	}
	if err := db.Create(&follows).Error; err != nil {
		return err
	}

	tweets := []models.Tweet{
		{Body: "Good day ^_^", UserID: 1},
		{Body: "What's up???", UserID: 2},
		{Body: "The message has been deleted by admin", UserID: 3},
	}
	if err := db.Create(&tweets).Error; err != nil {
		return err
	}

	likes := []models.Like{
		{UserID: 2, TweetID: 1},
		{UserID: 1, TweetID: 2},
		{UserID: 3, TweetID: 1},
		{UserID: 3, TweetID: 2},
	}
	return db.Create(&likes).Error
}
