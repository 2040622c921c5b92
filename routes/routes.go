package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/microblog/api-go/config"
	"github.com/microblog/api-go/controllers"
	"github.com/microblog/api-go/middleware"
	"github.com/microblog/api-go/services"
	"github.com/microblog/api-go/storage"
)

// SetupRoutes wires the controllers under the authenticated /api group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {
	store := mediaStorage(cfg)

	tweetController := controllers.NewTweetController(services.NewTweetService(db, logger))
	feedController := controllers.NewFeedController(services.NewFeedService(db, logger))
	interactionController := controllers.NewInteractionController(services.NewInteractionService(db, logger))
	userController := controllers.NewUserController(services.NewProfileService(db, logger))
	mediaController := controllers.NewMediaController(services.NewMediaService(db, store, logger))

	api := r.Group("/api")
	api.Use(middleware.APIKeyAuth(db))
	{
		SetupTweetRoutes(api, tweetController)
		SetupFeedRoutes(api, feedController)
		SetupInteractionRoutes(api, interactionController)
		SetupUserRoutes(api, userController)
		SetupMediaRoutes(api, mediaController)
	}
}

func mediaStorage(cfg *config.Config) storage.Storage {
	if cfg.MediaStorage == "s3" {
		return storage.NewS3Storage(storage.S3Config{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Bucket:          cfg.S3Bucket,
			PublicURL:       cfg.S3PublicURL,
		})
	}
	return storage.NewLocalStorage(cfg.UploadDir, "/static/images")
}
