package services

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/microblog/api-go/models"
	"github.com/microblog/api-go/repository"
	"github.com/microblog/api-go/storage"
	"github.com/microblog/api-go/utils"
)

// MediaService stores uploaded files and registers their metadata rows.
type MediaService struct {
	db     *gorm.DB
	store  storage.Storage
	logger *zap.Logger
}

func NewMediaService(db *gorm.DB, store storage.Storage, logger *zap.Logger) *MediaService {
	return &MediaService{db: db, store: store, logger: logger}
}

// Upload validates the original filename's extension, stores the bytes under
// a generated unique name, and registers a Media row whose id tweets can
// reference.
func (s *MediaService) Upload(ctx context.Context, filename string, file io.Reader) (uint, error) {
	if !utils.AllowedFile(filename) {
		return 0, models.Validation("Invalid file type")
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(filename))
	path, err := s.store.Save(ctx, name, file)
	if err != nil {
		return 0, err
	}

	media := models.Media{FilePath: path}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		return repository.New(tx).CreateMedia(&media)
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug("media stored",
		zap.Uint("media_id", media.ID),
		zap.String("path", path))

	return media.ID, nil
}
