package repository

import "github.com/microblog/api-go/models"

// MediaPaths loads every media row in one bulk fetch and returns an id→path
// lookup for attachment resolution.
func (r *Repository) MediaPaths() (map[uint]string, error) {
	var media []models.Media
	if err := r.db.Find(&media).Error; err != nil {
		return nil, err
	}
	paths := make(map[uint]string, len(media))
	for _, m := range media {
		paths[m.ID] = m.FilePath
	}
	return paths, nil
}

func (r *Repository) CreateMedia(media *models.Media) error {
	return r.db.Create(media).Error
}
