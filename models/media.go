package models

// Media is an uploaded file's metadata row. FilePath is the public path or
// URL the stored file is served from.
type Media struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FilePath string `gorm:"not null" json:"file_path"`
}

func (Media) TableName() string {
	return "medias"
}
