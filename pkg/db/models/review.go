package models

import (
	"time"

	"github.com/angelmondragon/laptopfinder-backend/pkg/enums"
)

// Review is a reader-submitted laptop review awaiting or past moderation.
type Review struct {
	ID          uint               `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID   *uint              `gorm:"column:product_id"`
	AuthorName  string             `gorm:"column:author_name;type:text;not null"`
	Rating      int                `gorm:"column:rating;not null"`
	Title       string             `gorm:"column:title;type:text;not null"`
	Body        string             `gorm:"column:body;type:text;not null"`
	Status      enums.ReviewStatus `gorm:"column:status;type:text;not null;default:pending"`
	ModeratedAt *time.Time         `gorm:"column:moderated_at"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (Review) TableName() string { return "reviews" }
