package model

import "time"

// Promotional slide on the home page.
type Slider struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Subtitle  string    `gorm:"type:varchar(255)" json:"subtitle"`
	Image     string    `gorm:"type:text;not null" json:"image"`
	CTA       string    `gorm:"type:varchar(100)" json:"cta"`
	Link      string    `gorm:"type:text" json:"link"`
	SortOrder int       `gorm:"not null;default:0;index" json:"order"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
