package model

import "time"

// Partner onboarding request submitted by an author or editor
// who wants their book listed.
type Partner struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Email       string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone       string    `gorm:"type:varchar(30);not null" json:"phone"`
	BookTitle   string    `gorm:"type:varchar(255);not null" json:"bookTitle"`
	Category    Category  `gorm:"type:varchar(20);not null" json:"category"`
	Level       Level     `gorm:"type:varchar(20);not null" json:"level"`
	Language    Language  `gorm:"type:varchar(5);not null" json:"language"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime;index" json:"createdAt"`
}
