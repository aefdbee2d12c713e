package model

import "time"

type Category string

const (
	CategoryWriting  Category = "writing"
	CategoryCours    Category = "cours"
	CategoryDevoirs  Category = "devoirs"
	CategoryHistoire Category = "histoire"
)

type Level string

const (
	LevelCollege      Level = "college"
	LevelLycee        Level = "lycee"
	LevelPreparatoire Level = "preparatoire"
)

type Language string

const (
	LanguageArabic  Language = "ar"
	LanguageFrench  Language = "fr"
	LanguageEnglish Language = "en"
)

type BookStatus string

const (
	BookStatusInStock    BookStatus = "En stock"
	BookStatusOutOfStock BookStatus = "Hors stock"
)

// Catalog entry. Prices are in dinars (DT).
type Book struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Author      string     `gorm:"type:varchar(255);not null" json:"author"`
	Category    Category   `gorm:"type:varchar(20);not null;index" json:"category"`
	Level       Level      `gorm:"type:varchar(20);not null;index" json:"level"`
	Language    Language   `gorm:"type:varchar(5);not null;index" json:"language"`
	Price       float64    `gorm:"not null" json:"price"`
	Image       string     `gorm:"type:text;not null" json:"image"`
	Images      []string   `gorm:"serializer:json" json:"images"`
	Description string     `gorm:"type:text" json:"description"`
	Rating      float64    `gorm:"not null;default:0" json:"rating"`
	Reviews     int64      `gorm:"not null;default:0" json:"reviews"`
	Status      BookStatus `gorm:"type:varchar(20);not null;default:'En stock'" json:"status"`

	//key-value pairs shown on the detail page (pages, editor, ISBN...)
	Specifications map[string]string `gorm:"serializer:json" json:"specifications,omitempty"`

	DescriptionImages []string `gorm:"serializer:json" json:"descriptionImages,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
