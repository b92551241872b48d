package ds

import "time"

// Образцы работ для витрины
type Sample struct {
	ID            uint   `gorm:"primaryKey"`
	Title         string `gorm:"type:varchar(255);not null"`
	Subject       string `gorm:"type:varchar(100);not null"`
	AcademicLevel string `gorm:"type:varchar(50);not null"` // High School, Undergraduate, Master, PhD
	Pages         int    `gorm:"not null"`
	FileURL       string `gorm:"type:varchar(255)"`
	IsFeatured    bool   `gorm:"type:boolean;default:false;not null"`
}

// Статьи блога
type Article struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Author      string    `gorm:"type:varchar(100)"`
	Category    string    `gorm:"type:varchar(100)"`
	Date        time.Time `gorm:"not null"`
	Excerpt     string    `gorm:"type:text"`
	Content     string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:varchar(255)"`
	IsPublished bool      `gorm:"type:boolean;default:false;not null"`
}
