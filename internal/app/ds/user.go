package ds

import "time"

// Пользователь демо-сессии (вход только по email, без пароля)
type User struct {
	ID          uint      `gorm:"primaryKey"`
	Email       string    `gorm:"type:varchar(100);unique;not null"`
	FullName    string    `gorm:"type:varchar(100)"`
	Avatar      string    `gorm:"type:varchar(255)"`
	IsAdmin     bool      `gorm:"type:boolean;default:false;not null"`
	LastLoginAt time.Time `gorm:"not null"`
}
