package ds

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusAwaitingWriter = "Awaiting Writer"
	StatusInProgress     = "In Progress"
	StatusCompleted      = "Completed"
)

// ValidStatus проверяет статус заказа.
func ValidStatus(s string) bool {
	switch s {
	case StatusAwaitingWriter, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

const (
	SenderUser   = "user"
	SenderWriter = "writer"
	SenderAdmin  = "admin"
)

// Заказ клиента
type Order struct {
	ID             string          `gorm:"primaryKey;type:varchar(20)"` // SPH-84391
	UserEmail      string          `gorm:"type:varchar(100);not null;index"`
	UserName       string          `gorm:"type:varchar(100)"`
	UserAvatar     string          `gorm:"type:varchar(255)"`
	ServiceName    string          `gorm:"type:varchar(100);not null"`
	SubjectName    string          `gorm:"type:varchar(100);not null"`
	LevelID        string          `gorm:"type:varchar(32)"`
	DeadlineHours  int             `gorm:"default:0"`
	Status         string          `gorm:"type:varchar(20);not null"`
	Deadline       time.Time       `gorm:"not null"`
	Pages          int             `gorm:"not null"`
	Price          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ProjectDetails string          `gorm:"type:text"`
	CreatedAt      time.Time       `gorm:"not null"`

	Messages []OrderMessage `gorm:"foreignKey:OrderID"`
}

// Вложение в чате
type Attachment struct {
	FileName string `gorm:"type:varchar(255)"`
	FileSize string `gorm:"type:varchar(20)"` // "2.4 MB"
	FileURL  string `gorm:"type:varchar(255)"`
}

func (a Attachment) Empty() bool {
	return a.FileName == ""
}

// Сообщение в чате заказа
type OrderMessage struct {
	ID         uint       `gorm:"primaryKey"`
	OrderID    string     `gorm:"type:varchar(20);not null;index"`
	Sender     string     `gorm:"type:varchar(10);not null"` // user, writer, admin
	Timestamp  time.Time  `gorm:"not null"`
	Text       string     `gorm:"type:text"`
	Attachment Attachment `gorm:"embedded;embeddedPrefix:attachment_"`
}

// Сообщение в чате поддержки (клиент <-> администратор)
type SupportMessage struct {
	ID         uint       `gorm:"primaryKey"`
	UserEmail  string     `gorm:"type:varchar(100);not null;index"`
	Sender     string     `gorm:"type:varchar(10);not null"` // user, admin
	Timestamp  time.Time  `gorm:"not null"`
	Text       string     `gorm:"type:text"`
	Attachment Attachment `gorm:"embedded;embeddedPrefix:attachment_"`
}
