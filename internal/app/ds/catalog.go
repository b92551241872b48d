package ds

import "github.com/shopspring/decimal"

// 1. Справочник академических уровней
type AcademicLevel struct {
	ID         string          `gorm:"primaryKey;type:varchar(32)"`
	Name       string          `gorm:"type:varchar(100);not null"`
	Multiplier decimal.Decimal `gorm:"type:decimal(6,3);not null"`
	SortOrder  int             `gorm:"not null;default:0"`
}

// 2. Варианты сроков (ключ — количество часов)
type DeadlineOption struct {
	Hours      int             `gorm:"primaryKey;autoIncrement:false"`
	Label      string          `gorm:"type:varchar(50);not null"`
	Multiplier decimal.Decimal `gorm:"type:decimal(6,3);not null"`
	Urgency    string          `gorm:"type:varchar(20);not null"` // urgent, standard
}

// 3. Предметы
type Subject struct {
	ID         uint            `gorm:"primaryKey"`
	Name       string          `gorm:"type:varchar(100);not null"`
	Multiplier decimal.Decimal `gorm:"type:decimal(6,3);not null"`
}

// 4. Типы услуг, редактируются администратором
type Service struct {
	ID         uint            `gorm:"primaryKey"`
	Name       string          `gorm:"type:varchar(100);not null"`
	Icon       string          `gorm:"type:varchar(16)"`
	Multiplier decimal.Decimal `gorm:"type:decimal(6,3);not null"`
	IsDeleted  bool            `gorm:"type:boolean;default:false;not null"`
}

// 5. Дополнительные услуги
type Addon struct {
	ID        string          `gorm:"primaryKey;type:varchar(50)"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Unit      string          `gorm:"type:varchar(20);not null"` // flat fee, per page, per slide
	SortOrder int             `gorm:"not null;default:0"`
}
