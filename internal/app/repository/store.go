package repository

import (
	"errors"
	"time"

	"paperhelp/internal/app/ds"
	"paperhelp/internal/app/pricing"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// Фильтры списка заказов. Пустые поля не ограничивают выборку.
type OrderFilter struct {
	Status    string
	Query     string // подстрока ID заказа, без учёта регистра
	UserEmail string
}

// Store используется обработчиками. Реализации: Memory (демо-данные
// в памяти) и Repository (PostgreSQL через gorm).
type Store interface {
	Catalog() (pricing.Catalog, error)
	ListServices() ([]ds.Service, error)
	GetService(id uint) (*ds.Service, error)
	CreateService(s *ds.Service) error
	UpdateService(s *ds.Service) error
	DeleteService(id uint) error

	ListSamples(featuredOnly bool) ([]ds.Sample, error)
	GetSample(id uint) (*ds.Sample, error)
	SaveSample(s *ds.Sample) error
	DeleteSample(id uint) error

	ListArticles(publishedOnly bool) ([]ds.Article, error)
	GetArticle(id uint) (*ds.Article, error)
	SaveArticle(a *ds.Article) error
	DeleteArticle(id uint) error

	ListOrders(f OrderFilter) ([]ds.Order, error)
	GetOrder(id string) (*ds.Order, error)
	CreateOrder(o *ds.Order) error
	UpdateOrderStatus(id, status string) error
	AddOrderMessage(orderID string, m *ds.OrderMessage) error

	ListSupportMessages(email string) ([]ds.SupportMessage, error)
	AddSupportMessage(m *ds.SupportMessage) error

	TouchUser(u *ds.User, at time.Time) error
	ListUsers() ([]ds.User, error)
}
