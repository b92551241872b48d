package repository

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"paperhelp/internal/app/ds"
	"paperhelp/internal/app/pricing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

type Repository struct {
	db *gorm.DB
}

var _ Store = (*Repository)(nil)

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// Автоматическая миграция всех таблиц
	err = db.AutoMigrate(
		&ds.AcademicLevel{},
		&ds.DeadlineOption{},
		&ds.Subject{},
		&ds.Service{},
		&ds.Addon{},
		&ds.Sample{},
		&ds.Article{},
		&ds.Order{},
		&ds.OrderMessage{},
		&ds.SupportMessage{},
		&ds.User{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}

// Seed заполняет пустые таблицы демо-данными. Уже существующие строки не трогаются.
func (r *Repository) Seed(seed SeedData) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		skip := tx.Clauses(clause.OnConflict{DoNothing: true})
		batches := []any{
			&seed.Levels, &seed.Deadlines, &seed.Subjects, &seed.Services,
			&seed.Addons, &seed.Samples, &seed.Articles,
		}
		for _, batch := range batches {
			if err := skip.Create(batch).Error; err != nil {
				return err
			}
		}
		// Заказ создаётся вместе с чатом, поэтому существующие пропускаем явно
		var count int64
		for i := range seed.Orders {
			if err := tx.Model(&ds.Order{}).Where("id = ?", seed.Orders[i].ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			if err := tx.Create(&seed.Orders[i]).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&ds.SupportMessage{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 && len(seed.SupportMessages) > 0 {
			if err := tx.Create(&seed.SupportMessages).Error; err != nil {
				return err
			}
		}
		return syncSequences(tx)
	})
}

// Демо-данные вставляются с явными id, последовательность при этом не двигается
var seededSerialModels = []any{&ds.Subject{}, &ds.Service{}, &ds.Sample{}, &ds.Article{}}

func serialTables(namer schema.Namer) ([]string, error) {
	cache := &sync.Map{}
	tables := make([]string, 0, len(seededSerialModels))
	for _, model := range seededSerialModels {
		s, err := schema.Parse(model, cache, namer)
		if err != nil {
			return nil, err
		}
		tables = append(tables, s.Table)
	}
	return tables, nil
}

// syncSequences переводит последовательности id за максимальный id в таблице,
// иначе первые созданные администратором записи получат занятые id.
func syncSequences(tx *gorm.DB) error {
	tables, err := serialTables(tx.NamingStrategy)
	if err != nil {
		return err
	}
	for _, table := range tables {
		err := tx.Exec(
			"SELECT setval(pg_get_serial_sequence(?, 'id'), (SELECT COALESCE(MAX(id), 0) + 1 FROM ?), false)",
			table, clause.Table{Name: table},
		).Error
		if err != nil {
			return fmt.Errorf("sync sequence of %s: %w", table, err)
		}
	}
	return nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	}
	return err
}

func (r *Repository) Catalog() (pricing.Catalog, error) {
	var (
		levels    []ds.AcademicLevel
		deadlines []ds.DeadlineOption
		subjects  []ds.Subject
		services  []ds.Service
		addons    []ds.Addon
	)
	if err := r.db.Order("sort_order, id").Find(&levels).Error; err != nil {
		return pricing.Catalog{}, err
	}
	if err := r.db.Order("hours").Find(&deadlines).Error; err != nil {
		return pricing.Catalog{}, err
	}
	if err := r.db.Order("id").Find(&subjects).Error; err != nil {
		return pricing.Catalog{}, err
	}
	if err := r.db.Where("is_deleted = ?", false).Order("id").Find(&services).Error; err != nil {
		return pricing.Catalog{}, err
	}
	if err := r.db.Order("sort_order, id").Find(&addons).Error; err != nil {
		return pricing.Catalog{}, err
	}
	return toCatalog(levels, deadlines, subjects, services, addons), nil
}

// ============ Services ============

func (r *Repository) ListServices() ([]ds.Service, error) {
	var services []ds.Service
	err := r.db.Where("is_deleted = ?", false).Order("id").Find(&services).Error
	return services, err
}

func (r *Repository) GetService(id uint) (*ds.Service, error) {
	var service ds.Service
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&service).Error
	if err != nil {
		return nil, translate(err)
	}
	return &service, nil
}

func (r *Repository) CreateService(s *ds.Service) error {
	s.ID = 0
	s.IsDeleted = false
	return translate(r.db.Create(s).Error)
}

func (r *Repository) UpdateService(s *ds.Service) error {
	result := r.db.Model(&ds.Service{}).
		Where("id = ? AND is_deleted = ?", s.ID, false).
		Updates(map[string]interface{}{
			"name":       s.Name,
			"icon":       s.Icon,
			"multiplier": s.Multiplier,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SQL операция для логического удаления
func (r *Repository) DeleteService(id uint) error {
	result := r.db.Exec("UPDATE services SET is_deleted = true WHERE id = ? AND is_deleted = false", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ============ Samples ============

func (r *Repository) ListSamples(featuredOnly bool) ([]ds.Sample, error) {
	var samples []ds.Sample
	q := r.db.Order("id")
	if featuredOnly {
		q = q.Where("is_featured = ?", true)
	}
	err := q.Find(&samples).Error
	return samples, err
}

func (r *Repository) GetSample(id uint) (*ds.Sample, error) {
	var sample ds.Sample
	if err := r.db.First(&sample, id).Error; err != nil {
		return nil, translate(err)
	}
	return &sample, nil
}

func (r *Repository) SaveSample(s *ds.Sample) error {
	if s.ID == 0 {
		return translate(r.db.Create(s).Error)
	}
	if _, err := r.GetSample(s.ID); err != nil {
		return err
	}
	return r.db.Save(s).Error
}

func (r *Repository) DeleteSample(id uint) error {
	result := r.db.Delete(&ds.Sample{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ============ Articles ============

func (r *Repository) ListArticles(publishedOnly bool) ([]ds.Article, error) {
	var articles []ds.Article
	q := r.db.Order("date DESC")
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}
	err := q.Find(&articles).Error
	return articles, err
}

func (r *Repository) GetArticle(id uint) (*ds.Article, error) {
	var article ds.Article
	if err := r.db.First(&article, id).Error; err != nil {
		return nil, translate(err)
	}
	return &article, nil
}

func (r *Repository) SaveArticle(a *ds.Article) error {
	if a.ID == 0 {
		return translate(r.db.Create(a).Error)
	}
	if _, err := r.GetArticle(a.ID); err != nil {
		return err
	}
	return r.db.Save(a).Error
}

func (r *Repository) DeleteArticle(id uint) error {
	result := r.db.Delete(&ds.Article{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ============ Orders ============

func (r *Repository) withMessages() *gorm.DB {
	return r.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("timestamp, id")
	})
}

func (r *Repository) ListOrders(f OrderFilter) ([]ds.Order, error) {
	q := r.withMessages().Order("deadline DESC")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.UserEmail != "" {
		q = q.Where("LOWER(user_email) = ?", strings.ToLower(f.UserEmail))
	}
	if f.Query != "" {
		q = q.Where("id ILIKE ?", "%"+f.Query+"%")
	}

	var orders []ds.Order
	err := q.Find(&orders).Error
	return orders, err
}

func (r *Repository) GetOrder(id string) (*ds.Order, error) {
	var order ds.Order
	err := r.withMessages().Where("UPPER(id) = ?", strings.ToUpper(id)).First(&order).Error
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *Repository) CreateOrder(o *ds.Order) error {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	return translate(r.db.Create(o).Error)
}

func (r *Repository) UpdateOrderStatus(id, status string) error {
	result := r.db.Model(&ds.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) AddOrderMessage(orderID string, m *ds.OrderMessage) error {
	order, err := r.GetOrder(orderID)
	if err != nil {
		return err
	}
	m.ID = 0
	m.OrderID = order.ID
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
	return r.db.Create(m).Error
}

// ============ Support ============

func (r *Repository) ListSupportMessages(email string) ([]ds.SupportMessage, error) {
	var messages []ds.SupportMessage
	err := r.db.Where("LOWER(user_email) = ?", strings.ToLower(email)).
		Order("timestamp, id").
		Find(&messages).Error
	return messages, err
}

func (r *Repository) AddSupportMessage(m *ds.SupportMessage) error {
	m.ID = 0
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
	return r.db.Create(m).Error
}

// ============ Users ============

func (r *Repository) TouchUser(u *ds.User, at time.Time) error {
	u.ID = 0
	u.Email = strings.ToLower(u.Email)
	u.LastLoginAt = at
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"full_name", "avatar", "is_admin", "last_login_at"}),
	}).Create(u).Error
}

func (r *Repository) ListUsers() ([]ds.User, error) {
	var users []ds.User
	err := r.db.Order("id").Find(&users).Error
	return users, err
}
