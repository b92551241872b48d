package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"paperhelp/internal/app/ds"
	"paperhelp/internal/app/pricing"
)

// Memory хранит данные в памяти процесса. Используется, когда база данных
// не настроена, и в тестах.
type Memory struct {
	mu sync.RWMutex

	levels    []ds.AcademicLevel
	deadlines []ds.DeadlineOption
	subjects  []ds.Subject
	services  []ds.Service
	addons    []ds.Addon
	samples   []ds.Sample
	articles  []ds.Article
	orders    []ds.Order
	support   []ds.SupportMessage
	users     map[string]ds.User

	nextServiceID uint
	nextSampleID  uint
	nextArticleID uint
	nextMessageID uint
	nextUserID    uint
}

var _ Store = (*Memory)(nil)

func NewMemory(seed SeedData) *Memory {
	m := &Memory{
		levels:    append([]ds.AcademicLevel(nil), seed.Levels...),
		deadlines: append([]ds.DeadlineOption(nil), seed.Deadlines...),
		subjects:  append([]ds.Subject(nil), seed.Subjects...),
		services:  append([]ds.Service(nil), seed.Services...),
		addons:    append([]ds.Addon(nil), seed.Addons...),
		samples:   append([]ds.Sample(nil), seed.Samples...),
		articles:  append([]ds.Article(nil), seed.Articles...),
		users:     make(map[string]ds.User),
	}

	for _, s := range m.services {
		m.nextServiceID = max(m.nextServiceID, s.ID)
	}
	for _, s := range m.samples {
		m.nextSampleID = max(m.nextSampleID, s.ID)
	}
	for _, a := range m.articles {
		m.nextArticleID = max(m.nextArticleID, a.ID)
	}
	for _, o := range seed.Orders {
		o := copyOrder(o)
		for i := range o.Messages {
			m.nextMessageID++
			o.Messages[i].ID = m.nextMessageID
			o.Messages[i].OrderID = o.ID
		}
		m.orders = append(m.orders, o)
	}
	for _, sm := range seed.SupportMessages {
		m.nextMessageID++
		sm.ID = m.nextMessageID
		m.support = append(m.support, sm)
	}
	return m
}

func copyOrder(o ds.Order) ds.Order {
	o.Messages = append([]ds.OrderMessage(nil), o.Messages...)
	return o
}

func (m *Memory) Catalog() (pricing.Catalog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return toCatalog(m.levels, m.deadlines, m.subjects, m.services, m.addons), nil
}

// ============ Services ============

func (m *Memory) ListServices() ([]ds.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	services := make([]ds.Service, 0, len(m.services))
	for _, s := range m.services {
		if !s.IsDeleted {
			services = append(services, s)
		}
	}
	return services, nil
}

func (m *Memory) GetService(id uint) (*ds.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.serviceIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	s := m.services[i]
	return &s, nil
}

func (m *Memory) serviceIndex(id uint) int {
	for i, s := range m.services {
		if s.ID == id && !s.IsDeleted {
			return i
		}
	}
	return -1
}

func (m *Memory) CreateService(s *ds.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextServiceID++
	s.ID = m.nextServiceID
	s.IsDeleted = false
	m.services = append(m.services, *s)
	return nil
}

func (m *Memory) UpdateService(s *ds.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.serviceIndex(s.ID)
	if i < 0 {
		return ErrNotFound
	}
	m.services[i] = *s
	return nil
}

// DeleteService помечает услугу удалённой: старые заказы хранят её название.
func (m *Memory) DeleteService(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.serviceIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	m.services[i].IsDeleted = true
	return nil
}

// ============ Samples ============

func (m *Memory) ListSamples(featuredOnly bool) ([]ds.Sample, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	samples := make([]ds.Sample, 0, len(m.samples))
	for _, s := range m.samples {
		if featuredOnly && !s.IsFeatured {
			continue
		}
		samples = append(samples, s)
	}
	return samples, nil
}

func (m *Memory) GetSample(id uint) (*ds.Sample, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.samples {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

// SaveSample создаёт образец при нулевом ID и обновляет существующий иначе.
func (m *Memory) SaveSample(s *ds.Sample) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s.ID == 0 {
		m.nextSampleID++
		s.ID = m.nextSampleID
		m.samples = append(m.samples, *s)
		return nil
	}
	for i := range m.samples {
		if m.samples[i].ID == s.ID {
			m.samples[i] = *s
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DeleteSample(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.samples {
		if m.samples[i].ID == id {
			m.samples = append(m.samples[:i], m.samples[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ============ Articles ============

func (m *Memory) ListArticles(publishedOnly bool) ([]ds.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	articles := make([]ds.Article, 0, len(m.articles))
	for _, a := range m.articles {
		if publishedOnly && !a.IsPublished {
			continue
		}
		articles = append(articles, a)
	}
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Date.After(articles[j].Date)
	})
	return articles, nil
}

func (m *Memory) GetArticle(id uint) (*ds.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.articles {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) SaveArticle(a *ds.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if a.ID == 0 {
		m.nextArticleID++
		a.ID = m.nextArticleID
		m.articles = append(m.articles, *a)
		return nil
	}
	for i := range m.articles {
		if m.articles[i].ID == a.ID {
			m.articles[i] = *a
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DeleteArticle(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.articles {
		if m.articles[i].ID == id {
			m.articles = append(m.articles[:i], m.articles[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ============ Orders ============

func (m *Memory) ListOrders(f OrderFilter) ([]ds.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	orders := make([]ds.Order, 0, len(m.orders))
	for _, o := range m.orders {
		if matchOrder(o, f) {
			orders = append(orders, copyOrder(o))
		}
	}
	sortOrders(orders)
	return orders, nil
}

func (m *Memory) GetOrder(id string) (*ds.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.orderIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	o := copyOrder(m.orders[i])
	return &o, nil
}

func (m *Memory) orderIndex(id string) int {
	for i, o := range m.orders {
		if strings.EqualFold(o.ID, id) {
			return i
		}
	}
	return -1
}

func (m *Memory) CreateOrder(o *ds.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.orderIndex(o.ID) >= 0 {
		return ErrConflict
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	for i := range o.Messages {
		m.nextMessageID++
		o.Messages[i].ID = m.nextMessageID
		o.Messages[i].OrderID = o.ID
	}
	m.orders = append(m.orders, copyOrder(*o))
	return nil
}

func (m *Memory) UpdateOrderStatus(id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.orderIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	m.orders[i].Status = status
	return nil
}

func (m *Memory) AddOrderMessage(orderID string, msg *ds.OrderMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.orderIndex(orderID)
	if i < 0 {
		return ErrNotFound
	}
	m.nextMessageID++
	msg.ID = m.nextMessageID
	msg.OrderID = m.orders[i].ID
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	m.orders[i].Messages = append(m.orders[i].Messages, *msg)
	return nil
}

// ============ Support ============

func (m *Memory) ListSupportMessages(email string) ([]ds.SupportMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	messages := make([]ds.SupportMessage, 0)
	for _, sm := range m.support {
		if strings.EqualFold(sm.UserEmail, email) {
			messages = append(messages, sm)
		}
	}
	return messages, nil
}

func (m *Memory) AddSupportMessage(msg *ds.SupportMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextMessageID++
	msg.ID = m.nextMessageID
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	m.support = append(m.support, *msg)
	return nil
}

// ============ Users ============

// TouchUser регистрирует вход пользователя: создаёт запись при первом входе
// и обновляет время последнего входа.
func (m *Memory) TouchUser(u *ds.User, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(u.Email)
	if existing, ok := m.users[key]; ok {
		u.ID = existing.ID
	} else {
		m.nextUserID++
		u.ID = m.nextUserID
	}
	u.LastLoginAt = at
	m.users[key] = *u
	return nil
}

func (m *Memory) ListUsers() ([]ds.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]ds.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}
