package pricing

import "github.com/shopspring/decimal"

// WordsPerPage — объём одной страницы, используется только для отображения.
const WordsPerPage = 275

// Допустимый диапазон страниц в форме заказа
const (
	MinPages = 1
	MaxPages = 100
)

type Urgency string

const (
	Urgent   Urgency = "urgent"
	Standard Urgency = "standard"
)

// BillingUnit определяет, как тарифицируется дополнительная услуга.
type BillingUnit string

const (
	UnitFlatFee  BillingUnit = "flat fee"
	UnitPerPage  BillingUnit = "per page"
	UnitPerSlide BillingUnit = "per slide"
)

// PerPage сообщает, умножается ли цена на количество страниц.
func (u BillingUnit) PerPage() bool {
	return u == UnitPerPage || u == UnitPerSlide
}

type Level struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

type Deadline struct {
	Hours      int             `json:"hours"`
	Label      string          `json:"label"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Urgency    Urgency         `json:"type"`
}

type Subject struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

type Service struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	Icon       string          `json:"icon"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

type Addon struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Unit  BillingUnit     `json:"unit"`
}

// Catalog — справочные таблицы, по которым считается цена заказа.
type Catalog struct {
	BasePricePerPage decimal.Decimal `json:"base_price_per_page"`
	Levels           []Level         `json:"levels"`
	Deadlines        []Deadline      `json:"deadlines"`
	Subjects         []Subject       `json:"subjects"`
	Services         []Service       `json:"services"`
	Addons           []Addon         `json:"addons"`
}

func (c Catalog) Level(id string) (Level, bool) {
	for _, l := range c.Levels {
		if l.ID == id {
			return l, true
		}
	}
	return Level{}, false
}

func (c Catalog) Deadline(hours int) (Deadline, bool) {
	for _, d := range c.Deadlines {
		if d.Hours == hours {
			return d, true
		}
	}
	return Deadline{}, false
}

func (c Catalog) Subject(id uint) (Subject, bool) {
	for _, s := range c.Subjects {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}

func (c Catalog) Service(id uint) (Service, bool) {
	for _, s := range c.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

func (c Catalog) Addon(id string) (Addon, bool) {
	for _, a := range c.Addons {
		if a.ID == id {
			return a, true
		}
	}
	return Addon{}, false
}

// Параметры, которые клиент выбирает в калькуляторе
type OrderConfig struct {
	LevelID       string          `json:"academic_level"`
	ServiceID     uint            `json:"service_id"`
	SubjectID     uint            `json:"subject_id"`
	Pages         int             `json:"pages"`
	DeadlineHours int             `json:"deadline"`
	Addons        map[string]bool `json:"addons"`
}

// Default значения формы: бакалавриат, первая услуга, первый предмет,
// одна страница, 7 дней, без дополнительных услуг.
const (
	DefaultLevelID       = "undergrad"
	DefaultDeadlineHours = 168
)

// DefaultConfig собирает конфигурацию заказа, с которой открывается форма.
func DefaultConfig(c Catalog) OrderConfig {
	cfg := OrderConfig{
		LevelID:       DefaultLevelID,
		Pages:         MinPages,
		DeadlineHours: DefaultDeadlineHours,
		Addons:        make(map[string]bool, len(c.Addons)),
	}
	if _, ok := c.Level(DefaultLevelID); !ok && len(c.Levels) > 0 {
		cfg.LevelID = c.Levels[0].ID
	}
	if len(c.Services) > 0 {
		cfg.ServiceID = c.Services[0].ID
	}
	if len(c.Subjects) > 0 {
		cfg.SubjectID = c.Subjects[0].ID
	}
	if _, ok := c.Deadline(DefaultDeadlineHours); !ok {
		for _, d := range c.Deadlines {
			if d.Urgency == Standard {
				cfg.DeadlineHours = d.Hours
				break
			}
		}
	}
	for _, a := range c.Addons {
		cfg.Addons[a.ID] = false
	}
	return cfg
}

// Words возвращает примерный объём работы в словах.
func Words(pages int) int {
	return pages * WordsPerPage
}
