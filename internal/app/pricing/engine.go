package pricing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownLevel    = errors.New("unknown academic level")
	ErrUnknownDeadline = errors.New("unknown deadline")
	ErrUnknownSubject  = errors.New("unknown subject")
	ErrUnknownService  = errors.New("unknown service")
	ErrUnknownAddon    = errors.New("unknown add-on")
	ErrPagesOutOfRange = errors.New("pages out of range")
)

// Вклад одной выбранной дополнительной услуги
type AddonLine struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Unit   BillingUnit     `json:"unit"`
	Amount decimal.Decimal `json:"amount"`
}

// Quote — разбивка цены. Total совпадает с Compute.
type Quote struct {
	Resolved    bool            `json:"resolved"`
	Unresolved  []string        `json:"unresolved,omitempty"`
	Base        decimal.Decimal `json:"base"`
	PaperPrice  decimal.Decimal `json:"paper_price"`
	Addons      []AddonLine     `json:"addons"`
	AddonsTotal decimal.Decimal `json:"addons_total"`
	Total       decimal.Decimal `json:"total"`
}

// Compute считает цену заказа. Если хотя бы одна ссылка на справочник
// не найдена, цена равна нулю, ошибка не возвращается.
func Compute(cfg OrderConfig, c Catalog) decimal.Decimal {
	return Breakdown(cfg, c).Total
}

// Breakdown выполняет тот же расчёт, что и Compute, но возвращает все
// промежуточные суммы.
func Breakdown(cfg OrderConfig, c Catalog) Quote {
	q := Quote{
		Base:        decimal.Zero,
		PaperPrice:  decimal.Zero,
		Addons:      []AddonLine{},
		AddonsTotal: decimal.Zero,
		Total:       decimal.Zero,
	}

	level, okLevel := c.Level(cfg.LevelID)
	deadline, okDeadline := c.Deadline(cfg.DeadlineHours)
	subject, okSubject := c.Subject(cfg.SubjectID)
	service, okService := c.Service(cfg.ServiceID)

	if !okLevel {
		q.Unresolved = append(q.Unresolved, "academic_level")
	}
	if !okDeadline {
		q.Unresolved = append(q.Unresolved, "deadline")
	}
	if !okSubject {
		q.Unresolved = append(q.Unresolved, "subject")
	}
	if !okService {
		q.Unresolved = append(q.Unresolved, "service")
	}
	if len(q.Unresolved) > 0 {
		return q
	}
	q.Resolved = true

	pages := decimal.NewFromInt(int64(cfg.Pages))

	// 1. Базовая стоимость
	q.Base = c.BasePricePerPage.Mul(pages)

	// 2. Все коэффициенты применяются до добавления доп. услуг
	q.PaperPrice = q.Base.
		Mul(level.Multiplier).
		Mul(deadline.Multiplier).
		Mul(subject.Multiplier).
		Mul(service.Multiplier)

	// 3. Дополнительные услуги в порядке справочника
	for _, addon := range c.Addons {
		if !cfg.Addons[addon.ID] {
			continue
		}
		amount := addon.Price
		if addon.Unit.PerPage() {
			amount = addon.Price.Mul(pages)
		}
		q.Addons = append(q.Addons, AddonLine{
			ID:     addon.ID,
			Name:   addon.Name,
			Unit:   addon.Unit,
			Amount: amount,
		})
		q.AddonsTotal = q.AddonsTotal.Add(amount)
	}

	q.Total = q.PaperPrice.Add(q.AddonsTotal)
	return q
}

// Validate строго проверяет конфигурацию перед оформлением заказа. Compute такие
// конфигурации не отвергает, а возвращает ноль.
func Validate(cfg OrderConfig, c Catalog) error {
	var errs []error

	if _, ok := c.Level(cfg.LevelID); !ok {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownLevel, cfg.LevelID))
	}
	if _, ok := c.Deadline(cfg.DeadlineHours); !ok {
		errs = append(errs, fmt.Errorf("%w: %d hours", ErrUnknownDeadline, cfg.DeadlineHours))
	}
	if _, ok := c.Subject(cfg.SubjectID); !ok {
		errs = append(errs, fmt.Errorf("%w: %d", ErrUnknownSubject, cfg.SubjectID))
	}
	if _, ok := c.Service(cfg.ServiceID); !ok {
		errs = append(errs, fmt.Errorf("%w: %d", ErrUnknownService, cfg.ServiceID))
	}
	if cfg.Pages < MinPages || cfg.Pages > MaxPages {
		errs = append(errs, fmt.Errorf("%w: %d (allowed %d-%d)", ErrPagesOutOfRange, cfg.Pages, MinPages, MaxPages))
	}

	unknown := make([]string, 0)
	for id, selected := range cfg.Addons {
		if !selected {
			continue
		}
		if _, ok := c.Addon(id); !ok {
			unknown = append(unknown, id)
		}
	}
	sort.Strings(unknown)
	for _, id := range unknown {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownAddon, id))
	}

	return errors.Join(errs...)
}
