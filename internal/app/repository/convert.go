package repository

import (
	"sort"
	"strings"

	"paperhelp/internal/app/ds"
	"paperhelp/internal/app/pricing"
)

// toCatalog переводит таблицы справочника в модель калькулятора.
// Базовая цена страницы задаётся конфигурацией и здесь не заполняется.
func toCatalog(levels []ds.AcademicLevel, deadlines []ds.DeadlineOption, subjects []ds.Subject, services []ds.Service, addons []ds.Addon) pricing.Catalog {
	c := pricing.Catalog{
		Levels:    make([]pricing.Level, 0, len(levels)),
		Deadlines: make([]pricing.Deadline, 0, len(deadlines)),
		Subjects:  make([]pricing.Subject, 0, len(subjects)),
		Services:  make([]pricing.Service, 0, len(services)),
		Addons:    make([]pricing.Addon, 0, len(addons)),
	}
	for _, l := range levels {
		c.Levels = append(c.Levels, pricing.Level{ID: l.ID, Name: l.Name, Multiplier: l.Multiplier})
	}
	for _, d := range deadlines {
		c.Deadlines = append(c.Deadlines, pricing.Deadline{
			Hours:      d.Hours,
			Label:      d.Label,
			Multiplier: d.Multiplier,
			Urgency:    pricing.Urgency(d.Urgency),
		})
	}
	for _, s := range subjects {
		c.Subjects = append(c.Subjects, pricing.Subject{ID: s.ID, Name: s.Name, Multiplier: s.Multiplier})
	}
	for _, s := range services {
		if s.IsDeleted {
			continue
		}
		c.Services = append(c.Services, pricing.Service{ID: s.ID, Name: s.Name, Icon: s.Icon, Multiplier: s.Multiplier})
	}
	for _, a := range addons {
		c.Addons = append(c.Addons, pricing.Addon{ID: a.ID, Name: a.Name, Price: a.Price, Unit: pricing.BillingUnit(a.Unit)})
	}
	return c
}

// Самые поздние дедлайны идут первыми
func sortOrders(orders []ds.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Deadline.After(orders[j].Deadline)
	})
}

func matchOrder(o ds.Order, f OrderFilter) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.UserEmail != "" && !strings.EqualFold(o.UserEmail, f.UserEmail) {
		return false
	}
	if f.Query != "" && !strings.Contains(strings.ToLower(o.ID), strings.ToLower(f.Query)) {
		return false
	}
	return true
}
