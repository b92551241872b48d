// Package stats собирает показатели для панели администратора.
package stats

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"paperhelp/internal/app/ds"

	"github.com/shopspring/decimal"
)

// Клиент без активности дольше InactiveAfter считается неактивным.
const InactiveAfter = 30 * 24 * time.Hour

type Summary struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	ActiveOrders    int             `json:"active_orders"`
	CompletedOrders int             `json:"completed_orders"`
	TotalOrders     int             `json:"total_orders"`
}

// Summarize считает карточки дашборда.
func Summarize(orders []ds.Order) Summary {
	s := Summary{TotalRevenue: decimal.Zero, TotalOrders: len(orders)}
	for _, o := range orders {
		s.TotalRevenue = s.TotalRevenue.Add(o.Price)
		if o.Status == ds.StatusCompleted {
			s.CompletedOrders++
		} else {
			s.ActiveOrders++
		}
	}
	return s
}

// Выборки для модальных списков дашборда
func Active(orders []ds.Order) []ds.Order {
	return filter(orders, func(o ds.Order) bool { return o.Status != ds.StatusCompleted })
}

func Completed(orders []ds.Order) []ds.Order {
	return filter(orders, func(o ds.Order) bool { return o.Status == ds.StatusCompleted })
}

func filter(orders []ds.Order, keep func(ds.Order) bool) []ds.Order {
	res := make([]ds.Order, 0, len(orders))
	for _, o := range orders {
		if keep(o) {
			res = append(res, o)
		}
	}
	return res
}

type RevenueItem struct {
	Label   string          `json:"label"`
	Revenue decimal.Decimal `json:"revenue"`
}

// RevenueBy группирует выручку по ключу и сортирует по убыванию.
func RevenueBy(orders []ds.Order, key func(ds.Order) string) []RevenueItem {
	sums := make(map[string]decimal.Decimal)
	for _, o := range orders {
		k := key(o)
		sums[k] = sums[k].Add(o.Price)
	}

	items := make([]RevenueItem, 0, len(sums))
	for label, revenue := range sums {
		items = append(items, RevenueItem{Label: label, Revenue: revenue})
	}
	sort.Slice(items, func(i, j int) bool {
		if c := items[i].Revenue.Cmp(items[j].Revenue); c != 0 {
			return c > 0
		}
		return items[i].Label < items[j].Label
	})
	return items
}

func ByService(o ds.Order) string { return o.ServiceName }
func BySubject(o ds.Order) string { return o.SubjectName }

type Customer struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Avatar      string          `json:"avatar"`
	Role        string          `json:"role"`
	Status      string          `json:"status"`
	LastLogin   time.Time       `json:"last_login"`
	TotalOrders int             `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
}

var spaces = regexp.MustCompile(`\s+`)

// Customers агрегирует заказы по клиентам. Время последнего входа берётся
// из сессий, а если пользователь не входил, из последнего заказа.
func Customers(orders []ds.Order, users []ds.User, now time.Time) []Customer {
	logins := make(map[string]time.Time, len(users))
	for _, u := range users {
		logins[strings.ToLower(u.Email)] = u.LastLoginAt
	}

	byEmail := make(map[string]*Customer)
	order := make([]string, 0)
	for _, o := range orders {
		email := strings.ToLower(o.UserEmail)
		c, ok := byEmail[email]
		if !ok {
			c = &Customer{
				ID:         strings.ToLower(spaces.ReplaceAllString(o.UserName, "-")),
				Name:       o.UserName,
				Email:      email,
				Avatar:     o.UserAvatar,
				Role:       "Client",
				TotalSpent: decimal.Zero,
			}
			byEmail[email] = c
			order = append(order, email)
		}
		c.TotalOrders++
		c.TotalSpent = c.TotalSpent.Add(o.Price)
		if o.CreatedAt.After(c.LastLogin) {
			c.LastLogin = o.CreatedAt
		}
	}

	res := make([]Customer, 0, len(order))
	for _, email := range order {
		c := byEmail[email]
		if at, ok := logins[email]; ok {
			c.LastLogin = at
		}
		c.Status = "Active"
		if now.Sub(c.LastLogin) > InactiveAfter {
			c.Status = "Inactive"
		}
		res = append(res, *c)
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].TotalSpent.Cmp(res[j].TotalSpent) > 0
	})
	return res
}
