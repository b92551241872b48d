package stats

import (
	"testing"
	"time"

	"paperhelp/internal/app/ds"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func order(id, email, name, service, subject, status, price string, created time.Time) ds.Order {
	return ds.Order{
		ID:          id,
		UserEmail:   email,
		UserName:    name,
		ServiceName: service,
		SubjectName: subject,
		Status:      status,
		Price:       decimal.RequireFromString(price),
		CreatedAt:   created,
	}
}

func sampleOrders() []ds.Order {
	return []ds.Order{
		order("SPH-1", "demo@user.com", "Demo User", "Research Paper", "STEM", ds.StatusInProgress, "489.38", now.Add(-48*time.Hour)),
		order("SPH-2", "demo@user.com", "Demo User", "Essay Writing", "History", ds.StatusCompleted, "103.50", now.Add(-24*time.Hour)),
		order("SPH-3", "jane@example.com", "Jane  Doe", "Research Paper", "Psychology", ds.StatusAwaitingWriter, "900.90", now.Add(-60*24*time.Hour)),
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleOrders())

	assert.True(t, decimal.RequireFromString("1493.78").Equal(s.TotalRevenue))
	assert.Equal(t, 2, s.ActiveOrders)
	assert.Equal(t, 1, s.CompletedOrders)
	assert.Equal(t, 3, s.TotalOrders)

	empty := Summarize(nil)
	assert.True(t, empty.TotalRevenue.IsZero())
	assert.Zero(t, empty.TotalOrders)
}

func TestActiveCompleted(t *testing.T) {
	orders := sampleOrders()
	assert.Len(t, Active(orders), 2)
	require.Len(t, Completed(orders), 1)
	assert.Equal(t, "SPH-2", Completed(orders)[0].ID)
}

func TestRevenueBy(t *testing.T) {
	items := RevenueBy(sampleOrders(), ByService)
	require.Len(t, items, 2)
	assert.Equal(t, "Research Paper", items[0].Label)
	assert.True(t, decimal.RequireFromString("1390.28").Equal(items[0].Revenue))
	assert.Equal(t, "Essay Writing", items[1].Label)

	bySubject := RevenueBy(sampleOrders(), BySubject)
	require.Len(t, bySubject, 3)
	assert.Equal(t, "Psychology", bySubject[0].Label)
	assert.Equal(t, "History", bySubject[2].Label)
}

func TestRevenueByTieBreaksOnLabel(t *testing.T) {
	orders := []ds.Order{
		order("a", "x@y.z", "X", "B", "s", ds.StatusCompleted, "10", now),
		order("b", "x@y.z", "X", "A", "s", ds.StatusCompleted, "10", now),
	}
	items := RevenueBy(orders, ByService)
	assert.Equal(t, "A", items[0].Label)
	assert.Equal(t, "B", items[1].Label)
}

func TestCustomers(t *testing.T) {
	users := []ds.User{{Email: "Demo@User.com", LastLoginAt: now.Add(-time.Hour)}}

	customers := Customers(sampleOrders(), users, now)
	require.Len(t, customers, 2)

	jane := customers[0]
	assert.Equal(t, "jane-doe", jane.ID)
	assert.Equal(t, 1, jane.TotalOrders)
	assert.Equal(t, "Inactive", jane.Status)
	assert.Equal(t, "Client", jane.Role)

	demo := customers[1]
	assert.Equal(t, "demo-user", demo.ID)
	assert.Equal(t, 2, demo.TotalOrders)
	assert.True(t, decimal.RequireFromString("592.88").Equal(demo.TotalSpent))
	assert.Equal(t, now.Add(-time.Hour), demo.LastLogin)
	assert.Equal(t, "Active", demo.Status)
}
