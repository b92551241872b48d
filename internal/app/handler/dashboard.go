package handler

import (
	"net/http"

	"paperhelp/internal/app/ds"
	"paperhelp/internal/app/dto"
	"paperhelp/internal/app/repository"
	"paperhelp/internal/app/stats"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ Панель администратора ============

func (h *Handler) allOrders(c *gin.Context) ([]ds.Order, bool) {
	orders, err := h.Store.ListOrders(repository.OrderFilter{})
	if err != nil {
		logrus.Error("Error getting orders: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to load orders")
		return nil, false
	}
	return orders, true
}

// GetDashboard возвращает карточки дашборда
// @Summary Дашборд
// @Description Выручка, активные и выполненные заказы
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Router /api/admin/dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	orders, ok := h.allOrders(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		Summary:       stats.Summarize(orders),
		ActiveList:    h.orderList(stats.Active(orders)).Orders,
		CompletedList: h.orderList(stats.Completed(orders)).Orders,
	})
}

// GetRevenue возвращает выручку по услугам и предметам
// @Summary Выручка
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.RevenueResponse
// @Router /api/admin/revenue [get]
func (h *Handler) GetRevenue(c *gin.Context) {
	orders, ok := h.allOrders(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.RevenueResponse{
		ByService: stats.RevenueBy(orders, stats.ByService),
		BySubject: stats.RevenueBy(orders, stats.BySubject),
	})
}

// GetCustomers возвращает список клиентов, собранный по заказам
// @Summary Клиенты
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.CustomerListResponse
// @Router /api/admin/customers [get]
func (h *Handler) GetCustomers(c *gin.Context) {
	orders, ok := h.allOrders(c)
	if !ok {
		return
	}

	users, err := h.Store.ListUsers()
	if err != nil {
		logrus.Error("Error getting users: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to load customers")
		return
	}

	customers := stats.Customers(orders, users, h.now())
	c.JSON(http.StatusOK, dto.CustomerListResponse{
		Customers: customers,
		Total:     len(customers),
	})
}
