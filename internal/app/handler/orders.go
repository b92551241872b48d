package handler

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"paperhelp/internal/app/ds"
	"paperhelp/internal/app/dto"
	"paperhelp/internal/app/middleware"
	"paperhelp/internal/app/pricing"
	"paperhelp/internal/app/repository"
	"paperhelp/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Сколько раз пробуем сгенерировать свободный номер заказа
const orderIDAttempts = 5

// newOrderID генерирует номер вида SPH-84391
func newOrderID() string {
	id := uuid.New()
	return fmt.Sprintf("SPH-%05d", binary.BigEndian.Uint32(id[:4])%100000)
}

func attachmentResponse(a ds.Attachment) *dto.AttachmentResponse {
	if a.Empty() {
		return nil
	}
	return &dto.AttachmentResponse{
		FileName: a.FileName,
		FileSize: a.FileSize,
		FileURL:  a.FileURL,
	}
}

func orderMessageResponse(m ds.OrderMessage) dto.MessageResponse {
	return dto.MessageResponse{
		ID:         m.ID,
		Sender:     m.Sender,
		Timestamp:  m.Timestamp,
		Text:       m.Text,
		Attachment: attachmentResponse(m.Attachment),
	}
}

func orderResponse(o ds.Order, now time.Time, withMessages bool) dto.OrderResponse {
	res := dto.OrderResponse{
		ID:             o.ID,
		UserEmail:      o.UserEmail,
		UserName:       o.UserName,
		UserAvatar:     o.UserAvatar,
		ServiceName:    o.ServiceName,
		SubjectName:    o.SubjectName,
		Status:         o.Status,
		Deadline:       o.Deadline,
		TimeLeft:       dto.TimeLeft(o.Deadline, now, o.Status),
		Pages:          o.Pages,
		Words:          pricing.Words(o.Pages),
		Price:          o.Price.StringFixed(2),
		ProjectDetails: o.ProjectDetails,
		CreatedAt:      o.CreatedAt,
	}
	if withMessages {
		res.Messages = make([]dto.MessageResponse, len(o.Messages))
		for i, m := range o.Messages {
			res.Messages[i] = orderMessageResponse(m)
		}
	}
	return res
}

func (h *Handler) orderList(orders []ds.Order) dto.OrderListResponse {
	now := h.now()
	res := dto.OrderListResponse{
		Orders: make([]dto.OrderResponse, len(orders)),
		Total:  len(orders),
	}
	for i, o := range orders {
		res.Orders[i] = orderResponse(o, now, false)
	}
	return res
}

// orderFilter читает фильтры списка заказов из query-параметров
func (h *Handler) orderFilter(c *gin.Context) (repository.OrderFilter, bool) {
	f := repository.OrderFilter{
		Status: c.Query("status"),
		Query:  strings.TrimSpace(c.Query("query")),
	}
	if f.Status != "" && !ds.ValidStatus(f.Status) {
		h.errorResponse(c, http.StatusBadRequest, "unknown order status: "+f.Status)
		return f, false
	}
	return f, true
}

// accessibleOrder загружает заказ, если текущий пользователь его владелец
// или администратор. Чужой заказ выглядит как несуществующий.
func (h *Handler) accessibleOrder(c *gin.Context) (*ds.Order, bool) {
	user := middleware.GetUserFromContext(c)

	order, err := h.Store.GetOrder(c.Param("id"))
	if err != nil {
		h.storeError(c, err, "order not found")
		return nil, false
	}
	if !user.IsAdmin() && !strings.EqualFold(order.UserEmail, user.Email) {
		h.errorResponse(c, http.StatusNotFound, "order not found")
		return nil, false
	}
	return order, true
}

// ============ Заказы клиента ============

// GetMyOrders возвращает заказы текущего клиента
// @Summary Мои заказы
// @Tags Orders
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Param status query string false "Статус"
// @Param query query string false "Часть номера заказа"
// @Success 200 {object} dto.OrderListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/orders [get]
func (h *Handler) GetMyOrders(c *gin.Context) {
	f, ok := h.orderFilter(c)
	if !ok {
		return
	}
	f.UserEmail = middleware.GetUserFromContext(c).Email

	orders, err := h.Store.ListOrders(f)
	if err != nil {
		logrus.Error("Error getting orders: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to load orders")
		return
	}
	c.JSON(http.StatusOK, h.orderList(orders))
}

// GetMyOrder возвращает заказ с историей чата
// @Summary Заказ по номеру
// @Tags Orders
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Param id path string true "Номер заказа"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/{id} [get]
func (h *Handler) GetMyOrder(c *gin.Context) {
	order, ok := h.accessibleOrder(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, orderResponse(*order, h.now(), true))
}

// PlaceOrder оформляет заказ по параметрам калькулятора
// @Summary Оформление заказа
// @Description Цена пересчитывается на сервере. Неизвестные ссылки на справочник и число страниц вне 1-100 отклоняются
// @Tags Orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Param request body dto.PlaceOrderRequest true "Параметры заказа"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/orders [post]
func (h *Handler) PlaceOrder(c *gin.Context) {
	user := middleware.GetUserFromContext(c)

	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Addons == nil {
		req.Addons = map[string]bool{}
	}

	catalog, err := h.catalog(c.Request.Context())
	if err != nil {
		logrus.Error("Error loading catalog: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to load catalog")
		return
	}

	if err := pricing.Validate(req.OrderConfig, catalog); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	quote := pricing.Breakdown(req.OrderConfig, catalog)
	service, _ := catalog.Service(req.ServiceID)
	subject, _ := catalog.Subject(req.SubjectID)
	now := h.now()

	order := ds.Order{
		UserEmail:      user.Email,
		UserName:       user.Name,
		UserAvatar:     user.Avatar,
		ServiceName:    service.Name,
		SubjectName:    subject.Name,
		LevelID:        req.LevelID,
		DeadlineHours:  req.DeadlineHours,
		Status:         ds.StatusAwaitingWriter,
		Deadline:       now.Add(time.Duration(req.DeadlineHours) * time.Hour),
		Pages:          req.Pages,
		Price:          quote.Total.Round(2),
		ProjectDetails: strings.TrimSpace(req.ProjectDetails),
		CreatedAt:      now,
	}

	for attempt := 0; attempt < orderIDAttempts; attempt++ {
		order.ID = newOrderID()
		err = h.Store.CreateOrder(&order)
		if !errors.Is(err, repository.ErrConflict) {
			break
		}
	}
	if err != nil {
		logrus.Error("Error creating order: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to create order")
		return
	}

	logrus.Infof("order %s placed by %s for %s", order.ID, order.UserEmail, order.Price.StringFixed(2))
	h.successResponse(c, http.StatusCreated, "order placed", orderResponse(order, now, true))
}

// ============ Чат заказа ============

func (h *Handler) addOrderMessage(c *gin.Context, orderID string, msg ds.OrderMessage) {
	msg.Timestamp = h.now()
	if err := h.Store.AddOrderMessage(orderID, &msg); err != nil {
		h.storeError(c, err, "order not found")
		return
	}
	h.successResponse(c, http.StatusCreated, "message sent", orderMessageResponse(msg))
}

func senderFor(user *middleware.CurrentUser) string {
	if user.IsAdmin() {
		return ds.SenderAdmin
	}
	return ds.SenderUser
}

// SendOrderMessage отправляет сообщение в чат заказа
// @Summary Сообщение в чат заказа
// @Tags Orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Param id path string true "Номер заказа"
// @Param request body dto.SendMessageRequest true "Текст"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/{id}/messages [post]
func (h *Handler) SendOrderMessage(c *gin.Context) {
	order, ok := h.accessibleOrder(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		h.errorResponse(c, http.StatusBadRequest, "message text is required")
		return
	}

	h.addOrderMessage(c, order.ID, ds.OrderMessage{
		Sender: senderFor(middleware.GetUserFromContext(c)),
		Text:   strings.TrimSpace(req.Text),
	})
}

// SendOrderAttachment прикрепляет файл к чату заказа
// @Summary Файл в чат заказа
// @Tags Orders
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Param id path string true "Номер заказа"
// @Param file formData file true "Файл"
// @Param text formData string false "Подпись"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/{id}/attachments [post]
func (h *Handler) SendOrderAttachment(c *gin.Context) {
	order, ok := h.accessibleOrder(c)
	if !ok {
		return
	}

	attachment, ok := h.receiveFile(c, "file", storage.PrefixAttachment)
	if !ok {
		return
	}

	h.addOrderMessage(c, order.ID, ds.OrderMessage{
		Sender:     senderFor(middleware.GetUserFromContext(c)),
		Text:       strings.TrimSpace(c.PostForm("text")),
		Attachment: attachment,
	})
}

// ============ Заказы в панели администратора ============

// GetAllOrders возвращает все заказы
// @Summary Все заказы
// @Tags Admin
// @Produce json
// @Param status query string false "Статус"
// @Param query query string false "Часть номера заказа"
// @Param customer query string false "Email клиента"
// @Success 200 {object} dto.OrderListResponse
// @Router /api/admin/orders [get]
func (h *Handler) GetAllOrders(c *gin.Context) {
	f, ok := h.orderFilter(c)
	if !ok {
		return
	}
	f.UserEmail = strings.TrimSpace(c.Query("customer"))

	orders, err := h.Store.ListOrders(f)
	if err != nil {
		logrus.Error("Error getting orders: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to load orders")
		return
	}
	c.JSON(http.StatusOK, h.orderList(orders))
}

// GetAnyOrder возвращает любой заказ с чатом
// @Summary Заказ по номеру (администратор)
// @Tags Admin
// @Produce json
// @Param id path string true "Номер заказа"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/orders/{id} [get]
func (h *Handler) GetAnyOrder(c *gin.Context) {
	order, err := h.Store.GetOrder(c.Param("id"))
	if err != nil {
		h.storeError(c, err, "order not found")
		return
	}
	c.JSON(http.StatusOK, orderResponse(*order, h.now(), true))
}

// UpdateOrderStatus меняет статус заказа
// @Summary Смена статуса заказа
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Номер заказа"
// @Param request body dto.UpdateStatusRequest true "Новый статус"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/orders/{id}/status [put]
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if !ds.ValidStatus(req.Status) {
		h.errorResponse(c, http.StatusBadRequest, "unknown order status: "+req.Status)
		return
	}

	order, err := h.Store.GetOrder(c.Param("id"))
	if err != nil {
		h.storeError(c, err, "order not found")
		return
	}
	if err := h.Store.UpdateOrderStatus(order.ID, req.Status); err != nil {
		h.storeError(c, err, "order not found")
		return
	}
	order.Status = req.Status

	logrus.Infof("order %s status changed to %s", order.ID, order.Status)
	h.successResponse(c, http.StatusOK, "status updated", orderResponse(*order, h.now(), false))
}

func adminSender(s string) string {
	if s == ds.SenderWriter {
		return ds.SenderWriter
	}
	return ds.SenderAdmin
}

// SendAdminOrderMessage отвечает в чате заказа от имени поддержки или автора
// @Summary Ответ в чате заказа
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Номер заказа"
// @Param request body dto.AdminMessageRequest true "Текст и отправитель"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/orders/{id}/messages [post]
func (h *Handler) SendAdminOrderMessage(c *gin.Context) {
	var req dto.AdminMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		h.errorResponse(c, http.StatusBadRequest, "message text is required")
		return
	}

	h.addOrderMessage(c, c.Param("id"), ds.OrderMessage{
		Sender: adminSender(req.Sender),
		Text:   strings.TrimSpace(req.Text),
	})
}

// SendAdminOrderAttachment прикрепляет файл от имени поддержки или автора
// @Summary Файл в чат заказа (администратор)
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Номер заказа"
// @Param file formData file true "Файл"
// @Param text formData string false "Подпись"
// @Param sender formData string false "admin или writer"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/orders/{id}/attachments [post]
func (h *Handler) SendAdminOrderAttachment(c *gin.Context) {
	order, err := h.Store.GetOrder(c.Param("id"))
	if err != nil {
		h.storeError(c, err, "order not found")
		return
	}

	attachment, ok := h.receiveFile(c, "file", storage.PrefixAttachment)
	if !ok {
		return
	}

	h.addOrderMessage(c, order.ID, ds.OrderMessage{
		Sender:     adminSender(c.PostForm("sender")),
		Text:       strings.TrimSpace(c.PostForm("text")),
		Attachment: attachment,
	})
}
