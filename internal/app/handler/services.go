package handler

import (
	"net/http"

	"paperhelp/internal/app/ds"
	"paperhelp/internal/app/dto"
	"paperhelp/internal/app/pricing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ============ Услуги ============

// GetServices получает список услуг
// @Summary Получение списка услуг
// @Tags Services
// @Produce json
// @Success 200 {array} pricing.Service
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services [get]
func (h *Handler) GetServices(c *gin.Context) {
	catalog, err := h.catalog(c.Request.Context())
	if err != nil {
		logrus.Error("Error getting services: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to load services")
		return
	}
	c.JSON(http.StatusOK, catalog.Services)
}

// GetService получает одну услугу
// @Summary Получение услуги по ID
// @Tags Services
// @Produce json
// @Param id path int true "ID услуги"
// @Success 200 {object} pricing.Service
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id} [get]
func (h *Handler) GetService(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	catalog, err := h.catalog(c.Request.Context())
	if err != nil {
		logrus.Error("Error getting service: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to load services")
		return
	}

	service, found := catalog.Service(id)
	if !found {
		h.errorResponse(c, http.StatusNotFound, "service not found")
		return
	}
	c.JSON(http.StatusOK, service)
}

func serviceResponse(s ds.Service) pricing.Service {
	return pricing.Service{ID: s.ID, Name: s.Name, Icon: s.Icon, Multiplier: s.Multiplier}
}

func validMultiplier(m decimal.Decimal) bool {
	return m.IsPositive()
}

// CreateService создает новую услугу
// @Summary Создание услуги
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Данные услуги"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/admin/services [post]
func (h *Handler) CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if !validMultiplier(req.Multiplier) {
		h.errorResponse(c, http.StatusBadRequest, "multiplier must be positive")
		return
	}

	service := ds.Service{
		Name:       req.Name,
		Icon:       req.Icon,
		Multiplier: req.Multiplier,
	}
	if err := h.Store.CreateService(&service); err != nil {
		h.storeError(c, err, "service not found")
		return
	}
	h.invalidateCatalog(c.Request.Context())

	h.successResponse(c, http.StatusCreated, "service created", serviceResponse(service))
}

// UpdateService изменяет услугу
// @Summary Изменение услуги
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "ID услуги"
// @Param request body dto.UpdateServiceRequest true "Изменяемые поля"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/services/{id} [put]
func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	service, err := h.Store.GetService(id)
	if err != nil {
		h.storeError(c, err, "service not found")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Icon != nil {
		service.Icon = *req.Icon
	}
	if req.Multiplier != nil {
		if !validMultiplier(*req.Multiplier) {
			h.errorResponse(c, http.StatusBadRequest, "multiplier must be positive")
			return
		}
		service.Multiplier = *req.Multiplier
	}

	if err := h.Store.UpdateService(service); err != nil {
		h.storeError(c, err, "service not found")
		return
	}
	h.invalidateCatalog(c.Request.Context())

	h.successResponse(c, http.StatusOK, "service updated", serviceResponse(*service))
}

// DeleteService удаляет услугу (логически)
// @Summary Удаление услуги
// @Tags Admin
// @Produce json
// @Param id path int true "ID услуги"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/services/{id} [delete]
func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.Store.DeleteService(id); err != nil {
		h.storeError(c, err, "service not found")
		return
	}
	h.invalidateCatalog(c.Request.Context())

	h.successResponse(c, http.StatusOK, "service deleted", nil)
}
