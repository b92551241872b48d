package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"paperhelp/internal/app/dto"
	"paperhelp/internal/app/middleware"
	"paperhelp/internal/app/pricing"
	"paperhelp/internal/app/redis"
	"paperhelp/internal/app/repository"
	"paperhelp/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Handler содержит обработчики REST API
type Handler struct {
	Store      repository.Store
	Cache      *redis.Client        // nil: кэш справочника выключен
	Files      *storage.MinIOClient // nil: файлы не сохраняются, только имя
	Auth       *middleware.AuthMiddleware
	BasePrice  decimal.Decimal

	now func() time.Time
}

func NewHandler(s repository.Store, cache *redis.Client, files *storage.MinIOClient, auth *middleware.AuthMiddleware, basePrice decimal.Decimal) *Handler {
	return &Handler{
		Store:      s,
		Cache:      cache,
		Files:      files,
		Auth:       auth,
		BasePrice:  basePrice,
		now:        time.Now,
	}
}

// ============ Вспомогательные функции ============

func (h *Handler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *Handler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// storeError отвечает 404 на ErrNotFound и 500 на всё остальное.
func (h *Handler) storeError(c *gin.Context, err error, notFound string) {
	if errors.Is(err, repository.ErrNotFound) {
		h.errorResponse(c, http.StatusNotFound, notFound)
		return
	}
	logrus.Error(err)
	h.errorResponse(c, http.StatusInternalServerError, "internal error")
}

func (h *Handler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// catalog читает справочник через кэш и подставляет базовую цену из конфигурации.
func (h *Handler) catalog(ctx context.Context) (pricing.Catalog, error) {
	catalog, ok, err := h.Cache.GetCatalog(ctx)
	if err != nil {
		logrus.Warnf("catalog cache read failed: %v", err)
	}
	if !ok {
		catalog, err = h.Store.Catalog()
		if err != nil {
			return pricing.Catalog{}, err
		}
		if err := h.Cache.SetCatalog(ctx, catalog); err != nil {
			logrus.Warnf("catalog cache write failed: %v", err)
		}
	}
	catalog.BasePricePerPage = h.BasePrice
	return catalog, nil
}

func (h *Handler) invalidateCatalog(ctx context.Context) {
	if err := h.Cache.InvalidateCatalog(ctx); err != nil {
		logrus.Warnf("catalog cache invalidation failed: %v", err)
	}
}
