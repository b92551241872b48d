package handler

import (
	"net/http"

	"paperhelp/internal/app/dto"
	"paperhelp/internal/app/pricing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ Калькулятор ============

// GetCatalog возвращает справочник цен
// @Summary Справочник цен
// @Description Уровни, сроки, предметы, услуги, дополнительные услуги и базовая цена страницы
// @Tags Pricing
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/catalog [get]
func (h *Handler) GetCatalog(c *gin.Context) {
	catalog, err := h.catalog(c.Request.Context())
	if err != nil {
		logrus.Error("Error loading catalog: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to load catalog")
		return
	}

	c.JSON(http.StatusOK, dto.CatalogResponse{
		Catalog:      catalog,
		WordsPerPage: pricing.WordsPerPage,
		MinPages:     pricing.MinPages,
		MaxPages:     pricing.MaxPages,
	})
}

func quoteResponse(cfg pricing.OrderConfig, catalog pricing.Catalog) dto.QuoteResponse {
	q := pricing.Breakdown(cfg, catalog)
	return dto.QuoteResponse{
		Config: cfg,
		Words:  pricing.Words(cfg.Pages),
		Quote:  q,
		Price:  q.Total.StringFixed(2),
	}
}

// Quote считает цену заказа
// @Summary Расчёт цены
// @Description Если хотя бы одна ссылка на справочник не найдена, цена равна 0 и resolved=false
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body pricing.OrderConfig true "Параметры заказа"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/quote [post]
func (h *Handler) Quote(c *gin.Context) {
	var cfg pricing.OrderConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	catalog, err := h.catalog(c.Request.Context())
	if err != nil {
		logrus.Error("Error loading catalog: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to load catalog")
		return
	}

	c.JSON(http.StatusOK, quoteResponse(cfg, catalog))
}

// DefaultQuote возвращает параметры формы по умолчанию и их цену
// @Summary Параметры калькулятора по умолчанию
// @Tags Pricing
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Router /api/quote/defaults [get]
func (h *Handler) DefaultQuote(c *gin.Context) {
	catalog, err := h.catalog(c.Request.Context())
	if err != nil {
		logrus.Error("Error loading catalog: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to load catalog")
		return
	}

	c.JSON(http.StatusOK, quoteResponse(pricing.DefaultConfig(catalog), catalog))
}
