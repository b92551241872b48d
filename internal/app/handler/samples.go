package handler

import (
	"net/http"

	"paperhelp/internal/app/ds"
	"paperhelp/internal/app/dto"
	"paperhelp/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ Образцы работ ============

func sampleResponse(s ds.Sample) dto.SampleResponse {
	return dto.SampleResponse{
		ID:            s.ID,
		Title:         s.Title,
		Subject:       s.Subject,
		AcademicLevel: s.AcademicLevel,
		Pages:         s.Pages,
		FileURL:       s.FileURL,
		IsFeatured:    s.IsFeatured,
	}
}

func (h *Handler) listSamples(c *gin.Context, featuredOnly bool) {
	samples, err := h.Store.ListSamples(featuredOnly)
	if err != nil {
		logrus.Error("Error getting samples: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to load samples")
		return
	}

	res := make([]dto.SampleResponse, len(samples))
	for i, s := range samples {
		res[i] = sampleResponse(s)
	}
	c.JSON(http.StatusOK, res)
}

// GetSamples возвращает образцы работ
// @Summary Список образцов
// @Tags Samples
// @Produce json
// @Param featured query bool false "Только избранные"
// @Success 200 {array} dto.SampleResponse
// @Router /api/samples [get]
func (h *Handler) GetSamples(c *gin.Context) {
	h.listSamples(c, c.Query("featured") == "true")
}

// GetAllSamples возвращает все образцы для администратора
// @Summary Все образцы
// @Tags Admin
// @Produce json
// @Success 200 {array} dto.SampleResponse
// @Router /api/admin/samples [get]
func (h *Handler) GetAllSamples(c *gin.Context) {
	h.listSamples(c, false)
}

// GetSample возвращает один образец
// @Summary Образец по ID
// @Tags Samples
// @Produce json
// @Param id path int true "ID образца"
// @Success 200 {object} dto.SampleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/samples/{id} [get]
func (h *Handler) GetSample(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	sample, err := h.Store.GetSample(id)
	if err != nil {
		h.storeError(c, err, "sample not found")
		return
	}
	c.JSON(http.StatusOK, sampleResponse(*sample))
}

func applySample(s *ds.Sample, req dto.SampleRequest) {
	s.Title = req.Title
	s.Subject = req.Subject
	s.AcademicLevel = req.AcademicLevel
	s.Pages = req.Pages
	s.IsFeatured = req.IsFeatured
	if req.FileURL != "" {
		s.FileURL = req.FileURL
	}
	if s.FileURL == "" {
		s.FileURL = "#"
	}
}

// CreateSample создаёт образец
// @Summary Создание образца
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.SampleRequest true "Образец"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/admin/samples [post]
func (h *Handler) CreateSample(c *gin.Context) {
	var req dto.SampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var sample ds.Sample
	applySample(&sample, req)
	if err := h.Store.SaveSample(&sample); err != nil {
		h.storeError(c, err, "sample not found")
		return
	}

	h.successResponse(c, http.StatusCreated, "sample created", sampleResponse(sample))
}

// UpdateSample изменяет образец
// @Summary Изменение образца
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "ID образца"
// @Param request body dto.SampleRequest true "Образец"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/samples/{id} [put]
func (h *Handler) UpdateSample(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.SampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	sample, err := h.Store.GetSample(id)
	if err != nil {
		h.storeError(c, err, "sample not found")
		return
	}
	applySample(sample, req)
	if err := h.Store.SaveSample(sample); err != nil {
		h.storeError(c, err, "sample not found")
		return
	}

	h.successResponse(c, http.StatusOK, "sample updated", sampleResponse(*sample))
}

// DeleteSample удаляет образец вместе с файлом
// @Summary Удаление образца
// @Tags Admin
// @Produce json
// @Param id path int true "ID образца"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/samples/{id} [delete]
func (h *Handler) DeleteSample(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	sample, err := h.Store.GetSample(id)
	if err != nil {
		h.storeError(c, err, "sample not found")
		return
	}
	if err := h.Store.DeleteSample(id); err != nil {
		h.storeError(c, err, "sample not found")
		return
	}
	h.removeFile(c.Request.Context(), sample.FileURL)

	h.successResponse(c, http.StatusOK, "sample deleted", nil)
}

// UploadSampleFile загружает файл образца
// @Summary Загрузка файла образца
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "ID образца"
// @Param file formData file true "Файл работы"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/samples/{id}/file [post]
func (h *Handler) UploadSampleFile(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	sample, err := h.Store.GetSample(id)
	if err != nil {
		h.storeError(c, err, "sample not found")
		return
	}

	file, ok := h.receiveFile(c, "file", storage.PrefixSample)
	if !ok {
		return
	}

	// Удаляем старый файл (если есть)
	h.removeFile(c.Request.Context(), sample.FileURL)

	sample.FileURL = file.FileURL
	if err := h.Store.SaveSample(sample); err != nil {
		h.storeError(c, err, "sample not found")
		return
	}

	h.successResponse(c, http.StatusOK, "file uploaded", gin.H{
		"file_url": file.FileURL,
	})
}
