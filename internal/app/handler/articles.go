package handler

import (
	"net/http"

	"paperhelp/internal/app/ds"
	"paperhelp/internal/app/dto"
	"paperhelp/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ Блог ============

func articleResponse(a ds.Article, withContent bool) dto.ArticleResponse {
	res := dto.ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Author:      a.Author,
		Category:    a.Category,
		Date:        a.Date,
		Excerpt:     a.Excerpt,
		ImageURL:    a.ImageURL,
		IsPublished: a.IsPublished,
	}
	if withContent {
		res.Content = a.Content
	}
	return res
}

func (h *Handler) listArticles(c *gin.Context, publishedOnly bool) {
	articles, err := h.Store.ListArticles(publishedOnly)
	if err != nil {
		logrus.Error("Error getting articles: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to load articles")
		return
	}

	res := make([]dto.ArticleResponse, len(articles))
	for i, a := range articles {
		res[i] = articleResponse(a, false)
	}
	c.JSON(http.StatusOK, res)
}

// GetArticles возвращает опубликованные статьи, новые первыми
// @Summary Список статей
// @Tags Articles
// @Produce json
// @Success 200 {array} dto.ArticleResponse
// @Router /api/articles [get]
func (h *Handler) GetArticles(c *gin.Context) {
	h.listArticles(c, true)
}

// GetAllArticles возвращает все статьи, включая черновики
// @Summary Все статьи
// @Tags Admin
// @Produce json
// @Success 200 {array} dto.ArticleResponse
// @Router /api/admin/articles [get]
func (h *Handler) GetAllArticles(c *gin.Context) {
	h.listArticles(c, false)
}

// GetArticle возвращает опубликованную статью целиком
// @Summary Статья по ID
// @Tags Articles
// @Produce json
// @Param id path int true "ID статьи"
// @Success 200 {object} dto.ArticleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/articles/{id} [get]
func (h *Handler) GetArticle(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	article, err := h.Store.GetArticle(id)
	if err != nil {
		h.storeError(c, err, "article not found")
		return
	}
	// Черновики видит только администратор
	if !article.IsPublished {
		h.errorResponse(c, http.StatusNotFound, "article not found")
		return
	}
	c.JSON(http.StatusOK, articleResponse(*article, true))
}

func (h *Handler) applyArticle(a *ds.Article, req dto.ArticleRequest) {
	a.Title = req.Title
	a.Author = req.Author
	a.Category = req.Category
	a.Excerpt = req.Excerpt
	a.Content = req.Content
	a.IsPublished = req.IsPublished
	if req.ImageURL != "" {
		a.ImageURL = req.ImageURL
	}
	switch {
	case req.Date != nil:
		a.Date = *req.Date
	case a.Date.IsZero():
		a.Date = h.now()
	}
}

// CreateArticle создаёт статью
// @Summary Создание статьи
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.ArticleRequest true "Статья"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/admin/articles [post]
func (h *Handler) CreateArticle(c *gin.Context) {
	var req dto.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var article ds.Article
	h.applyArticle(&article, req)
	if err := h.Store.SaveArticle(&article); err != nil {
		h.storeError(c, err, "article not found")
		return
	}

	h.successResponse(c, http.StatusCreated, "article created", articleResponse(article, true))
}

// UpdateArticle изменяет статью
// @Summary Изменение статьи
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "ID статьи"
// @Param request body dto.ArticleRequest true "Статья"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/articles/{id} [put]
func (h *Handler) UpdateArticle(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	article, err := h.Store.GetArticle(id)
	if err != nil {
		h.storeError(c, err, "article not found")
		return
	}
	h.applyArticle(article, req)
	if err := h.Store.SaveArticle(article); err != nil {
		h.storeError(c, err, "article not found")
		return
	}

	h.successResponse(c, http.StatusOK, "article updated", articleResponse(*article, true))
}

// DeleteArticle удаляет статью
// @Summary Удаление статьи
// @Tags Admin
// @Produce json
// @Param id path int true "ID статьи"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/articles/{id} [delete]
func (h *Handler) DeleteArticle(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	article, err := h.Store.GetArticle(id)
	if err != nil {
		h.storeError(c, err, "article not found")
		return
	}
	if err := h.Store.DeleteArticle(id); err != nil {
		h.storeError(c, err, "article not found")
		return
	}
	h.removeFile(c.Request.Context(), article.ImageURL)

	h.successResponse(c, http.StatusOK, "article deleted", nil)
}

// UploadArticleImage загружает обложку статьи
// @Summary Загрузка обложки
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "ID статьи"
// @Param image formData file true "Изображение"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/articles/{id}/image [post]
func (h *Handler) UploadArticleImage(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	article, err := h.Store.GetArticle(id)
	if err != nil {
		h.storeError(c, err, "article not found")
		return
	}

	image, ok := h.receiveFile(c, "image", storage.PrefixArticle)
	if !ok {
		return
	}

	// Удаляем старое изображение (если есть)
	h.removeFile(c.Request.Context(), article.ImageURL)

	article.ImageURL = image.FileURL
	if err := h.Store.SaveArticle(article); err != nil {
		h.storeError(c, err, "article not found")
		return
	}

	h.successResponse(c, http.StatusOK, "image uploaded", gin.H{
		"image_url": image.FileURL,
	})
}
