package handler

import (
	"paperhelp/internal/app/middleware"
	"paperhelp/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все REST API маршруты
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/ping", h.Ping)
	router.GET("/files/*key", h.GetFile)

	api := router.Group("/api")
	api.Use(h.Auth.WithCurrentUser())

	// ============ Публичные эндпоинты ============
	api.POST("/session", h.StartSession)
	api.GET("/session", middleware.WithRoleCheck(), h.GetSession)
	api.DELETE("/session", middleware.WithRoleCheck(), h.EndSession)

	api.GET("/catalog", h.GetCatalog)
	api.POST("/quote", h.Quote)
	api.GET("/quote/defaults", h.DefaultQuote)

	api.GET("/services", h.GetServices)
	api.GET("/services/:id", h.GetService)

	api.GET("/samples", h.GetSamples)
	api.GET("/samples/:id", h.GetSample)

	api.GET("/articles", h.GetArticles)
	api.GET("/articles/:id", h.GetArticle)

	// ============ Кабинет клиента ============
	client := api.Group("")
	client.Use(middleware.WithRoleCheck(role.Client, role.Admin))
	{
		client.GET("/orders", h.GetMyOrders)
		client.POST("/orders", h.PlaceOrder)
		client.GET("/orders/:id", h.GetMyOrder)
		client.POST("/orders/:id/messages", h.SendOrderMessage)
		client.POST("/orders/:id/attachments", h.SendOrderAttachment)

		client.GET("/support/messages", h.GetMySupportMessages)
		client.POST("/support/messages", h.SendSupportMessage)
		client.POST("/support/messages/attachments", h.SendSupportAttachment)
	}

	// ============ Панель администратора ============
	admin := api.Group("/admin")
	admin.Use(middleware.WithRoleCheck(role.Admin))
	{
		admin.GET("/dashboard", h.GetDashboard)
		admin.GET("/revenue", h.GetRevenue)
		admin.GET("/customers", h.GetCustomers)

		admin.GET("/orders", h.GetAllOrders)
		admin.GET("/orders/:id", h.GetAnyOrder)
		admin.PUT("/orders/:id/status", h.UpdateOrderStatus)
		admin.POST("/orders/:id/messages", h.SendAdminOrderMessage)
		admin.POST("/orders/:id/attachments", h.SendAdminOrderAttachment)

		admin.POST("/services", h.CreateService)
		admin.PUT("/services/:id", h.UpdateService)
		admin.DELETE("/services/:id", h.DeleteService)

		admin.GET("/samples", h.GetAllSamples)
		admin.POST("/samples", h.CreateSample)
		admin.PUT("/samples/:id", h.UpdateSample)
		admin.DELETE("/samples/:id", h.DeleteSample)
		admin.POST("/samples/:id/file", h.UploadSampleFile)

		admin.GET("/articles", h.GetAllArticles)
		admin.POST("/articles", h.CreateArticle)
		admin.PUT("/articles/:id", h.UpdateArticle)
		admin.DELETE("/articles/:id", h.DeleteArticle)
		admin.POST("/articles/:id/image", h.UploadArticleImage)

		admin.GET("/support/:email/messages", h.GetSupportThread)
		admin.POST("/support/:email/messages", h.ReplySupport)
		admin.POST("/support/:email/attachments", h.ReplySupportAttachment)
	}
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *Handler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
