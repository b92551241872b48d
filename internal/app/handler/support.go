package handler

import (
	"net/http"
	"net/mail"
	"strings"

	"paperhelp/internal/app/ds"
	"paperhelp/internal/app/dto"
	"paperhelp/internal/app/middleware"
	"paperhelp/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ Чат поддержки ============

func supportMessageResponse(m ds.SupportMessage) dto.MessageResponse {
	return dto.MessageResponse{
		ID:         m.ID,
		Sender:     m.Sender,
		Timestamp:  m.Timestamp,
		Text:       m.Text,
		Attachment: attachmentResponse(m.Attachment),
	}
}

func (h *Handler) supportThread(c *gin.Context, email string) {
	messages, err := h.Store.ListSupportMessages(email)
	if err != nil {
		logrus.Error("Error getting support messages: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to load messages")
		return
	}

	res := make([]dto.MessageResponse, len(messages))
	for i, m := range messages {
		res[i] = supportMessageResponse(m)
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) addSupportMessage(c *gin.Context, email string, msg ds.SupportMessage) {
	msg.UserEmail = strings.ToLower(email)
	msg.Timestamp = h.now()
	if err := h.Store.AddSupportMessage(&msg); err != nil {
		logrus.Error("Error saving support message: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to send message")
		return
	}

	h.successResponse(c, http.StatusCreated, "message sent", supportMessageResponse(msg))
}

func (h *Handler) supportText(c *gin.Context, email, sender string) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		h.errorResponse(c, http.StatusBadRequest, "message text is required")
		return
	}
	h.addSupportMessage(c, email, ds.SupportMessage{
		Sender: sender,
		Text:   strings.TrimSpace(req.Text),
	})
}

// supportFile принимает файл с необязательной подписью, как в чате заказа
func (h *Handler) supportFile(c *gin.Context, email, sender string) {
	attachment, ok := h.receiveFile(c, "file", storage.PrefixAttachment)
	if !ok {
		return
	}
	h.addSupportMessage(c, email, ds.SupportMessage{
		Sender:     sender,
		Text:       strings.TrimSpace(c.PostForm("text")),
		Attachment: attachment,
	})
}

// GetMySupportMessages возвращает переписку клиента с поддержкой
// @Summary Чат поддержки
// @Tags Support
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Success 200 {array} dto.MessageResponse
// @Router /api/support/messages [get]
func (h *Handler) GetMySupportMessages(c *gin.Context) {
	h.supportThread(c, middleware.GetUserFromContext(c).Email)
}

// SendSupportMessage пишет в поддержку
// @Summary Сообщение в поддержку
// @Tags Support
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Param request body dto.SendMessageRequest true "Текст"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/support/messages [post]
func (h *Handler) SendSupportMessage(c *gin.Context) {
	h.supportText(c, middleware.GetUserFromContext(c).Email, ds.SenderUser)
}

// SendSupportAttachment отправляет файл в поддержку
// @Summary Файл в чат поддержки
// @Tags Support
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Param file formData file true "Файл"
// @Param text formData string false "Подпись"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Router /api/support/messages/attachments [post]
func (h *Handler) SendSupportAttachment(c *gin.Context) {
	h.supportFile(c, middleware.GetUserFromContext(c).Email, ds.SenderUser)
}

func (h *Handler) supportEmail(c *gin.Context) (string, bool) {
	addr, err := mail.ParseAddress(c.Param("email"))
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid email")
		return "", false
	}
	return addr.Address, true
}

// GetSupportThread возвращает переписку с клиентом
// @Summary Чат поддержки клиента
// @Tags Admin
// @Produce json
// @Param email path string true "Email клиента"
// @Success 200 {array} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/admin/support/{email}/messages [get]
func (h *Handler) GetSupportThread(c *gin.Context) {
	email, ok := h.supportEmail(c)
	if !ok {
		return
	}
	h.supportThread(c, email)
}

// ReplySupport отвечает клиенту от имени поддержки
// @Summary Ответ поддержки
// @Tags Admin
// @Accept json
// @Produce json
// @Param email path string true "Email клиента"
// @Param request body dto.SendMessageRequest true "Текст"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/admin/support/{email}/messages [post]
func (h *Handler) ReplySupport(c *gin.Context) {
	email, ok := h.supportEmail(c)
	if !ok {
		return
	}
	h.supportText(c, email, ds.SenderAdmin)
}

// ReplySupportAttachment отправляет клиенту файл от имени поддержки
// @Summary Файл в чат поддержки клиента
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param email path string true "Email клиента"
// @Param file formData file true "Файл"
// @Param text formData string false "Подпись"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/admin/support/{email}/attachments [post]
func (h *Handler) ReplySupportAttachment(c *gin.Context) {
	email, ok := h.supportEmail(c)
	if !ok {
		return
	}
	h.supportFile(c, email, ds.SenderAdmin)
}
