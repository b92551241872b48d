package handler

import (
	"errors"
	"net/http"
	"time"

	"paperhelp/internal/app/ds"
	"paperhelp/internal/app/dto"
	"paperhelp/internal/app/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func sessionResponse(u *middleware.CurrentUser) dto.SessionResponse {
	return dto.SessionResponse{
		Email:  u.Email,
		Name:   u.Name,
		Avatar: u.Avatar,
		Role:   u.Role.String(),
	}
}

// StartSession имитирует вход по email
// @Summary Вход в демо-сессию
// @Description Пароль не проверяется. Роль admin выдаётся только адресу администратора. Возвращает JWT, который передаётся в заголовке Authorization: Bearer
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.SessionRequest true "Email"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/session [post]
func (h *Handler) StartSession(c *gin.Context) {
	var req dto.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	u := middleware.NewCurrentUser(req.Email, h.Auth.AdminEmail)

	// Время входа нужно для статуса клиента в списке покупателей
	err := h.Store.TouchUser(&ds.User{
		Email:    u.Email,
		FullName: u.Name,
		Avatar:   u.Avatar,
		IsAdmin:  u.IsAdmin(),
	}, h.now())
	if err != nil {
		logrus.Error("Error recording login: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "internal error")
		return
	}

	accessToken, expiresAt, err := h.Auth.IssueToken(u)
	if err != nil {
		logrus.Error("Error issuing token: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "internal error")
		return
	}

	logrus.Infof("session started for %s (%s)", u.Email, u.Role)
	res := sessionResponse(u)
	res.Token = accessToken
	res.TokenType = "Bearer"
	res.ExpiresIn = int(time.Until(expiresAt).Seconds())
	c.JSON(http.StatusOK, res)
}

// GetSession возвращает текущего пользователя
// @Summary Текущий пользователь
// @Tags Session
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/session [get]
func (h *Handler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, sessionResponse(middleware.GetUserFromContext(c)))
}

// EndSession завершает сессию и отзывает токен
// @Summary Выход
// @Tags Session
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/session [delete]
func (h *Handler) EndSession(c *gin.Context) {
	err := h.Auth.RevokeToken(c.Request.Context(), middleware.BearerToken(c))
	switch {
	case errors.Is(err, middleware.ErrBlacklistMissing):
		// Без Redis токен остаётся действительным до истечения срока
		logrus.Warn("redis is not configured, token is not revoked")
	case err != nil:
		logrus.Error("Error revoking token: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to sign out")
		return
	}

	h.successResponse(c, http.StatusOK, "signed out", nil)
}
