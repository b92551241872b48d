package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"paperhelp/internal/app/config"
	"paperhelp/internal/app/ds"
	"paperhelp/internal/app/dto"
	"paperhelp/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrRevokedToken     = errors.New("token revoked")
	ErrBlacklistMissing = errors.New("token blacklist is not configured")
)

// TokenBlacklist хранит отозванные токены до окончания их срока действия.
// Реализация: redis.Client.
type TokenBlacklist interface {
	WriteJWTToBlacklist(ctx context.Context, jwtStr string, ttl time.Duration) error
	CheckJWTInBlacklist(ctx context.Context, jwtStr string) (bool, error)
}

type AuthMiddleware struct {
	Blacklist  TokenBlacklist // nil: выход из сессии не отзывает токен
	Config     config.JWTConfig
	AdminEmail string
}

func NewAuthMiddleware(blacklist TokenBlacklist, cfg config.JWTConfig, adminEmail string) *AuthMiddleware {
	if cfg.ExpiresIn <= 0 {
		cfg.ExpiresIn = 24 * time.Hour
	}
	if cfg.SigningMethod == nil {
		cfg.SigningMethod = jwt.SigningMethodHS256
	}
	return &AuthMiddleware{
		Blacklist:  blacklist,
		Config:     cfg,
		AdminEmail: adminEmail,
	}
}

// IssueToken выдаёт токен сессии. Пароль не проверяется: вход имитируется.
func (am *AuthMiddleware) IssueToken(u *CurrentUser) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(am.Config.ExpiresIn)

	token := jwt.NewWithClaims(am.Config.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expiresAt.Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "paperhelp",
		},
		Email: u.Email,
		Role:  u.Role,
	})

	accessToken, err := token.SignedString([]byte(am.Config.Token))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return accessToken, expiresAt, nil
}

// BearerToken достаёт токен из заголовка Authorization
func BearerToken(gCtx *gin.Context) string {
	return strings.TrimSpace(strings.TrimPrefix(gCtx.GetHeader("Authorization"), "Bearer "))
}

// WithCurrentUser кладёт в контекст пользователя из токена. Без токена или
// с недействительным токеном запрос остаётся анонимным, доступ режет WithRoleCheck.
func (am *AuthMiddleware) WithCurrentUser() gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		if jwtStr := BearerToken(gCtx); jwtStr != "" {
			user, err := am.userFromToken(gCtx.Request.Context(), jwtStr)
			if err != nil {
				logrus.Debugf("token rejected: %v", err)
			} else {
				gCtx.Set(currentUserKey, user)
			}
		}
		gCtx.Next()
	}
}

func (am *AuthMiddleware) userFromToken(ctx context.Context, jwtStr string) (*CurrentUser, error) {
	if am.Blacklist != nil {
		revoked, err := am.Blacklist.CheckJWTInBlacklist(ctx, jwtStr)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, ErrRevokedToken
		}
	}

	claims, err := am.parseJWTToken(jwtStr)
	if err != nil {
		return nil, err
	}

	// Роль в токене должна совпадать с текущей настройкой администратора
	user := NewCurrentUser(claims.Email, am.AdminEmail)
	if user.Role != claims.Role {
		return nil, ErrInvalidToken
	}
	return user, nil
}

// RevokeToken заносит токен в чёрный список до окончания срока действия
func (am *AuthMiddleware) RevokeToken(ctx context.Context, jwtStr string) error {
	claims, err := am.parseJWTToken(jwtStr)
	if err != nil {
		return err
	}
	if am.Blacklist == nil {
		return ErrBlacklistMissing
	}

	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl <= 0 {
		return nil
	}
	return am.Blacklist.WriteJWTToBlacklist(ctx, jwtStr, ttl)
}

// parseJWTToken парсит и валидирует JWT токен
func (am *AuthMiddleware) parseJWTToken(tokenString string) (*ds.JWTClaims, error) {
	claims := &ds.JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != am.Config.SigningMethod.Alg() {
			return nil, fmt.Errorf("unexpected signing method %s", token.Method.Alg())
		}
		return []byte(am.Config.Token), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Email == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// WithRoleCheck пропускает запрос, только если роль текущего пользователя
// входит в assignedRoles. Гость получает 401, чужая роль 403.
func WithRoleCheck(assignedRoles ...role.Role) gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		user := GetUserFromContext(gCtx)
		if user == nil {
			gCtx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Status:  "fail",
				Message: "sign in required",
			})
			return
		}

		if len(assignedRoles) > 0 && !hasRequiredRole(user.Role, assignedRoles) {
			gCtx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Status:  "fail",
				Message: "not enough rights",
			})
			return
		}

		gCtx.Next()
	}
}

// hasRequiredRole проверяет, есть ли у пользователя необходимая роль
func hasRequiredRole(userRole role.Role, requiredRoles []role.Role) bool {
	for _, requiredRole := range requiredRoles {
		if userRole == requiredRole {
			return true
		}
	}
	return false
}
