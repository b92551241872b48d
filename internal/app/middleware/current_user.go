package middleware

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"paperhelp/internal/app/role"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

// capitalize переводит первую букву слова в верхний регистр
func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + w[size:]
}

// CurrentUser содержит информацию о текущем пользователе
type CurrentUser struct {
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Role   role.Role `json:"-"`
}

func (u *CurrentUser) IsAdmin() bool {
	return u != nil && u.Role == role.Admin
}

// NewCurrentUser строит пользователя по email. Имя берётся из локальной
// части адреса: jane.doe@example.com -> Jane Doe.
func NewCurrentUser(email, adminEmail string) *CurrentUser {
	email = strings.ToLower(strings.TrimSpace(email))
	local, _, _ := strings.Cut(email, "@")

	words := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	for i, w := range words {
		words[i] = capitalize(w)
	}

	u := &CurrentUser{
		Email:  email,
		Name:   strings.Join(words, " "),
		Avatar: "https://i.pravatar.cc/150?u=" + url.QueryEscape(local),
		Role:   role.Client,
	}
	if strings.EqualFold(email, adminEmail) {
		u.Role = role.Admin
		u.Name = "Admin Support"
		u.Avatar = "https://i.pravatar.cc/150?u=admin"
	}
	return u
}

// GetUserFromContext извлекает пользователя из контекста, nil для гостя
func GetUserFromContext(c *gin.Context) *CurrentUser {
	if user, exists := c.Get(currentUserKey); exists {
		if u, ok := user.(*CurrentUser); ok {
			return u
		}
	}
	return nil
}
