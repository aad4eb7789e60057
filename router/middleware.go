package router

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	userIDKey = "userId"
	// anonymousUserID トークンなしのリクエストに割り当てるユーザーID
	anonymousUserID = "anonymous"
)

// TokenVerifier IDトークンの検証器
type TokenVerifier interface {
	// VerifyIDToken IDトークンを検証し、ユーザーIDを返します
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}

// UserAuthenticate リクエストユーザーを解決するミドルウェア
//
// Authorizationヘッダがある場合のみトークンを検証する。匿名の報告も受け付けるため、
// ヘッダがないリクエストは拒否しない。
func UserAuthenticate(v TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := anonymousUserID
			if ah := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(ah, "Bearer ") {
				if v == nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "token verification is not configured")
				}
				id, err := v.VerifyIDToken(c.Request().Context(), strings.TrimPrefix(ah, "Bearer "))
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				uid = id
			}
			c.Set(userIDKey, uid)
			return next(c)
		}
	}
}

func getRequestUserID(c echo.Context) string {
	if v, ok := c.Get(userIDKey).(string); ok {
		return v
	}
	return anonymousUserID
}
