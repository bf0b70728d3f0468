package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"edumath-pro/internal/config"
	"edumath-pro/internal/model"
	"edumath-pro/internal/service"
)

const sessionContextKey = "session"

// Session resolves the caller's browser session on every request. The
// session id travels in a signed cookie; a missing or invalid cookie gets
// a fresh id. Resolution runs before any handler, so post-redirect
// recovery happens before anything else sees the session.
func Session(sessions service.SessionService, cfg *config.Session) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ""
			if cookie, err := c.Cookie(cfg.CookieName); err == nil {
				sid = parseSessionToken(cookie.Value, cfg.Secret)
			}

			if sid == "" {
				sid = uuid.NewString()
				if token, err := signSessionToken(sid, cfg.Secret); err == nil {
					c.SetCookie(&http.Cookie{
						Name:     cfg.CookieName,
						Value:    token,
						Path:     "/",
						HttpOnly: true,
						SameSite: http.SameSiteLaxMode,
					})
				}
			}

			sess := sessions.Resolve(c.Request().Context(), sid)
			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// CurrentSession returns the session resolved by the Session middleware.
func CurrentSession(c echo.Context) *model.Session {
	sess, _ := c.Get(sessionContextKey).(*model.Session)
	return sess
}

func signSessionToken(sid, secret string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  sid,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parseSessionToken(raw, secret string) string {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return ""
	}
	return claims.Subject
}
