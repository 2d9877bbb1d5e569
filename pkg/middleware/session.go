package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const SessionCookie = "AGRI_SESSION"

type SessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssueSession builds the signed session cookie for a logged-in user.
func IssueSession(uid, role, secret string, ttl time.Duration) (*http.Cookie, error) {
	claims := SessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Now().Add(ttl),
	}, nil
}

// Session reads the session cookie and puts uid/role into the echo
// context. Requests without a valid cookie get 401.
func Session(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(SessionCookie)
			if err != nil || ck.Value == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}
			claims := &SessionClaims{}
			tok, err := jwt.ParseWithClaims(ck.Value, claims, func(t *jwt.Token) (any, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}
			c.Set("uid", claims.Subject)
			c.Set("role", claims.Role)
			return next(c)
		}
	}
}

// RequireRole guards a group to a single role. Must run after Session.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			r, _ := c.Get("role").(string)
			if r != role {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}
			return next(c)
		}
	}
}
