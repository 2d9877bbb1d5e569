package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrilink/entities"
)

const testSecret = "test-secret"

func doRequest(t *testing.T, handler echo.HandlerFunc, mw []echo.MiddlewareFunc, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := handler
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	require.NoError(t, h(c))
	return rec
}

func TestSessionRoundTrip(t *testing.T) {
	ck, err := IssueSession("u1", entities.RoleFarmer, testSecret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, SessionCookie, ck.Name)
	assert.True(t, ck.HttpOnly)

	var gotUID, gotRole string
	handler := func(c echo.Context) error {
		gotUID, _ = c.Get("uid").(string)
		gotRole, _ = c.Get("role").(string)
		return c.NoContent(http.StatusOK)
	}
	rec := doRequest(t, handler, []echo.MiddlewareFunc{Session(testSecret)}, ck)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", gotUID)
	assert.Equal(t, entities.RoleFarmer, gotRole)
}

func TestSessionRejectsMissingOrBadCookie(t *testing.T) {
	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	rec := doRequest(t, handler, []echo.MiddlewareFunc{Session(testSecret)}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, handler, []echo.MiddlewareFunc{Session(testSecret)},
		&http.Cookie{Name: SessionCookie, Value: "not-a-token"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// token signed with a different secret
	ck, err := IssueSession("u1", entities.RoleFarmer, "other-secret", time.Hour)
	require.NoError(t, err)
	rec = doRequest(t, handler, []echo.MiddlewareFunc{Session(testSecret)}, ck)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionRejectsExpiredToken(t *testing.T) {
	ck, err := IssueSession("u1", entities.RoleFarmer, testSecret, -time.Minute)
	require.NoError(t, err)

	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	rec := doRequest(t, handler, []echo.MiddlewareFunc{Session(testSecret)}, ck)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	ck, err := IssueSession("u1", entities.RoleFarmer, testSecret, time.Hour)
	require.NoError(t, err)
	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	rec := doRequest(t, handler,
		[]echo.MiddlewareFunc{Session(testSecret), RequireRole(entities.RoleFarmer)}, ck)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler,
		[]echo.MiddlewareFunc{Session(testSecret), RequireRole(entities.RoleAdmin)}, ck)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
