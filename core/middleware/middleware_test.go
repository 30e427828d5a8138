package middleware

import (
	"honeydew-api/core/config"
	"honeydew-api/core/constants"
	"honeydew-api/core/utils"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if _, err := config.Load(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func runAuth(t *testing.T, decorate func(*http.Request)) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if decorate != nil {
		decorate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := New(nil)
	handler := mw.AuthMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return rec, handler(c)
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	_, err := runAuth(t, nil)

	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthMiddleware_GarbageBearerToken(t *testing.T) {
	_, err := runAuth(t, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer garbage")
	})

	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthMiddleware_ValidCookieToken(t *testing.T) {
	token, err := utils.GenerateToken(uuid.New())
	require.NoError(t, err)

	rec, handlerErr := runAuth(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: constants.AuthCookieName, Value: token})
	})

	require.NoError(t, handlerErr)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_ValidBearerToken(t *testing.T) {
	token, err := utils.GenerateToken(uuid.New())
	require.NoError(t, err)

	rec, handlerErr := runAuth(t, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	})

	require.NoError(t, handlerErr)
	assert.Equal(t, http.StatusOK, rec.Code)
}
