package controller

import (
	"honeydew-api/core/constants"
	"honeydew-api/core/controller"
	"honeydew-api/core/errors"
	"honeydew-api/modules/auth/dto"
	"honeydew-api/modules/auth/service"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// AuthController handles authentication HTTP requests
type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

func NewAuthController(svc service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    svc,
	}
}

func setAuthCookie(ctx echo.Context, token string) {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(constants.TokenExpiry / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearAuthCookie(ctx echo.Context) {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Signup handles POST /auth/signup
// @Summary Create account
// @Description Register a new user and start a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup payload"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /public/auth/signup [post]
func (c *AuthController) Signup(ctx echo.Context) error {
	var req dto.SignupRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.AuthService.Signup(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	setAuthCookie(ctx, result.Token)
	return c.CreatedResponse(ctx, result, "Account created")
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Verify credentials and start a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login payload"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} errors.AppError
// @Router /public/auth/login [post]
func (c *AuthController) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.AuthService.Login(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	setAuthCookie(ctx, result.Token)
	return c.SuccessResponse(ctx, result, "Logged in")
}

// Logout handles POST /auth/logout
// @Summary Log out
// @Description Revoke the current session token
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} controller.SuccessResponse
// @Router /private/auth/logout [post]
func (c *AuthController) Logout(ctx echo.Context) error {
	token := ""
	if cookie, err := ctx.Cookie(constants.AuthCookieName); err == nil {
		token = cookie.Value
	}

	if token != "" {
		if appErr := c.AuthService.Logout(ctx.Request().Context(), token); appErr != nil {
			return c.ErrorResponse(ctx, appErr)
		}
	}

	clearAuthCookie(ctx)
	return c.SuccessResponse(ctx, nil, "Logged out")
}

// Me handles GET /auth/me
// @Summary Current user
// @Description Return the authenticated user's profile
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} errors.AppError
// @Router /private/auth/me [get]
func (c *AuthController) Me(ctx echo.Context) error {
	userID, err := controller.UserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.AuthService.Me(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
