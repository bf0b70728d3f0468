package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"edumath-pro/internal/dto"
	"edumath-pro/internal/middleware"
	"edumath-pro/internal/service"
)

type AuthHandler struct {
	sessionService service.SessionService
}

func NewAuthHandler(sessionService service.SessionService) *AuthHandler {
	return &AuthHandler{
		sessionService: sessionService,
	}
}

func (h *AuthHandler) SignIn(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.CurrentSession(c)

	var req dto.SignInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.sessionService.SignIn(ctx, sess, req.Method, req.Identifier); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, stateOf(sess))
}

func (h *AuthHandler) SendOTP(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	var req dto.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	phone, err := h.sessionService.SendOTP(sess, req.CountryCode, req.PhoneNumber)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, &dto.SendOTPResponse{Phone: phone})
}

func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.CurrentSession(c)

	var req dto.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.sessionService.VerifyOTP(ctx, sess, req.Code); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, stateOf(sess))
}

func (h *AuthHandler) SignOut(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.CurrentSession(c)

	h.sessionService.SignOut(ctx, sess)

	return c.JSON(http.StatusOK, stateOf(sess))
}

// State reports the current session state; the sign-in UI and the panels
// are driven entirely from this.
func (h *AuthHandler) State(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	return c.JSON(http.StatusOK, stateOf(sess))
}
