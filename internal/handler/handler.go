package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"edumath-pro/internal/dto"
	"edumath-pro/internal/model"
)

// httpError translates the service error taxonomy for the transport:
// auth gating becomes a sign-in prompt, validation a 400 with the message.
func httpError(err error) error {
	switch {
	case errors.Is(err, model.ErrAuthRequired):
		return echo.NewHTTPError(http.StatusUnauthorized, "Please sign in first")
	case errors.Is(err, model.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}

// stateOf snapshots a session for the client, consuming any one-time
// notice in the process.
func stateOf(sess *model.Session) *dto.StateResponse {
	return &dto.StateResponse{
		Authenticated: sess.Authenticated,
		User:          sess.User,
		Plan:          sess.Plan,
		Panel:         string(sess.View.Active()),
		Subject:       sess.View.Subject(),
		Lesson:        sess.View.Lesson(),
		Notice:        sess.ConsumeNotice(),
	}
}
