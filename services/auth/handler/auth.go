package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barbershop-uz/backend/internal/pkg/models"
	"github.com/barbershop-uz/backend/internal/utils"
	"github.com/barbershop-uz/backend/services/auth"
)

// RegisterStep1 validates the payload and emails a verification code
func (h *AuthHandler) RegisterStep1(c echo.Context) error {
	var request models.RegisterStep1Request
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	response, err := h.authUC.RegisterStep1(c.Request().Context(), &request)
	if err != nil {
		return authErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, response.Message, response)
}

// RegisterStep2 confirms the code and creates the user
func (h *AuthHandler) RegisterStep2(c echo.Context) error {
	var request models.RegisterStep2Request
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	response, err := h.authUC.RegisterStep2(c.Request().Context(), &request)
	if err != nil {
		return authErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, response.Message, response)
}

// Login authenticates with email and password
func (h *AuthHandler) Login(c echo.Context) error {
	var request models.LoginRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	response, err := h.authUC.Login(c.Request().Context(), &request)
	if err != nil {
		return authErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, response.Message, response)
}

// ResetPasswordStep1 emails a reset code to an existing account
func (h *AuthHandler) ResetPasswordStep1(c echo.Context) error {
	var request models.ResetPasswordStep1Request
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	response, err := h.authUC.ResetPasswordStep1(c.Request().Context(), &request)
	if err != nil {
		return authErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, response.Message, nil)
}

// ResetPasswordStep2 confirms the code and sets the new password
func (h *AuthHandler) ResetPasswordStep2(c echo.Context) error {
	var request models.ResetPasswordStep2Request
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	response, err := h.authUC.ResetPasswordStep2(c.Request().Context(), &request)
	if err != nil {
		return authErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, response.Message, nil)
}

// authErrorResponse maps service errors onto HTTP statuses. All auth flow
// failures are client errors; anything unrecognized is a server fault.
func authErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, auth.ErrValidation),
		errors.Is(err, auth.ErrDuplicateEmail),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidOrExpiredCode),
		errors.Is(err, auth.ErrUserNotFound):
		return utils.BadRequestResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}
