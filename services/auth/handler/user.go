package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/barbershop-uz/backend/internal/pkg/models"
	"github.com/barbershop-uz/backend/internal/utils"
	"github.com/barbershop-uz/backend/services/auth"
)

// ListUsers returns all registered users without password hashes
func (h *AuthHandler) ListUsers(c echo.Context) error {
	users, err := h.authUC.ListUsers(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Users retrieved successfully", users)
}

// UpdateUser applies a partial update to a user
func (h *AuthHandler) UpdateUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var update models.UserUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.authUC.UpdateUser(c.Request().Context(), id, &update)
	if err != nil {
		return userErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User updated successfully", user)
}

// DeleteUser removes a user
func (h *AuthHandler) DeleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	response, err := h.authUC.DeleteUser(c.Request().Context(), id)
	if err != nil {
		return userErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, response.Message, nil)
}

func userErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, auth.ErrUserNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, auth.ErrValidation):
		return utils.BadRequestResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}
