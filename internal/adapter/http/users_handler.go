package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	useruc "bank-loan-management/internal/usecase/user"
)

type UsersHandler struct{ uc *useruc.Usecase }

func NewUsersHandler(uc *useruc.Usecase) *UsersHandler { return &UsersHandler{uc: uc} }

func (h *UsersHandler) List(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

type deleteUserReq struct {
	ID uint64 `json:"id"`
}

func (h *UsersHandler) Delete(c echo.Context) error {
	var req deleteUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if req.ID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "User ID is required"})
	}
	if err := h.uc.Delete(c.Request().Context(), req.ID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
