package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"bank-loan-management/internal/adapter/middleware"
	"bank-loan-management/internal/usecase/funding"
)

type FundsHandler struct{ uc *funding.Usecase }

func NewFundsHandler(uc *funding.Usecase) *FundsHandler { return &FundsHandler{uc: uc} }

type depositReq struct {
	// Accepts a JSON number or a numeric string.
	TotalFunds decimal.Decimal `json:"total_funds"`
}

func (h *FundsHandler) Deposit(c echo.Context) error {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing authorization"})
	}
	var req depositReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid budget format"})
	}
	acct, err := h.uc.Deposit(c.Request().Context(), ident, req.TotalFunds)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, acct)
}

func (h *FundsHandler) Overview(c echo.Context) error {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing authorization"})
	}
	dto, err := h.uc.Overview(c.Request().Context(), ident)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
