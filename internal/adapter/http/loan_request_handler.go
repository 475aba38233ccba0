package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"bank-loan-management/internal/adapter/middleware"
	"bank-loan-management/internal/usecase/loanrequest"
)

type LoanRequestHandler struct{ uc *loanrequest.Usecase }

func NewLoanRequestHandler(uc *loanrequest.Usecase) *LoanRequestHandler {
	return &LoanRequestHandler{uc: uc}
}

func (h *LoanRequestHandler) List(c echo.Context) error {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing authorization"})
	}
	dto, err := h.uc.List(c.Request().Context(), ident)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type createLoanRequestReq struct {
	LoanAmount      decimal.Decimal `json:"loan_amount"`
	TermsConditions string          `json:"terms_conditions" validate:"required,max=1000"`
}

func (h *LoanRequestHandler) Create(c echo.Context) error {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing authorization"})
	}
	var req createLoanRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid data"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid data", Details: ToFieldErrors(err)})
	}
	app, err := h.uc.Create(c.Request().Context(), ident, req.LoanAmount, req.TermsConditions)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, app)
}

type deleteLoanRequestReq struct {
	LoanRequestID uint64 `json:"loanRequestId"`
}

func (h *LoanRequestHandler) Delete(c echo.Context) error {
	var req deleteLoanRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if req.LoanRequestID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Loan request ID is required"})
	}
	if err := h.uc.Delete(c.Request().Context(), req.LoanRequestID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Request deleted successfully"})
}
