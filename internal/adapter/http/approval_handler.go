package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"bank-loan-management/internal/usecase/approval"
)

type ApprovalHandler struct{ uc *approval.Usecase }

func NewApprovalHandler(uc *approval.Usecase) *ApprovalHandler { return &ApprovalHandler{uc: uc} }

func (h *ApprovalHandler) ListPending(c echo.Context) error {
	apps, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, apps)
}

type approveReq struct {
	AgreementID  uint64          `json:"agreement_id" validate:"required"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	// Canonical date `YYYY-MM-DD` (aligns with the DATE column)
	RepaymentDeadline string          `json:"repayment_deadline" validate:"required,datetime=2006-01-02"`
	Lender            uint64          `json:"lender" validate:"required"`
	MinPayment        decimal.Decimal `json:"min_payment"`
	MaxPayment        decimal.Decimal `json:"max_payment"`
}

func (h *ApprovalHandler) Approve(c echo.Context) error {
	var req approveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid data format or missing data"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid data format or missing data",
			Details: ToFieldErrors(err),
		})
	}
	deadline, err := time.ParseInLocation("2006-01-02", req.RepaymentDeadline, time.UTC)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid data format or missing data"})
	}
	// Deadline on its date is valid through end of that day.
	deadline = deadline.Add(24*time.Hour - time.Nanosecond)

	agr, err := h.uc.Approve(c.Request().Context(), approval.ApproveInput{
		AgreementID:       req.AgreementID,
		InterestRate:      req.InterestRate,
		RepaymentDeadline: deadline,
		LenderID:          req.Lender,
		MinPayment:        req.MinPayment,
		MaxPayment:        req.MaxPayment,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, agr)
}
