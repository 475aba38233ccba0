package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	loanDomain "bank-loan-management/internal/domain/loan"
	"bank-loan-management/internal/domain/uow"
	userDomain "bank-loan-management/internal/domain/user"
	"bank-loan-management/internal/testutil/loanmock"
	"bank-loan-management/internal/testutil/uowmock"
	"bank-loan-management/internal/usecase/payment"
)

// paymentFixture wires one approved 5000 loan at 5% for borrower 7
// with min 100 / max 1000 and nothing repaid yet.
func paymentFixture() *PaymentHandler {
	agr := &loanDomain.Agreement{
		AgreementID:  1,
		LenderID:     2,
		InterestRate: dec("0.05"),
		MinPayment:   dec("100"),
		MaxPayment:   dec("1000"),
	}
	payments := &loanmock.PaymentRepo{
		SumForAgreementFn: func(ctx context.Context, agreementID uint64) (decimal.Decimal, error) {
			return decimal.Zero, nil
		},
		CreateFn: func(ctx context.Context, p *loanDomain.Payment) error {
			p.PaymentID = 1
			return nil
		},
		ListByBorrowerFn: func(ctx context.Context, borrowerID uint64) ([]loanDomain.Payment, error) {
			return []loanDomain.Payment{{PaymentID: 1, LoanID: 1, PaymentAmount: dec("500")}}, nil
		},
	}
	r := uow.Repos{
		Agreements: &loanmock.AgreementRepo{
			GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*loanDomain.Agreement, error) {
				if id != agr.AgreementID {
					return nil, loanDomain.ErrAgreementNotFound
				}
				return agr, nil
			},
		},
		Applications: &loanmock.ApplicationRepo{
			GetByIDFn: func(ctx context.Context, id uint64) (*loanDomain.Application, error) {
				return &loanDomain.Application{ApplicationID: id, BorrowerID: 7, LoanAmount: dec("5000"), Approved: true}, nil
			},
		},
		Payments: payments,
	}
	return NewPaymentHandler(payment.NewUsecase(payments, uowmock.New(r)))
}

func TestPay_Accepted(t *testing.T) {
	h := paymentFixture()

	e := newEchoWithValidator()
	c, rec := newJSONContext(e, http.MethodPost, "/loan-payments/", `{"loan": 1, "payment_amount": 500}`)
	asIdentity(c, 7, userDomain.RoleCustomer)

	if err := h.Pay(c); err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var p loanDomain.Payment
	decodeBody(t, rec, &p)
	if p.LoanID != 1 || !p.PaymentAmount.Equal(dec("500")) {
		t.Fatalf("unexpected payment: %+v", p)
	}
}

func TestPay_MissingLoanField(t *testing.T) {
	h := paymentFixture()

	e := newEchoWithValidator()
	c, rec := newJSONContext(e, http.MethodPost, "/loan-payments/", `{"payment_amount": 500}`)
	asIdentity(c, 7, userDomain.RoleCustomer)

	if err := h.Pay(c); err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPay_OutOfRangeAmount(t *testing.T) {
	h := paymentFixture()

	e := newEchoWithValidator()
	c, rec := newJSONContext(e, http.MethodPost, "/loan-payments/", `{"loan": 1, "payment_amount": 10000}`)
	asIdentity(c, 7, userDomain.RoleCustomer)

	if err := h.Pay(c); err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["error"] != "Payment must be within the allowed range" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestPay_WrongBorrower(t *testing.T) {
	h := paymentFixture()

	e := newEchoWithValidator()
	c, rec := newJSONContext(e, http.MethodPost, "/loan-payments/", `{"loan": 1, "payment_amount": 500}`)
	asIdentity(c, 999, userDomain.RoleCustomer)

	if err := h.Pay(c); err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestPay_UnknownLoan(t *testing.T) {
	h := paymentFixture()

	e := newEchoWithValidator()
	c, rec := newJSONContext(e, http.MethodPost, "/loan-payments/", `{"loan": 404, "payment_amount": 500}`)
	asIdentity(c, 7, userDomain.RoleCustomer)

	if err := h.Pay(c); err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestPaymentsList(t *testing.T) {
	h := paymentFixture()

	e := newEchoWithValidator()
	c, rec := newJSONContext(e, http.MethodGet, "/loan-payments/", "")
	asIdentity(c, 7, userDomain.RoleCustomer)

	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var payments []loanDomain.Payment
	decodeBody(t, rec, &payments)
	if len(payments) != 1 || payments[0].LoanID != 1 {
		t.Fatalf("unexpected payments: %+v", payments)
	}
}
