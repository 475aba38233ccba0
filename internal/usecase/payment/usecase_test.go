package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"bank-loan-management/internal/domain/fault"
	loanDomain "bank-loan-management/internal/domain/loan"
	"bank-loan-management/internal/domain/uow"
	userDomain "bank-loan-management/internal/domain/user"
	"bank-loan-management/internal/testutil/loanmock"
	"bank-loan-management/internal/testutil/uowmock"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func borrower(id uint64) userDomain.Identity {
	return userDomain.Identity{UserID: id, Username: "borrower", Role: userDomain.RoleCustomer}
}

// payRepos sets up one approved 5000 loan at 5% (total due 5250) with
// min 100 / max 1000 and `paid` already repaid.
func payRepos(paid string) (uow.Repos, *loanDomain.Agreement, **loanDomain.Payment) {
	agr := &loanDomain.Agreement{
		AgreementID:  1,
		LenderID:     2,
		InterestRate: dec("0.05"),
		MinPayment:   dec("100"),
		MaxPayment:   dec("1000"),
	}
	var created *loanDomain.Payment

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
		Payments: &loanmock.PaymentRepo{
			SumForAgreementFn: func(ctx context.Context, agreementID uint64) (decimal.Decimal, error) {
				return dec(paid), nil
			},
			CreateFn: func(ctx context.Context, p *loanDomain.Payment) error {
				p.PaymentID = 1
				created = p
				return nil
			},
		},
	}
	return r, agr, &created
}

func TestPay_Success(t *testing.T) {
	r, agr, created := payRepos("0")
	uc := NewUsecase(r.Payments, uowmock.New(r))

	p, err := uc.Pay(context.Background(), borrower(7), 1, dec("500"))
	if err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if p.LoanID != 1 || !p.PaymentAmount.Equal(dec("500")) {
		t.Fatalf("unexpected payment: %+v", p)
	}
	if *created == nil {
		t.Fatal("payment row not persisted")
	}
	if agr.FullyPaid {
		t.Error("agreement marked fully paid too early")
	}
}

func TestPay_RejectsNonPositive(t *testing.T) {
	r, _, _ := payRepos("0")
	uc := NewUsecase(r.Payments, uowmock.New(r))

	for _, amt := range []string{"0", "-100"} {
		if _, err := uc.Pay(context.Background(), borrower(7), 1, dec(amt)); !errors.Is(err, fault.ErrInvalid) {
			t.Fatalf("amount %s: expected validation error, got %v", amt, err)
		}
	}
}

func TestPay_UnknownAgreement(t *testing.T) {
	r, _, _ := payRepos("0")
	uc := NewUsecase(r.Payments, uowmock.New(r))

	if _, err := uc.Pay(context.Background(), borrower(7), 404, dec("500")); !errors.Is(err, fault.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPay_NotBorrower(t *testing.T) {
	r, _, created := payRepos("0")
	uc := NewUsecase(r.Payments, uowmock.New(r))

	_, err := uc.Pay(context.Background(), borrower(999), 1, dec("500"))
	if !errors.Is(err, fault.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if *created != nil {
		t.Fatal("payment persisted for wrong borrower")
	}
}

func TestPay_OutsideRange(t *testing.T) {
	r, _, _ := payRepos("0")
	uc := NewUsecase(r.Payments, uowmock.New(r))
	ctx := context.Background()

	for _, amt := range []string{"99.99", "1000.01", "10000"} {
		if _, err := uc.Pay(ctx, borrower(7), 1, dec(amt)); !errors.Is(err, fault.ErrInvalid) {
			t.Fatalf("amount %s: expected validation error, got %v", amt, err)
		}
	}

	// Boundaries are inclusive.
	for _, amt := range []string{"100", "1000"} {
		r, _, _ := payRepos("0")
		uc := NewUsecase(r.Payments, uowmock.New(r))
		if _, err := uc.Pay(ctx, borrower(7), 1, dec(amt)); err != nil {
			t.Fatalf("amount %s should be accepted, got %v", amt, err)
		}
	}
}

func TestPay_ExceedsTotalDue(t *testing.T) {
	// 5250 due, 5000 already paid: 300 would overshoot.
	r, agr, created := payRepos("5000")
	uc := NewUsecase(r.Payments, uowmock.New(r))

	_, err := uc.Pay(context.Background(), borrower(7), 1, dec("300"))
	if !errors.Is(err, fault.ErrInvalid) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if *created != nil || agr.FullyPaid {
		t.Fatal("state mutated despite failed validation")
	}
}

func TestPay_ExactPayoffMarksFullyPaid(t *testing.T) {
	// 5250 due, 5000 paid: exactly 250 closes the loan.
	r, agr, created := payRepos("5000")
	savedFullyPaid := false
	r.Agreements.(*loanmock.AgreementRepo).SaveFn = func(ctx context.Context, a *loanDomain.Agreement) error {
		savedFullyPaid = a.FullyPaid
		return nil
	}
	uc := NewUsecase(r.Payments, uowmock.New(r))

	p, err := uc.Pay(context.Background(), borrower(7), 1, dec("250"))
	if err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if !agr.FullyPaid || !savedFullyPaid {
		t.Fatal("agreement not marked fully paid on exact payoff")
	}
	if *created == nil || !p.PaymentAmount.Equal(dec("250")) {
		t.Fatalf("unexpected payment: %+v", p)
	}
}

func TestListForBorrower(t *testing.T) {
	payments := &loanmock.PaymentRepo{
		ListByBorrowerFn: func(ctx context.Context, borrowerID uint64) ([]loanDomain.Payment, error) {
			if borrowerID != 7 {
				t.Fatalf("borrowerID = %d, want 7", borrowerID)
			}
			return []loanDomain.Payment{{PaymentID: 1, LoanID: 1}}, nil
		},
	}
	uc := NewUsecase(payments, uowmock.New(uow.Repos{}))

	got, err := uc.ListForBorrower(context.Background(), borrower(7))
	if err != nil {
		t.Fatalf("ListForBorrower: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
}
