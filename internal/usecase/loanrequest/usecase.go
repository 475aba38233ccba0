package loanrequest

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"bank-loan-management/internal/domain/fault"
	loanDomain "bank-loan-management/internal/domain/loan"
	userDomain "bank-loan-management/internal/domain/user"
)

type Usecase struct {
	apps       loanDomain.ApplicationRepository
	agreements loanDomain.AgreementRepository

	// scopeListing filters List down to the caller's own rows for
	// customers. Off by default: the upstream API returned the full
	// sets to every role.
	scopeListing bool
}

func NewUsecase(apps loanDomain.ApplicationRepository, agreements loanDomain.AgreementRepository, scopeListing bool) *Usecase {
	return &Usecase{apps: apps, agreements: agreements, scopeListing: scopeListing}
}

type ListDTO struct {
	LoanRequests []loanDomain.Application `json:"loanRequests"`
	Loans        []loanDomain.Agreement   `json:"loans"`
}

func (u *Usecase) List(ctx context.Context, ident userDomain.Identity) (*ListDTO, error) {
	if u.scopeListing && ident.Role == userDomain.RoleCustomer {
		apps, err := u.apps.ListPendingByBorrower(ctx, ident.UserID)
		if err != nil {
			return nil, err
		}
		loans, err := u.agreements.ListByBorrower(ctx, ident.UserID)
		if err != nil {
			return nil, err
		}
		return &ListDTO{LoanRequests: apps, Loans: loans}, nil
	}

	apps, err := u.apps.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := u.agreements.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ListDTO{LoanRequests: apps, Loans: loans}, nil
}

func (u *Usecase) Create(ctx context.Context, ident userDomain.Identity, amount decimal.Decimal, terms string) (*loanDomain.Application, error) {
	if !amount.IsPositive() {
		return nil, fault.Invalid("Amount must be positive")
	}
	if terms == "" || len(terms) > 1000 {
		return nil, fault.Invalid("Invalid data")
	}

	app := &loanDomain.Application{
		BorrowerID:      ident.UserID,
		LoanAmount:      amount,
		TermsConditions: terms,
	}
	if err := u.apps.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// Delete removes a pending application. Approved ones are permanent;
// no role restriction beyond authentication, matching the upstream
// endpoint.
func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	app, err := u.apps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, loanDomain.ErrApplicationNotFound) {
			return fault.NotFound("Loan request not found")
		}
		return err
	}
	if app.Approved {
		return fault.Invalid("Request was already approved")
	}
	return u.apps.Delete(ctx, id)
}
