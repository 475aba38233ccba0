package funding

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"bank-loan-management/internal/domain/fault"
	fundingDomain "bank-loan-management/internal/domain/funding"
	loanDomain "bank-loan-management/internal/domain/loan"
	"bank-loan-management/internal/domain/uow"
	userDomain "bank-loan-management/internal/domain/user"
)

type Usecase struct {
	funds      fundingDomain.Repository
	agreements loanDomain.AgreementRepository
	uow        uow.UnitOfWork
}

func NewUsecase(funds fundingDomain.Repository, agreements loanDomain.AgreementRepository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{funds: funds, agreements: agreements, uow: tx}
}

// Deposit credits the provider's funding account, creating it on
// first use. The credit itself is an atomic upsert, so two concurrent
// first deposits both land instead of racing on the insert; the
// locked read-back returns the settled balance.
func (u *Usecase) Deposit(ctx context.Context, ident userDomain.Identity, amount decimal.Decimal) (*fundingDomain.Account, error) {
	if !amount.IsPositive() {
		return nil, fault.Invalid("Fund amount must be positive.")
	}

	var out *fundingDomain.Account
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Funds.Add(ctx, ident.UserID, amount); err != nil {
			return err
		}
		acct, err := r.Funds.GetByLenderForUpdate(ctx, ident.UserID)
		if err != nil {
			return err
		}
		out = acct
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type OverviewDTO struct {
	Fund  *fundingDomain.Account `json:"fund"`
	Loans []loanDomain.Agreement `json:"loans"`
}

// Overview shows a provider their own pool and agreements; an
// employee sees the aggregate pool across all providers and every
// agreement.
func (u *Usecase) Overview(ctx context.Context, ident userDomain.Identity) (*OverviewDTO, error) {
	switch ident.Role {
	case userDomain.RoleProvider:
		acct, err := u.funds.GetByLender(ctx, ident.UserID)
		if err != nil {
			if errors.Is(err, fundingDomain.ErrNotFound) {
				return nil, fault.NotFound("Funding account not found")
			}
			return nil, err
		}
		loans, err := u.agreements.ListByLender(ctx, ident.UserID)
		if err != nil {
			return nil, err
		}
		return &OverviewDTO{Fund: acct, Loans: loans}, nil

	case userDomain.RoleEmployee:
		total, err := u.funds.TotalFunds(ctx)
		if err != nil {
			return nil, err
		}
		loans, err := u.agreements.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return &OverviewDTO{
			Fund:  &fundingDomain.Account{TotalFunds: total},
			Loans: loans,
		}, nil
	}

	return nil, fault.Forbidden("You are not authorized to view this information.")
}
