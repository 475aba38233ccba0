package fundingmock

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	domain "bank-loan-management/internal/domain/funding"
)

var errUnimplemented = errors.New("fundingmock: method not implemented")

// Repo is a function-backed mock that satisfies funding.Repository.
type Repo struct {
	AddFn                  func(ctx context.Context, lenderID uint64, amount decimal.Decimal) error
	GetByLenderFn          func(ctx context.Context, lenderID uint64) (*domain.Account, error)
	GetByLenderForUpdateFn func(ctx context.Context, lenderID uint64) (*domain.Account, error)
	SaveFn                 func(ctx context.Context, a *domain.Account) error
	TotalFundsFn           func(ctx context.Context) (decimal.Decimal, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Add(ctx context.Context, lenderID uint64, amount decimal.Decimal) error {
	if m.AddFn != nil {
		return m.AddFn(ctx, lenderID, amount)
	}
	return nil
}

func (m *Repo) GetByLender(ctx context.Context, lenderID uint64) (*domain.Account, error) {
	if m.GetByLenderFn != nil {
		return m.GetByLenderFn(ctx, lenderID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByLenderForUpdate(ctx context.Context, lenderID uint64) (*domain.Account, error) {
	if m.GetByLenderForUpdateFn != nil {
		return m.GetByLenderForUpdateFn(ctx, lenderID)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, a *domain.Account) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) TotalFunds(ctx context.Context) (decimal.Decimal, error) {
	if m.TotalFundsFn != nil {
		return m.TotalFundsFn(ctx)
	}
	return decimal.Zero, errUnimplemented
}
