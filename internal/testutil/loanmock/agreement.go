package loanmock

import (
	"context"

	domain "bank-loan-management/internal/domain/loan"
)

// AgreementRepo is a function-backed mock for loan.AgreementRepository.
type AgreementRepo struct {
	CreateFn           func(ctx context.Context, a *domain.Agreement) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Agreement, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Agreement, error)
	ListAllFn          func(ctx context.Context) ([]domain.Agreement, error)
	ListByLenderFn     func(ctx context.Context, lenderID uint64) ([]domain.Agreement, error)
	ListByBorrowerFn   func(ctx context.Context, borrowerID uint64) ([]domain.Agreement, error)
	SaveFn             func(ctx context.Context, a *domain.Agreement) error
}

var _ domain.AgreementRepository = (*AgreementRepo)(nil)

func (m *AgreementRepo) Create(ctx context.Context, a *domain.Agreement) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *AgreementRepo) GetByID(ctx context.Context, id uint64) (*domain.Agreement, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *AgreementRepo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Agreement, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *AgreementRepo) ListAll(ctx context.Context) ([]domain.Agreement, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *AgreementRepo) ListByLender(ctx context.Context, lenderID uint64) ([]domain.Agreement, error) {
	if m.ListByLenderFn != nil {
		return m.ListByLenderFn(ctx, lenderID)
	}
	return nil, errUnimplemented
}

func (m *AgreementRepo) ListByBorrower(ctx context.Context, borrowerID uint64) ([]domain.Agreement, error) {
	if m.ListByBorrowerFn != nil {
		return m.ListByBorrowerFn(ctx, borrowerID)
	}
	return nil, errUnimplemented
}

func (m *AgreementRepo) Save(ctx context.Context, a *domain.Agreement) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}
