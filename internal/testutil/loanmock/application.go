package loanmock

import (
	"context"
	"errors"

	domain "bank-loan-management/internal/domain/loan"
)

var errUnimplemented = errors.New("loanmock: method not implemented")

// ApplicationRepo is a function-backed mock for loan.ApplicationRepository.
type ApplicationRepo struct {
	CreateFn                func(ctx context.Context, a *domain.Application) error
	GetByIDFn               func(ctx context.Context, id uint64) (*domain.Application, error)
	GetByIDForUpdateFn      func(ctx context.Context, id uint64) (*domain.Application, error)
	ListAllFn               func(ctx context.Context) ([]domain.Application, error)
	ListPendingFn           func(ctx context.Context) ([]domain.Application, error)
	ListPendingByBorrowerFn func(ctx context.Context, borrowerID uint64) ([]domain.Application, error)
	SaveFn                  func(ctx context.Context, a *domain.Application) error
	DeleteFn                func(ctx context.Context, id uint64) error
}

var _ domain.ApplicationRepository = (*ApplicationRepo)(nil)

func (m *ApplicationRepo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *ApplicationRepo) GetByID(ctx context.Context, id uint64) (*domain.Application, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *ApplicationRepo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Application, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *ApplicationRepo) ListAll(ctx context.Context) ([]domain.Application, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *ApplicationRepo) ListPending(ctx context.Context) ([]domain.Application, error) {
	if m.ListPendingFn != nil {
		return m.ListPendingFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *ApplicationRepo) ListPendingByBorrower(ctx context.Context, borrowerID uint64) ([]domain.Application, error) {
	if m.ListPendingByBorrowerFn != nil {
		return m.ListPendingByBorrowerFn(ctx, borrowerID)
	}
	return nil, errUnimplemented
}

func (m *ApplicationRepo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *ApplicationRepo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
