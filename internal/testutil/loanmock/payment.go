package loanmock

import (
	"context"

	"github.com/shopspring/decimal"

	domain "bank-loan-management/internal/domain/loan"
)

// PaymentRepo is a function-backed mock for loan.PaymentRepository.
type PaymentRepo struct {
	CreateFn          func(ctx context.Context, p *domain.Payment) error
	ListByBorrowerFn  func(ctx context.Context, borrowerID uint64) ([]domain.Payment, error)
	SumForAgreementFn func(ctx context.Context, agreementID uint64) (decimal.Decimal, error)
}

var _ domain.PaymentRepository = (*PaymentRepo)(nil)

func (m *PaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *PaymentRepo) ListByBorrower(ctx context.Context, borrowerID uint64) ([]domain.Payment, error) {
	if m.ListByBorrowerFn != nil {
		return m.ListByBorrowerFn(ctx, borrowerID)
	}
	return nil, errUnimplemented
}

func (m *PaymentRepo) SumForAgreement(ctx context.Context, agreementID uint64) (decimal.Decimal, error) {
	if m.SumForAgreementFn != nil {
		return m.SumForAgreementFn(ctx, agreementID)
	}
	return decimal.Zero, errUnimplemented
}
