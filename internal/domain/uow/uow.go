package uow

import (
	"context"

	"bank-loan-management/internal/domain/funding"
	"bank-loan-management/internal/domain/loan"
	"bank-loan-management/internal/domain/user"
)

type Repos struct {
	Users        user.Repository
	Applications loan.ApplicationRepository
	Agreements   loan.AgreementRepository
	Payments     loan.PaymentRepository
	Funds        funding.Repository
}

// UnitOfWork runs fn inside one DB transaction with every repo bound
// to it. Approval and payment flows lock their rows via the
// ...ForUpdate getters so concurrent check-then-write sequences
// serialize instead of racing.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
