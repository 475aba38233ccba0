package loan

import (
	"context"

	"github.com/shopspring/decimal"
)

type ApplicationRepository interface {
	Create(ctx context.Context, a *Application) error
	GetByID(ctx context.Context, id uint64) (*Application, error)
	// GetByIDForUpdate locks the row for the rest of the transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Application, error)
	ListAll(ctx context.Context) ([]Application, error)
	ListPending(ctx context.Context) ([]Application, error)
	ListPendingByBorrower(ctx context.Context, borrowerID uint64) ([]Application, error)
	Save(ctx context.Context, a *Application) error
	Delete(ctx context.Context, id uint64) error
}

type AgreementRepository interface {
	Create(ctx context.Context, a *Agreement) error
	GetByID(ctx context.Context, id uint64) (*Agreement, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Agreement, error)
	ListAll(ctx context.Context) ([]Agreement, error)
	ListByLender(ctx context.Context, lenderID uint64) ([]Agreement, error)
	ListByBorrower(ctx context.Context, borrowerID uint64) ([]Agreement, error)
	Save(ctx context.Context, a *Agreement) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *Payment) error
	ListByBorrower(ctx context.Context, borrowerID uint64) ([]Payment, error)
	// SumForAgreement totals every payment recorded against one agreement.
	SumForAgreement(ctx context.Context, agreementID uint64) (decimal.Decimal, error)
}
