package funding

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	// Add credits the lender's account atomically, creating the row on
	// first use. Safe against concurrent first deposits.
	Add(ctx context.Context, lenderID uint64, amount decimal.Decimal) error
	GetByLender(ctx context.Context, lenderID uint64) (*Account, error)
	GetByLenderForUpdate(ctx context.Context, lenderID uint64) (*Account, error)
	Save(ctx context.Context, a *Account) error
	// TotalFunds sums every account's balance (employee overview).
	TotalFunds(ctx context.Context) (decimal.Decimal, error)
}
