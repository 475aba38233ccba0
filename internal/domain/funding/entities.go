package funding

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound          = errors.New("funding account not found")
	ErrInsufficientFunds = errors.New("insufficient budget")
)

// Account is a provider's capital pool. One per lender; the loan
// principal is debited from it at approval time.
type Account struct {
	LenderID   uint64          `gorm:"primaryKey;column:lender_id;autoIncrement:false" json:"lender"`
	TotalFunds decimal.Decimal `gorm:"column:total_funds;type:decimal(15,2)" json:"total_funds"`
}

func (Account) TableName() string { return "funding_accounts" }
