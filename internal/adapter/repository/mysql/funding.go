package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	fundingDomain "bank-loan-management/internal/domain/funding"
)

type FundingRepository struct{ db *gorm.DB }

func NewFundingRepository(db *gorm.DB) *FundingRepository { return &FundingRepository{db: db} }

// Add upserts the credit in one statement, so two concurrent first
// deposits cannot race on the insert.
func (r *FundingRepository) Add(ctx context.Context, lenderID uint64, amount decimal.Decimal) error {
	acct := &fundingDomain.Account{LenderID: lenderID, TotalFunds: amount}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "lender_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_funds": gorm.Expr("total_funds + ?", amount),
			}),
		}).
		Create(acct).Error
}

func (r *FundingRepository) GetByLender(ctx context.Context, lenderID uint64) (*fundingDomain.Account, error) {
	var out fundingDomain.Account
	res := r.db.WithContext(ctx).Where("lender_id = ?", lenderID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, fundingDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *FundingRepository) GetByLenderForUpdate(ctx context.Context, lenderID uint64) (*fundingDomain.Account, error) {
	var out fundingDomain.Account
	res := forUpdate(r.db.WithContext(ctx)).Where("lender_id = ?", lenderID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, fundingDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *FundingRepository) Save(ctx context.Context, a *fundingDomain.Account) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *FundingRepository) TotalFunds(ctx context.Context) (decimal.Decimal, error) {
	var raw sql.NullString
	err := r.db.WithContext(ctx).
		Model(&fundingDomain.Account{}).
		Select("SUM(total_funds)").
		Scan(&raw).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, err
	}
	if !raw.Valid || raw.String == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw.String)
}
