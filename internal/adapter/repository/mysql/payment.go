package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	loanDomain "bank-loan-management/internal/domain/loan"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *loanDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) ListByBorrower(ctx context.Context, borrowerID uint64) ([]loanDomain.Payment, error) {
	var out []loanDomain.Payment
	res := r.db.WithContext(ctx).
		Joins("JOIN loan_agreements ON loan_agreements.agreement_id = loan_payments.loan_id").
		Joins("JOIN loan_applications ON loan_applications.application_id = loan_agreements.agreement_id").
		Where("loan_applications.borrower_id = ?", borrowerID).
		Order("payment_id").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) SumForAgreement(ctx context.Context, agreementID uint64) (decimal.Decimal, error) {
	var raw sql.NullString
	err := r.db.WithContext(ctx).
		Model(&loanDomain.Payment{}).
		Where("loan_id = ?", agreementID).
		Select("SUM(payment_amount)").
		Scan(&raw).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, err
	}
	if !raw.Valid || raw.String == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw.String)
}
