package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	loanDomain "bank-loan-management/internal/domain/loan"
)

type AgreementRepository struct{ db *gorm.DB }

func NewAgreementRepository(db *gorm.DB) *AgreementRepository {
	return &AgreementRepository{db: db}
}

func (r *AgreementRepository) Create(ctx context.Context, a *loanDomain.Agreement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AgreementRepository) GetByID(ctx context.Context, id uint64) (*loanDomain.Agreement, error) {
	var out loanDomain.Agreement
	res := r.db.WithContext(ctx).Where("agreement_id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrAgreementNotFound
	}
	return &out, res.Error
}

func (r *AgreementRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*loanDomain.Agreement, error) {
	var out loanDomain.Agreement
	res := forUpdate(r.db.WithContext(ctx)).Where("agreement_id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrAgreementNotFound
	}
	return &out, res.Error
}

func (r *AgreementRepository) ListAll(ctx context.Context) ([]loanDomain.Agreement, error) {
	var out []loanDomain.Agreement
	res := r.db.WithContext(ctx).Order("agreement_id").Find(&out)
	return out, res.Error
}

func (r *AgreementRepository) ListByLender(ctx context.Context, lenderID uint64) ([]loanDomain.Agreement, error) {
	var out []loanDomain.Agreement
	res := r.db.WithContext(ctx).Where("lender_id = ?", lenderID).Order("agreement_id").Find(&out)
	return out, res.Error
}

// ListByBorrower joins through the application: an agreement's PK is
// its application's PK, and the application knows the borrower.
func (r *AgreementRepository) ListByBorrower(ctx context.Context, borrowerID uint64) ([]loanDomain.Agreement, error) {
	var out []loanDomain.Agreement
	res := r.db.WithContext(ctx).
		Joins("JOIN loan_applications ON loan_applications.application_id = loan_agreements.agreement_id").
		Where("loan_applications.borrower_id = ?", borrowerID).
		Order("agreement_id").
		Find(&out)
	return out, res.Error
}

func (r *AgreementRepository) Save(ctx context.Context, a *loanDomain.Agreement) error {
	return r.db.WithContext(ctx).Save(a).Error
}
