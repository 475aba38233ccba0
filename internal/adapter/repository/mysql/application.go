package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	loanDomain "bank-loan-management/internal/domain/loan"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *loanDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uint64) (*loanDomain.Application, error) {
	var out loanDomain.Application
	res := r.db.WithContext(ctx).Where("application_id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrApplicationNotFound
	}
	return &out, res.Error
}

func (r *ApplicationRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*loanDomain.Application, error) {
	var out loanDomain.Application
	res := forUpdate(r.db.WithContext(ctx)).Where("application_id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrApplicationNotFound
	}
	return &out, res.Error
}

func (r *ApplicationRepository) ListAll(ctx context.Context) ([]loanDomain.Application, error) {
	var out []loanDomain.Application
	res := r.db.WithContext(ctx).Order("application_id").Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) ListPending(ctx context.Context) ([]loanDomain.Application, error) {
	var out []loanDomain.Application
	res := r.db.WithContext(ctx).Where("approved = ?", false).Order("application_id").Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) ListPendingByBorrower(ctx context.Context, borrowerID uint64) ([]loanDomain.Application, error) {
	var out []loanDomain.Application
	res := r.db.WithContext(ctx).
		Where("borrower_id = ? AND approved = ?", borrowerID, false).
		Order("application_id").
		Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *loanDomain.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&loanDomain.Application{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return loanDomain.ErrApplicationNotFound
	}
	return nil
}
