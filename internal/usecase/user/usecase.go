package user

import (
	"context"
	"errors"

	"bank-loan-management/internal/domain/fault"
	userDomain "bank-loan-management/internal/domain/user"
)

type Usecase struct{ repo userDomain.Repository }

func NewUsecase(r userDomain.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) List(ctx context.Context) ([]userDomain.User, error) {
	return u.repo.List(ctx)
}

// Delete removes a user by id. Superuser accounts are off limits.
func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	usr, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userDomain.ErrNotFound) {
			return fault.NotFound("User not found")
		}
		return err
	}
	if usr.Superuser {
		return fault.Invalid("Cannot delete admin users")
	}
	return u.repo.Delete(ctx, id)
}
