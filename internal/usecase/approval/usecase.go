package approval

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"bank-loan-management/internal/domain/fault"
	fundingDomain "bank-loan-management/internal/domain/funding"
	loanDomain "bank-loan-management/internal/domain/loan"
	"bank-loan-management/internal/domain/uow"
	userDomain "bank-loan-management/internal/domain/user"
)

type Usecase struct {
	apps loanDomain.ApplicationRepository
	uow  uow.UnitOfWork
}

func NewUsecase(apps loanDomain.ApplicationRepository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{apps: apps, uow: tx}
}

func (u *Usecase) ListPending(ctx context.Context) ([]loanDomain.Application, error) {
	return u.apps.ListPending(ctx)
}

type ApproveInput struct {
	AgreementID       uint64
	InterestRate      decimal.Decimal
	RepaymentDeadline time.Time
	LenderID          uint64
	MinPayment        decimal.Decimal
	MaxPayment        decimal.Decimal
}

var one = decimal.NewFromInt(1)

// Approve turns a pending application into an agreement and debits
// the lender's funding account by the full principal. Every check
// runs before any write, inside one transaction with the application
// and funding rows locked, so a failure leaves no partial state.
func (u *Usecase) Approve(ctx context.Context, in ApproveInput) (*loanDomain.Agreement, error) {
	if !in.InterestRate.IsPositive() || in.InterestRate.GreaterThanOrEqual(one) {
		return nil, fault.Invalid("Interest rate must be between 0 and 1")
	}
	if in.RepaymentDeadline.Before(time.Now()) {
		return nil, fault.Invalid("Deadline cannot be in the past")
	}

	var out *loanDomain.Agreement
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		app, err := r.Applications.GetByIDForUpdate(ctx, in.AgreementID)
		if err != nil {
			if errors.Is(err, loanDomain.ErrApplicationNotFound) {
				return fault.NotFound("Data not found")
			}
			return err
		}
		if app.Approved {
			return fault.Wrap(fault.ErrInvalid, loanDomain.ErrAlreadyApproved)
		}

		lender, err := r.Users.GetByID(ctx, in.LenderID)
		if err != nil {
			if errors.Is(err, userDomain.ErrNotFound) {
				return fault.NotFound("Data not found")
			}
			return err
		}
		if lender.Role != userDomain.RoleProvider {
			return fault.NotFound("Data not found")
		}

		acct, err := r.Funds.GetByLenderForUpdate(ctx, lender.ID)
		if err != nil {
			if errors.Is(err, fundingDomain.ErrNotFound) {
				return fault.NotFound("Data not found")
			}
			return err
		}

		if !in.MinPayment.IsPositive() || in.MaxPayment.GreaterThan(app.LoanAmount) {
			return fault.Invalid("Invalid minimum or maximum payment")
		}
		if in.MaxPayment.LessThanOrEqual(in.MinPayment) {
			return fault.Invalid("Invalid maximum payment")
		}
		if acct.TotalFunds.LessThan(app.LoanAmount) {
			return fault.Wrap(fault.ErrInvalid, fundingDomain.ErrInsufficientFunds)
		}

		// All checks passed; mutate.
		app.Approved = true
		if err := r.Applications.Save(ctx, app); err != nil {
			return err
		}
		acct.TotalFunds = acct.TotalFunds.Sub(app.LoanAmount)
		if err := r.Funds.Save(ctx, acct); err != nil {
			return err
		}

		agr := &loanDomain.Agreement{
			AgreementID:       app.ApplicationID,
			LenderID:          lender.ID,
			RepaymentDeadline: in.RepaymentDeadline,
			InterestRate:      in.InterestRate,
			MinPayment:        in.MinPayment,
			MaxPayment:        in.MaxPayment,
		}
		if err := r.Agreements.Create(ctx, agr); err != nil {
			return err
		}
		out = agr
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
