package payment

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"bank-loan-management/internal/domain/fault"
	loanDomain "bank-loan-management/internal/domain/loan"
	"bank-loan-management/internal/domain/uow"
	userDomain "bank-loan-management/internal/domain/user"
)

type Usecase struct {
	payments loanDomain.PaymentRepository
	uow      uow.UnitOfWork
}

func NewUsecase(payments loanDomain.PaymentRepository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{payments: payments, uow: tx}
}

func (u *Usecase) ListForBorrower(ctx context.Context, ident userDomain.Identity) ([]loanDomain.Payment, error) {
	return u.payments.ListByBorrower(ctx, ident.UserID)
}

// Pay records a repayment against an agreement. The amount must sit
// inside the agreement's [min_payment, max_payment] window and the
// running total may never pass principal × (1 + interest rate);
// hitting it exactly marks the agreement fully paid. The agreement
// row stays locked for the whole check-then-write sequence.
func (u *Usecase) Pay(ctx context.Context, ident userDomain.Identity, agreementID uint64, amount decimal.Decimal) (*loanDomain.Payment, error) {
	if !amount.IsPositive() {
		return nil, fault.Invalid("Payment amount must be positive")
	}

	var out *loanDomain.Payment
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		agr, err := r.Agreements.GetByIDForUpdate(ctx, agreementID)
		if err != nil {
			if errors.Is(err, loanDomain.ErrAgreementNotFound) {
				return fault.NotFound("Loan not found")
			}
			return err
		}
		app, err := r.Applications.GetByID(ctx, agr.AgreementID)
		if err != nil {
			return err
		}
		if app.BorrowerID != ident.UserID {
			return fault.Wrap(fault.ErrForbidden, loanDomain.ErrNotBorrower)
		}

		if amount.LessThan(agr.MinPayment) || amount.GreaterThan(agr.MaxPayment) {
			return fault.Invalid("Payment must be within the allowed range")
		}

		paid, err := r.Payments.SumForAgreement(ctx, agr.AgreementID)
		if err != nil {
			return err
		}
		due := agr.TotalDue(app.LoanAmount)
		newTotal := paid.Add(amount)
		if newTotal.GreaterThan(due) {
			return fault.Invalid("Payment exceeds the due amount")
		}
		if newTotal.Equal(due) {
			agr.FullyPaid = true
			if err := r.Agreements.Save(ctx, agr); err != nil {
				return err
			}
		}

		p := &loanDomain.Payment{
			LoanID:        agr.AgreementID,
			PaymentAmount: amount,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
