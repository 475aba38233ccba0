package mysql

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	loanDomain "bank-loan-management/internal/domain/loan"
)

func TestPaymentRepo_SumForAgreement(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	// No payments yet → zero, not an error.
	sum, err := repo.SumForAgreement(ctx, 99)
	if err != nil {
		t.Fatalf("SumForAgreement empty: %v", err)
	}
	if !sum.IsZero() {
		t.Fatalf("sum = %s, want 0", sum)
	}

	for _, amt := range []string{"100.50", "200", "49.50"} {
		p := &loanDomain.Payment{LoanID: 99, PaymentAmount: decimal.RequireFromString(amt)}
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create %s: %v", amt, err)
		}
	}
	// A payment on another agreement must not leak into the sum.
	if err := repo.Create(ctx, &loanDomain.Payment{LoanID: 100, PaymentAmount: decimal.RequireFromString("77")}); err != nil {
		t.Fatal(err)
	}

	sum, err = repo.SumForAgreement(ctx, 99)
	if err != nil {
		t.Fatalf("SumForAgreement: %v", err)
	}
	if !sum.Equal(decimal.RequireFromString("350")) {
		t.Fatalf("sum = %s, want 350", sum)
	}
}

func TestPaymentRepo_ListByBorrower(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)
	apps := NewApplicationRepository(db)
	agreements := NewAgreementRepository(db)
	ctx := context.Background()

	app := makeApplication(1, "5000")
	app.Approved = true
	if err := apps.Create(ctx, app); err != nil {
		t.Fatal(err)
	}
	if err := agreements.Create(ctx, makeAgreement(app.ApplicationID, 2)); err != nil {
		t.Fatal(err)
	}

	other := makeApplication(8, "5000")
	other.Approved = true
	if err := apps.Create(ctx, other); err != nil {
		t.Fatal(err)
	}
	if err := agreements.Create(ctx, makeAgreement(other.ApplicationID, 2)); err != nil {
		t.Fatal(err)
	}

	if err := repo.Create(ctx, &loanDomain.Payment{LoanID: app.ApplicationID, PaymentAmount: decimal.RequireFromString("500")}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, &loanDomain.Payment{LoanID: other.ApplicationID, PaymentAmount: decimal.RequireFromString("900")}); err != nil {
		t.Fatal(err)
	}

	got, err := repo.ListByBorrower(ctx, 1)
	if err != nil {
		t.Fatalf("ListByBorrower: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].LoanID != app.ApplicationID || !got[0].PaymentAmount.Equal(decimal.RequireFromString("500")) {
		t.Errorf("unexpected payment: %+v", got[0])
	}
}
