package mysql

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	fundingDomain "bank-loan-management/internal/domain/funding"
	loanDomain "bank-loan-management/internal/domain/loan"
	userDomain "bank-loan-management/internal/domain/user"
)

// openTestDB creates an in-memory sqlite DB with the full schema.
// The models carry no mysql-only column types, so the domain structs
// migrate as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userDomain.User{},
		&loanDomain.Application{},
		&loanDomain.Agreement{},
		&loanDomain.Payment{},
		&fundingDomain.Account{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
