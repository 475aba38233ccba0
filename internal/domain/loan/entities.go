package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrApplicationNotFound = errors.New("loan request not found")
	ErrAgreementNotFound   = errors.New("loan not found")
	ErrAlreadyApproved     = errors.New("request was already approved")
	ErrNotBorrower         = errors.New("unauthorized loan access")
)

// Application is a borrower's pending request for a loan. It stays
// unapproved until an employee turns it into an Agreement; only
// unapproved applications may be deleted.
type Application struct {
	ApplicationID   uint64          `gorm:"primaryKey;column:application_id" json:"application_id"`
	BorrowerID      uint64          `gorm:"column:borrower_id;index:idx_applications_borrower" json:"borrower"`
	ApplicationDate time.Time       `gorm:"column:application_date;autoCreateTime" json:"application_date"`
	LoanAmount      decimal.Decimal `gorm:"column:loan_amount;type:decimal(12,2)" json:"loan_amount"`
	TermsConditions string          `gorm:"column:terms_conditions;size:1000" json:"terms_conditions"`
	Approved        bool            `gorm:"column:approved" json:"approved"`
}

func (Application) TableName() string { return "loan_applications" }

// Agreement shares its primary key with the application it approves,
// keeping the 1:1 relation in the schema itself.
type Agreement struct {
	AgreementID       uint64          `gorm:"primaryKey;column:agreement_id;autoIncrement:false" json:"agreement_id"`
	LenderID          uint64          `gorm:"column:lender_id;index:idx_agreements_lender" json:"-"`
	ApprovalDate      time.Time       `gorm:"column:approval_date;autoCreateTime" json:"approval_date"`
	RepaymentDeadline time.Time       `gorm:"column:repayment_deadline" json:"repayment_deadline"`
	InterestRate      decimal.Decimal `gorm:"column:interest_rate;type:decimal(5,2)" json:"interest_rate"`
	PaymentDueDate    *time.Time      `gorm:"column:payment_due_date" json:"payment_due_date"`
	FullyPaid         bool            `gorm:"column:fully_paid" json:"fully_paid"`
	MinPayment        decimal.Decimal `gorm:"column:min_payment;type:decimal(12,2)" json:"min_payment"`
	MaxPayment        decimal.Decimal `gorm:"column:max_payment;type:decimal(12,2)" json:"max_payment"`
}

func (Agreement) TableName() string { return "loan_agreements" }

// TotalDue is the repayment ceiling: principal × (1 + interest rate).
func (a *Agreement) TotalDue(principal decimal.Decimal) decimal.Decimal {
	return principal.Mul(decimal.NewFromInt(1).Add(a.InterestRate))
}

type Payment struct {
	PaymentID     uint64          `gorm:"primaryKey;column:payment_id" json:"payment_id"`
	LoanID        uint64          `gorm:"column:loan_id;index:idx_payments_loan" json:"loan"`
	PaymentAmount decimal.Decimal `gorm:"column:payment_amount;type:decimal(12,2)" json:"payment_amount"`
	PaymentDate   time.Time       `gorm:"column:payment_date;autoCreateTime" json:"payment_date"`
}

func (Payment) TableName() string { return "loan_payments" }
