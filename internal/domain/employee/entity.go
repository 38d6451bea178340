package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID string

	// EmployeeCode is the human-readable identifier minted by the
	// sequence issuer at registration, e.g. "DAJODO20250001".
	EmployeeCode string

	CompanyName string
	FirstName   string
	LastName    string
	Email       *string

	BasicSalary decimal.Decimal
	Currency    string
	JoinDate    time.Time

	LeaveBalance LeaveBalance

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeaveBalance holds the remaining leave days per bucket. Days can be
// fractional for half-day leaves.
type LeaveBalance struct {
	Annual   decimal.Decimal
	Sick     decimal.Decimal
	Casual   decimal.Decimal
	Personal decimal.Decimal
}

// Bucket returns the remaining days for a named bucket. Unknown names
// resolve to the casual bucket, matching leave.BalanceBucket.
func (b LeaveBalance) Bucket(name string) decimal.Decimal {
	switch name {
	case "annual":
		return b.Annual
	case "sick":
		return b.Sick
	case "personal":
		return b.Personal
	default:
		return b.Casual
	}
}

// CompensationProfile is the read-only slice of the employee the
// payroll calculator consumes.
type CompensationProfile struct {
	BasicSalary decimal.Decimal
	Currency    string
	CompanyName string
	FirstName   string
	LastName    string
}

func (e Employee) CompensationProfile() CompensationProfile {
	return CompensationProfile{
		BasicSalary: e.BasicSalary,
		Currency:    e.Currency,
		CompanyName: e.CompanyName,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
	}
}
