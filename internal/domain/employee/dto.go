package employee

import (
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RegisterEmployeeRequest struct {
	CompanyName string  `json:"company_name"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       *string `json:"email,omitempty"`
	BasicSalary string  `json:"basic_salary"`
	Currency    string  `json:"currency"`
	JoinDate    string  `json:"join_date"`
}

func (r RegisterEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyName) {
		errs = append(errs, validator.ValidationError{Field: "company_name", Message: "company name is required"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last name is required"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "join_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if salary, err := decimal.NewFromString(r.BasicSalary); err != nil {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be a decimal number"})
	} else if salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must not be negative"})
	}
	if validator.IsEmpty(r.Currency) {
		errs = append(errs, validator.ValidationError{Field: "currency", Message: "currency is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCompensationRequest struct {
	BasicSalary string `json:"basic_salary"`
	Currency    string `json:"currency"`
}

func (r UpdateCompensationRequest) Validate() error {
	var errs validator.ValidationErrors

	if salary, err := decimal.NewFromString(r.BasicSalary); err != nil {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be a decimal number"})
	} else if salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must not be negative"})
	}
	if validator.IsEmpty(r.Currency) {
		errs = append(errs, validator.ValidationError{Field: "currency", Message: "currency is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string               `json:"id"`
	EmployeeCode string               `json:"employee_code"`
	CompanyName  string               `json:"company_name"`
	FirstName    string               `json:"first_name"`
	LastName     string               `json:"last_name"`
	Email        *string              `json:"email,omitempty"`
	BasicSalary  decimal.Decimal      `json:"basic_salary"`
	Currency     string               `json:"currency"`
	JoinDate     string               `json:"join_date"`
	LeaveBalance LeaveBalanceResponse `json:"leave_balance"`
}

type LeaveBalanceResponse struct {
	Annual   decimal.Decimal `json:"annual"`
	Sick     decimal.Decimal `json:"sick"`
	Casual   decimal.Decimal `json:"casual"`
	Personal decimal.Decimal `json:"personal"`
}
