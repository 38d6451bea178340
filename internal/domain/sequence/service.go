package sequence

import (
	"context"

	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
)

type IssueRequest struct {
	Company   string `json:"company"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	JoinYear  int    `json:"join_year"`
}

func (r IssueRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Company) {
		errs = append(errs, validator.ValidationError{Field: "company", Message: "company is required"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last name is required"})
	}
	if !validator.IsValidYear(r.JoinYear) {
		errs = append(errs, validator.ValidationError{Field: "join_year", Message: "must be a four-digit year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type IssueResponse struct {
	EmployeeCode string `json:"employee_code"`
	Sequence     int64  `json:"sequence"`
}

type SequenceService interface {
	// Issue mints a globally unique human-readable employee identifier:
	// companyCode + firstNameCode + lastNameCode + joinYear + 4-digit
	// sequence.
	Issue(ctx context.Context, req IssueRequest) (IssueResponse, error)
}
