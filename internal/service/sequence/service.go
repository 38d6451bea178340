package sequence

import (
	"context"
	"fmt"
	"strings"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/sequence"
)

type SequenceServiceImpl struct {
	sequence.CounterRepository
}

func NewSequenceService(counterRepo sequence.CounterRepository) sequence.SequenceService {
	return &SequenceServiceImpl{CounterRepository: counterRepo}
}

// Issue implements sequence.SequenceService. The code layout is two
// letters each from the company, first and last name, the join year,
// and a zero-padded four digit sequence, e.g. DAJODO20250001.
func (s *SequenceServiceImpl) Issue(ctx context.Context, req sequence.IssueRequest) (sequence.IssueResponse, error) {
	if err := req.Validate(); err != nil {
		return sequence.IssueResponse{}, err
	}

	companyCode := letterCode(req.Company)
	key := sequence.Key(companyCode, req.JoinYear)

	next, err := s.CounterRepository.Next(ctx, key)
	if err != nil {
		return sequence.IssueResponse{}, fmt.Errorf("failed to advance sequence for %s: %w", key, err)
	}
	if next > sequence.MaxSequence {
		return sequence.IssueResponse{}, sequence.ErrSequenceExhausted
	}

	code := fmt.Sprintf("%s%s%s%d%04d",
		companyCode,
		letterCode(req.FirstName),
		letterCode(req.LastName),
		req.JoinYear,
		next,
	)

	return sequence.IssueResponse{EmployeeCode: code, Sequence: next}, nil
}

// letterCode normalizes a name to its two-letter code: letters only,
// uppercased, padded with X when fewer than two remain.
func letterCode(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
			if b.Len() == 2 {
				break
			}
		}
	}
	for b.Len() < 2 {
		b.WriteByte('X')
	}
	return b.String()
}
