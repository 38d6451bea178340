package sequence

import "fmt"

// MaxSequence is the largest suffix the 4-digit identifier format can
// carry. A counter past this value is exhausted for its key; there is
// no wraparound.
const MaxSequence = 9999

// Key scopes counter uniqueness to a (company code, join year) pair,
// e.g. "DA_2025".
func Key(companyCode string, joinYear int) string {
	return fmt.Sprintf("%s_%d", companyCode, joinYear)
}
