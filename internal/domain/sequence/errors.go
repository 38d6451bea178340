package sequence

import "errors"

var (
	ErrSequenceExhausted = errors.New("sequence exhausted for key")
)
