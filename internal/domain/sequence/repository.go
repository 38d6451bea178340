package sequence

import "context"

// CounterRepository is the atomic increment-and-fetch primitive behind
// the identifier issuer. Next must increment and read back the key's
// counter in one storage operation; concurrent calls on the same key
// must never observe the same value.
type CounterRepository interface {
	Next(ctx context.Context, key string) (int64, error)
}
