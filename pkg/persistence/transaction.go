//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Transaction=Transaction"
package persistence

import "context"

// Transaction executes fn within a storage transaction, taking the named
// advisory locks first. Nested calls join the transaction of the parent
// context instead of opening a new one.
type Transaction interface {
	WithinContext(ctx context.Context, fn func(ctx context.Context) error, lockNames ...string) error
}
