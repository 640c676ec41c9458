package ports

import "context"

// TxManager scopes a closure to one storage transaction. The memory
// implementation is a pass-through.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
