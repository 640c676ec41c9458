package memory

import "context"

// TxManager gives memory-backed runs the same RunInTx shape the gorm repos
// have. The Coordinator mutex already serializes writers, so this is a
// pass-through; each repo takes the store lock per call.
type TxManager struct{}

func NewTxManager(*Store) TxManager {
	return TxManager{}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
