package gormrepo

import (
	"context"

	"gorm.io/gorm"
)

// The active transaction travels in the context so every repo call inside a
// RunInTx closure lands on the same *gorm.DB.
type txContextKey struct{}

func withTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

func getDBFromCtx(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return base
}
