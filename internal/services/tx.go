package services

import (
	"context"

	"gorm.io/gorm"
)

// inTx runs fn inside one transaction bound to ctx. The transaction is
// committed when fn returns nil and rolled back on any error, so every
// request path releases its handle.
func inTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}
