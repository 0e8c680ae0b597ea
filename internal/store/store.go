// Package store is the access layer: one set of plain functions per table,
// each executed against the handle it is given. Lookups report absence as a
// nil record, never as an error.
package store

import (
	"errors"

	"gorm.io/gorm"
)

func first[T any](db *gorm.DB, query string, args ...interface{}) (*T, error) {
	var record T
	err := db.Where(query, args...).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// find returns every row matching query ordered by orderBy. An empty query
// selects the whole table.
func find[T any](db *gorm.DB, orderBy, query string, args ...interface{}) ([]T, error) {
	records := make([]T, 0)
	tx := db.Order(orderBy)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	if err := tx.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
