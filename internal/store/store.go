// Package store is the record layer: typed accessors over the named
// collections the engine reads and writes. No business rules live here.
package store

import "gorm.io/gorm"

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for transactions spanning collections.
func (s *Store) DB() *gorm.DB {
	return s.db
}
