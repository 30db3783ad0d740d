package store

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel outcomes the handlers translate to HTTP statuses.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Store wraps the database handle with one accessor set per entity kind.
// A fresh Store is built at startup (or per test) and passed into the
// controllers; nothing in this package is global.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
