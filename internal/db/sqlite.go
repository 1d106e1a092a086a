package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewSQLite returns a connected GORM DB instance backed by a local SQLite
// file. TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey instead of a driver-specific error.
func NewSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect sqlite %s: %w", path, err)
	}
	return db, nil
}
