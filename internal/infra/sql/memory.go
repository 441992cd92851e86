package sql

import (
	"fmt"
	"sync/atomic"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func NewMemoryORM() (ORM, error) {
	gormDB, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite in-memory db: %w", err)
	}

	return &DB{DB: gormDB, autoMigrationEnabled: true}, nil
}

var isolatedSequence atomic.Int64

// NewIsolatedMemoryORM opens a private in-memory database so parallel test
// suites don't share tables. The database is named so every pooled
// connection reaches the same one.
func NewIsolatedMemoryORM() (ORM, error) {
	dsn := fmt.Sprintf("file:isolated_%d?mode=memory&cache=shared", isolatedSequence.Add(1))
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite in-memory db: %w", err)
	}

	return &DB{DB: gormDB, autoMigrationEnabled: true}, nil
}
