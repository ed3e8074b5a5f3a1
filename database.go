package storefront

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenDatabase opens a gorm connection for the given DSN, picking the driver
// from its shape: postgres for "postgres://" / "postgresql://" / key=value
// DSNs, sqlite for everything else (a file path or ":memory:").
func OpenDatabase(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch {
	case strings.HasPrefix(dsn, "postgres://"),
		strings.HasPrefix(dsn, "postgresql://"),
		strings.Contains(dsn, "host="):
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("storefront: opening database: %w", err)
	}
	return db, nil
}
