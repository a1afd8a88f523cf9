package store

import (
	"database/sql"

	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/migrations"
)

// DB wraps the catalog connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded catalog migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
