package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-privacy-pipeline/models"
)

const catalogTable = "entry_catalog"

var catalogColumns = []string{"storage_key", "kind", "identifier_hash", "size_bytes", "created_at"}

// sqlite uses ? placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertCatalogEntryQuery(entry models.CatalogEntry) (string, []any, error) {
	return psql.
		Insert(catalogTable).
		Columns(catalogColumns...).
		Values(entry.StorageKey, string(entry.Kind), entry.IdentifierHash, entry.SizeBytes, entry.CreatedAt.UTC()).
		Suffix("ON CONFLICT(storage_key) DO UPDATE SET size_bytes = excluded.size_bytes").
		ToSql()
}

func buildDeleteCatalogEntryQuery(storageKey string) (string, []any, error) {
	return psql.
		Delete(catalogTable).
		Where(sq.Eq{"storage_key": storageKey}).
		ToSql()
}

func buildSelectCatalogQuery() (string, []any, error) {
	return psql.
		Select(catalogColumns...).
		From(catalogTable).
		OrderBy("created_at", "storage_key").
		ToSql()
}

func buildSelectCatalogByIdentifierQuery(identifierHash string) (string, []any, error) {
	return psql.
		Select(catalogColumns...).
		From(catalogTable).
		Where(sq.Eq{"identifier_hash": identifierHash}).
		OrderBy("created_at", "storage_key").
		ToSql()
}
