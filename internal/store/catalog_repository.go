package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

// catalogRepository is the SQLite-backed implementation of [EntryCatalog].
// Rows hold only the storage key, kind, size, creation time and the SHA-256
// of the dataset identifier.
type catalogRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCatalogRepository constructs an [EntryCatalog] backed by db.
func NewCatalogRepository(db *DB, logger *logger.Logger) EntryCatalog {
	logger.Debug().Msg("creating entry catalog repository")
	return &catalogRepository{
		db:     db,
		logger: logger,
	}
}

// Add records entry. Re-adding an existing key only refreshes its size.
func (r *catalogRepository) Add(ctx context.Context, entry models.CatalogEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCatalogEntryQuery(entry)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.Add").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*catalogRepository.Add").Str("storage_key", entry.StorageKey).Msg("error inserting catalog entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Remove deletes the row of storageKey. Missing rows are not an error.
func (r *catalogRepository) Remove(ctx context.Context, storageKey string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCatalogEntryQuery(storageKey)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.Remove").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*catalogRepository.Remove").Str("storage_key", storageKey).Msg("error deleting catalog entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// List returns all rows ordered by creation time.
func (r *catalogRepository) List(ctx context.Context) ([]models.CatalogEntry, error) {
	query, args, err := buildSelectCatalogQuery()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogRepository.List").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.query(ctx, "*catalogRepository.List", query, args)
}

// FindByIdentifierHash returns the rows recorded for one identifier, oldest
// first.
func (r *catalogRepository) FindByIdentifierHash(ctx context.Context, identifierHash string) ([]models.CatalogEntry, error) {
	query, args, err := buildSelectCatalogByIdentifierQuery(identifierHash)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogRepository.FindByIdentifierHash").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.query(ctx, "*catalogRepository.FindByIdentifierHash", query, args)
}

func (r *catalogRepository) query(ctx context.Context, funcName, query string, args []any) ([]models.CatalogEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.CatalogEntry, 0)
	for rows.Next() {
		var (
			entry models.CatalogEntry
			kind  string
		)
		if err = rows.Scan(&entry.StorageKey, &kind, &entry.IdentifierHash, &entry.SizeBytes, &entry.CreatedAt); err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning catalog row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entry.Kind = models.PayloadKind(kind)
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating catalog rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// nopCatalog is used when no catalog DSN is configured.
type nopCatalog struct{}

// NewNopCatalog returns an [EntryCatalog] that records nothing.
func NewNopCatalog() EntryCatalog {
	return nopCatalog{}
}

func (nopCatalog) Add(context.Context, models.CatalogEntry) error { return nil }

func (nopCatalog) Remove(context.Context, string) error { return nil }

func (nopCatalog) List(context.Context) ([]models.CatalogEntry, error) { return nil, nil }

func (nopCatalog) FindByIdentifierHash(context.Context, string) ([]models.CatalogEntry, error) {
	return nil, nil
}
