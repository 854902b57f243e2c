package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/auladigital/backend/internal/database"
	"github.com/auladigital/backend/internal/models"
)

// ErrModuleNotFound is returned when no module matches the requested slug.
// A missing module is an expected outcome rather than a store failure;
// callers distinguish it with errors.Is.
var ErrModuleNotFound = errors.New("module not found")

type moduleRepository struct {
	store *database.Store
}

// NewModuleRepository creates a new module repository
func NewModuleRepository(store *database.Store) *moduleRepository {
	return &moduleRepository{
		store: store,
	}
}

// GetAll retrieves all modules in ascending creation order
func (r *moduleRepository) GetAll(ctx context.Context) ([]models.Module, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, title, description, content, slug, videoUrl, externalLinks, createdAt, updatedAt
		FROM modules
		ORDER BY createdAt ASC
	`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query modules: %w", err)
	}
	defer rows.Close()

	var modules []models.Module
	for rows.Next() {
		module, err := scanModule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan module: %w", err)
		}
		modules = append(modules, *module)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return modules, nil
}

// GetBySlug retrieves a module by its slug. Returns ErrModuleNotFound when
// no module matches.
func (r *moduleRepository) GetBySlug(ctx context.Context, slug string) (*models.Module, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, title, description, content, slug, videoUrl, externalLinks, createdAt, updatedAt
		FROM modules
		WHERE slug = ?
		LIMIT 1
	`

	module, err := scanModule(db.QueryRowContext(ctx, query, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrModuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get module by slug: %w", err)
	}

	return module, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanModule reads one module row, decoding the externalLinks column into
// structured links at this boundary so nothing above the repository handles
// the raw serialized text.
func scanModule(row rowScanner) (*models.Module, error) {
	var module models.Module
	var videoURL, externalLinks sql.NullString

	err := row.Scan(
		&module.ID,
		&module.Title,
		&module.Description,
		&module.Content,
		&module.Slug,
		&videoURL,
		&externalLinks,
		&module.CreatedAt,
		&module.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	module.VideoURL = videoURL.String
	module.ExternalLinks = decodeExternalLinks(externalLinks)

	return &module, nil
}

// decodeExternalLinks parses the serialized link list. An absent, empty or
// malformed column is treated as a module with no links.
func decodeExternalLinks(raw sql.NullString) []models.ExternalLink {
	if !raw.Valid || raw.String == "" {
		return nil
	}

	var links []models.ExternalLink
	if err := json.Unmarshal([]byte(raw.String), &links); err != nil {
		return nil
	}

	return links
}
