package repositories

import (
	"context"
	"fmt"

	"github.com/auladigital/backend/internal/database"
	"github.com/auladigital/backend/internal/models"
)

type activityRepository struct {
	store *database.Store
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(store *database.Store) *activityRepository {
	return &activityRepository{
		store: store,
	}
}

// GetByModuleID retrieves all activities of a module in ascending creation
// order. A module with no activities and a module that does not exist both
// yield an empty result; telling them apart is the caller's job.
func (r *activityRepository) GetByModuleID(ctx context.Context, moduleID int) ([]models.Activity, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, moduleId, title, type, content, createdAt
		FROM activities
		WHERE moduleId = ?
		ORDER BY createdAt ASC
	`

	rows, err := db.QueryContext(ctx, query, moduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var activity models.Activity
		err := rows.Scan(
			&activity.ID,
			&activity.ModuleID,
			&activity.Title,
			&activity.Type,
			&activity.Content,
			&activity.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return activities, nil
}
