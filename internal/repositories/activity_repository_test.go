package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/auladigital/backend/internal/database"
	"github.com/auladigital/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var activityColumns = []string{"id", "moduleId", "title", "type", "content", "createdAt"}

// setupActivityTestRepository creates an activity repository with a mock database
func setupActivityTestRepository(t *testing.T) (*activityRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewActivityRepository(database.NewWithDB(db))

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewActivityRepository(t *testing.T) {
	store := database.New("database.sqlite")

	repo := NewActivityRepository(store)

	assert.NotNil(t, repo)
	assert.Equal(t, store, repo.store)
}

func TestActivityRepository_GetByModuleID(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		moduleID      int
		setupMock     func(sqlmock.Sqlmock)
		expectedCount int
		expectedError bool
		errorContains string
		check         func(*testing.T, []models.Activity)
	}{
		{
			name:     "success - quiz and upload activities",
			moduleID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(activityColumns).
					AddRow(1, 1, "Quiz: Slides atrativos", "quiz",
						`{"questions":[{"question":"Qual ferramenta?","options":["Canva","Bloco de notas"],"correct":0}]}`, now).
					AddRow(2, 1, "Envie seus slides", "upload", "Envie o arquivo final.", now.Add(time.Minute))
				mock.ExpectQuery(`SELECT.*FROM activities.*WHERE moduleId = \?.*ORDER BY createdAt ASC`).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectedCount: 2,
			check: func(t *testing.T, activities []models.Activity) {
				assert.Equal(t, models.ActivityTypeQuiz, activities[0].Type)
				assert.Equal(t, models.ActivityTypeUpload, activities[1].Type)

				quiz, ok := activities[0].Quiz()
				require.True(t, ok)
				require.Len(t, quiz.Questions, 1)
				assert.Equal(t, "Qual ferramenta?", quiz.Questions[0].Question)
			},
		},
		{
			name:     "success - module without activities",
			moduleID: 3,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT.*FROM activities.*WHERE moduleId = \?.*ORDER BY createdAt ASC`).
					WithArgs(3).
					WillReturnRows(sqlmock.NewRows(activityColumns))
			},
			expectedCount: 0,
		},
		{
			name:     "error - query fails",
			moduleID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT.*FROM activities.*WHERE moduleId = \?.*ORDER BY createdAt ASC`).
					WithArgs(1).
					WillReturnError(errors.New("disk I/O error"))
			},
			expectedError: true,
			errorContains: "failed to query activities",
		},
		{
			name:     "error - row iteration fails",
			moduleID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(activityColumns).
					AddRow(1, 1, "Quiz: Slides atrativos", "quiz", "{}", now).
					RowError(0, errors.New("connection lost"))
				mock.ExpectQuery(`SELECT.*FROM activities.*WHERE moduleId = \?.*ORDER BY createdAt ASC`).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectedError: true,
			errorContains: "error iterating rows",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupActivityTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			activities, err := repo.GetByModuleID(context.Background(), tt.moduleID)

			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				require.NoError(t, err)
				assert.Len(t, activities, tt.expectedCount)
				if tt.check != nil {
					tt.check(t, activities)
				}
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
