package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/auladigital/backend/internal/models"
	"github.com/auladigital/backend/internal/repositories"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockModuleService is a mock implementation of ModuleService
type mockModuleService struct {
	getModulesFunc      func(ctx context.Context) ([]models.Module, error)
	getModuleDetailFunc func(ctx context.Context, slug string) (*models.ModuleDetail, error)
}

func (m *mockModuleService) GetModules(ctx context.Context) ([]models.Module, error) {
	return m.getModulesFunc(ctx)
}

func (m *mockModuleService) GetModuleDetail(ctx context.Context, slug string) (*models.ModuleDetail, error) {
	return m.getModuleDetailFunc(ctx, slug)
}

func testModule() models.Module {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return models.Module{
		ID:          1,
		Title:       "Slides atrativos",
		Description: "Aprenda a fazer slides com a plataforma Canva",
		Content:     "# Slides Atrativos com Canva",
		Slug:        "slides-atrativos",
		VideoURL:    "https://www.youtube.com/watch?v=exemplo1",
		ExternalLinks: []models.ExternalLink{
			{Title: "Canva", URL: "https://canva.com"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func serveModuleRequest(t *testing.T, svc ModuleService, target string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewModuleHandler(svc, zap.NewNop())
	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestModuleHandler_GetModules(t *testing.T) {
	tests := []struct {
		name           string
		getModulesFunc func(ctx context.Context) ([]models.Module, error)
		expectedStatus int
		expectedError  string
		check          func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "success",
			getModulesFunc: func(ctx context.Context) ([]models.Module, error) {
				return []models.Module{testModule()}, nil
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var modules []models.Module
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &modules))
				require.Len(t, modules, 1)
				assert.Equal(t, "slides-atrativos", modules[0].Slug)
				require.Len(t, modules[0].ExternalLinks, 1)
				assert.Equal(t, "Canva", modules[0].ExternalLinks[0].Title)
			},
		},
		{
			name: "empty catalog serializes as an array",
			getModulesFunc: func(ctx context.Context) ([]models.Module, error) {
				return []models.Module{}, nil
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, "[]", rec.Body.String())
			},
		},
		{
			name: "service error",
			getModulesFunc: func(ctx context.Context) ([]models.Module, error) {
				return nil, errors.New("disk I/O error")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to fetch modules",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockModuleService{getModulesFunc: tt.getModulesFunc}

			rec := serveModuleRequest(t, svc, "/modules")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.expectedError != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedError, body["error"])
			} else if tt.check != nil {
				tt.check(t, rec)
			}
		})
	}
}

func TestModuleHandler_GetModule(t *testing.T) {
	tests := []struct {
		name                string
		slug                string
		getModuleDetailFunc func(ctx context.Context, slug string) (*models.ModuleDetail, error)
		expectedStatus      int
		expectedError       string
		check               func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "success - detail includes activities",
			slug: "slides-atrativos",
			getModuleDetailFunc: func(ctx context.Context, slug string) (*models.ModuleDetail, error) {
				assert.Equal(t, "slides-atrativos", slug)
				return &models.ModuleDetail{
					Module: testModule(),
					Activities: []models.Activity{
						{
							ID:       1,
							ModuleID: 1,
							Title:    "Quiz: Elementos de Design",
							Type:     models.ActivityTypeQuiz,
							Content:  `{"questions":[]}`,
						},
					},
				}, nil
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var detail models.ModuleDetail
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
				assert.Equal(t, "slides-atrativos", detail.Slug)
				require.Len(t, detail.Activities, 1)
				assert.Equal(t, models.ActivityTypeQuiz, detail.Activities[0].Type)
			},
		},
		{
			name: "module not found",
			slug: "does-not-exist",
			getModuleDetailFunc: func(ctx context.Context, slug string) (*models.ModuleDetail, error) {
				return nil, repositories.ErrModuleNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Module not found",
		},
		{
			name: "service error",
			slug: "slides-atrativos",
			getModuleDetailFunc: func(ctx context.Context, slug string) (*models.ModuleDetail, error) {
				return nil, errors.New("disk I/O error")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to fetch module",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockModuleService{getModuleDetailFunc: tt.getModuleDetailFunc}

			rec := serveModuleRequest(t, svc, "/modules/"+tt.slug)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedError != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedError, body["error"])
			} else if tt.check != nil {
				tt.check(t, rec)
			}
		})
	}
}
