package services

import (
	"context"
	"fmt"

	"github.com/auladigital/backend/internal/models"
)

// ModuleRepository defines methods for module data access
type ModuleRepository interface {
	// GetAll retrieves all modules in ascending creation order
	//
	// "ctx" is the context for the request.
	//
	// Returns the list of modules and an error if any.
	GetAll(ctx context.Context) ([]models.Module, error)
	// GetBySlug retrieves a module by slug
	//
	// "ctx" is the context for the request.
	// "slug" is the slug of the module.
	//
	// Returns the module and an error if any; the error is
	// repositories.ErrModuleNotFound when no module matches.
	GetBySlug(ctx context.Context, slug string) (*models.Module, error)
}

// ActivityRepository defines methods for activity data access
type ActivityRepository interface {
	// GetByModuleID retrieves all activities of a module in ascending
	// creation order
	//
	// "ctx" is the context for the request.
	// "moduleID" is the ID of the owning module.
	//
	// Returns the list of activities and an error if any.
	GetByModuleID(ctx context.Context, moduleID int) ([]models.Activity, error)
}

type moduleService struct {
	moduleRepo   ModuleRepository
	activityRepo ActivityRepository
}

// NewModuleService creates a new module service
func NewModuleService(moduleRepo ModuleRepository, activityRepo ActivityRepository) *moduleService {
	return &moduleService{
		moduleRepo:   moduleRepo,
		activityRepo: activityRepo,
	}
}

// GetModules retrieves the full module catalog without activities
func (s *moduleService) GetModules(ctx context.Context) ([]models.Module, error) {
	modules, err := s.moduleRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get modules: %w", err)
	}

	// An emptied store still answers with an empty list, not null
	if modules == nil {
		modules = []models.Module{}
	}

	return modules, nil
}

// GetModuleDetail retrieves a module by slug together with its activities.
// The not-found sentinel from the repository passes through unchanged.
func (s *moduleService) GetModuleDetail(ctx context.Context, slug string) (*models.ModuleDetail, error) {
	module, err := s.moduleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.GetByModuleID(ctx, module.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get module activities: %w", err)
	}

	if activities == nil {
		activities = []models.Activity{}
	}

	return &models.ModuleDetail{
		Module:     *module,
		Activities: activities,
	}, nil
}
