package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/auladigital/backend/internal/models"
	"github.com/auladigital/backend/internal/repositories"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ModuleService is the interface that wraps methods for module content delivery
type ModuleService interface {
	// GetModules retrieves the full module catalog without activities
	//
	// "ctx" is the context for the request.
	//
	// Returns the list of modules and an error if any.
	GetModules(ctx context.Context) ([]models.Module, error)
	// GetModuleDetail retrieves a module by slug together with its activities
	//
	// "ctx" is the context for the request.
	// "slug" is the slug of the module.
	//
	// Returns the module detail and an error if any; the error is
	// repositories.ErrModuleNotFound when no module matches.
	GetModuleDetail(ctx context.Context, slug string) (*models.ModuleDetail, error)
}

// ModuleHandler handles HTTP requests for the module API
type ModuleHandler struct {
	BaseHandler
	service ModuleService
}

// NewModuleHandler creates a new module handler
func NewModuleHandler(svc ModuleService, logger *zap.Logger) *ModuleHandler {
	return &ModuleHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all module API routes
func (h *ModuleHandler) RegisterRoutes(r chi.Router) {
	r.Route("/modules", func(r chi.Router) {
		r.Get("/", h.GetModules)
		r.Get("/{slug}", h.GetModule)
	})
}

// GetModules handles GET /modules
// @Summary List modules
// @Description Get all learning modules in ascending creation order, without their activities
// @Tags modules
// @Produce json
// @Success 200 {array} models.Module "List of modules"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /modules [get]
func (h *ModuleHandler) GetModules(w http.ResponseWriter, r *http.Request) {
	modules, err := h.service.GetModules(r.Context())
	if err != nil {
		h.Logger.Error("failed to fetch modules", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "Failed to fetch modules")
		return
	}

	h.RespondJSON(w, http.StatusOK, modules)
}

// GetModule handles GET /modules/{slug}
// @Summary Get a module by slug
// @Description Get a single module with its activities
// @Tags modules
// @Produce json
// @Param slug path string true "Module slug"
// @Success 200 {object} models.ModuleDetail "Module with activities"
// @Failure 404 {object} map[string]string "Module not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /modules/{slug} [get]
func (h *ModuleHandler) GetModule(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	detail, err := h.service.GetModuleDetail(r.Context(), slug)
	if errors.Is(err, repositories.ErrModuleNotFound) {
		// Expected outcome, not worth an error log
		h.RespondError(w, http.StatusNotFound, "Module not found")
		return
	}
	if err != nil {
		h.Logger.Error("failed to fetch module", zap.String("slug", slug), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "Failed to fetch module")
		return
	}

	h.RespondJSON(w, http.StatusOK, detail)
}
