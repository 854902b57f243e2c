package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/auladigital/backend/internal/models"
	"github.com/auladigital/backend/internal/repositories"
	"github.com/auladigital/backend/web"
	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"
)

// markdown renders module content. Raw HTML embedded in the markdown stays
// escaped, which is goldmark's default.
var markdown = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkhtml.WithHardWraps(),
	),
)

// PageHandler renders the HTML pages of the platform
type PageHandler struct {
	BaseHandler
	service ModuleService
	tpl     *template.Template
}

// NewPageHandler creates a new page handler with the embedded templates
func NewPageHandler(svc ModuleService, logger *zap.Logger) (*PageHandler, error) {
	tpl, err := template.New("pages").ParseFS(web.FS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &PageHandler{
		service:     svc,
		tpl:         tpl,
		BaseHandler: BaseHandler{Logger: logger},
	}, nil
}

// RegisterRoutes registers all page routes
func (h *PageHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Home)
	r.Get("/modules", h.ModuleList)
	r.Get("/modules/{slug}", h.ModuleDetail)
	r.Handle("/static/*", http.FileServer(http.FS(web.FS)))
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	modules, err := h.service.GetModules(r.Context())
	if err != nil {
		h.Logger.Error("failed to render home page", zap.Error(err))
		// The landing page still works without the module teaser
		modules = nil
	}

	h.render(w, http.StatusOK, "home.html", modules)
}

// ModuleList handles GET /modules
func (h *PageHandler) ModuleList(w http.ResponseWriter, r *http.Request) {
	modules, err := h.service.GetModules(r.Context())
	if err != nil {
		h.Logger.Error("failed to render module list", zap.Error(err))
		h.render(w, http.StatusInternalServerError, "error.html", "Erro ao carregar módulos")
		return
	}

	h.render(w, http.StatusOK, "modules.html", modules)
}

// ModuleDetail handles GET /modules/{slug}
func (h *PageHandler) ModuleDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	detail, err := h.service.GetModuleDetail(r.Context(), slug)
	if err != nil {
		// The page shows one generic failure state; only real store errors
		// get logged and a 500
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrModuleNotFound) {
			status = http.StatusNotFound
		} else {
			h.Logger.Error("failed to render module detail", zap.String("slug", slug), zap.Error(err))
		}
		h.render(w, status, "error.html", "Módulo não encontrado")
		return
	}

	h.render(w, http.StatusOK, "module.html", newModuleDetailView(detail))
}

// render executes a page template into a buffer first so a template failure
// can still produce a clean 500 instead of a half-written page
func (h *PageHandler) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		h.Logger.Error("failed to execute template", zap.String("template", name), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// moduleDetailView is the render model for the module detail page
type moduleDetailView struct {
	models.Module
	ContentHTML template.HTML
	Activities  []activityView
}

// activityView is the render model for one activity. Quiz and Simulator are
// nil unless the content decoded for the matching type; when both are nil
// the template shows the raw content text, which covers upload activities
// and malformed quiz/simulator payloads alike.
type activityView struct {
	models.Activity
	Label     string
	Icon      string
	Quiz      []quizQuestionView
	Simulator *models.SimulatorContent
}

type quizQuestionView struct {
	Question string
	Options  []quizOptionView
}

type quizOptionView struct {
	Number  int
	Text    string
	Correct bool
}

func newModuleDetailView(detail *models.ModuleDetail) moduleDetailView {
	view := moduleDetailView{
		Module:      detail.Module,
		ContentHTML: renderMarkdown(detail.Content),
	}

	for _, activity := range detail.Activities {
		av := activityView{
			Activity: activity,
			Label:    activityTypeLabel(activity.Type),
			Icon:     activityTypeIcon(activity.Type),
		}
		if quiz, ok := activity.Quiz(); ok {
			av.Quiz = newQuizView(quiz)
		}
		if sim, ok := activity.Simulator(); ok {
			av.Simulator = sim
		}
		view.Activities = append(view.Activities, av)
	}

	return view
}

func newQuizView(quiz *models.QuizContent) []quizQuestionView {
	questions := make([]quizQuestionView, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		qv := quizQuestionView{Question: q.Question}
		for i, option := range q.Options {
			qv.Options = append(qv.Options, quizOptionView{
				Number:  i + 1,
				Text:    option,
				Correct: q.Correct != nil && *q.Correct == i,
			})
		}
		questions = append(questions, qv)
	}
	return questions
}

// renderMarkdown converts markdown to HTML, falling back to the escaped
// source text when conversion fails
func renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<pre>" + template.HTMLEscapeString(src) + "</pre>")
	}
	return template.HTML(buf.String())
}

func activityTypeLabel(t models.ActivityType) string {
	switch t {
	case models.ActivityTypeQuiz:
		return "Quiz"
	case models.ActivityTypeUpload:
		return "Upload de Arquivo"
	case models.ActivityTypeSimulator:
		return "Simulador"
	default:
		return "Atividade"
	}
}

func activityTypeIcon(t models.ActivityType) string {
	switch t {
	case models.ActivityTypeQuiz:
		return "✅"
	case models.ActivityTypeUpload:
		return "📤"
	case models.ActivityTypeSimulator:
		return "🧠"
	default:
		return "📖"
	}
}
