package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahmed-advisor/advisor-backend/internal/advisor/chat"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/domain"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/flow"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/projects/repository"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/speech"
)

type Handler struct {
	flow   *flow.Service
	chat   *chat.Service
	speech *speech.Synthesizer
	repo   *repository.ProjectRepository
}

func New(flowSvc *flow.Service, chatSvc *chat.Service, synth *speech.Synthesizer, repo *repository.ProjectRepository) *Handler {
	return &Handler{
		flow:   flowSvc,
		chat:   chatSvc,
		speech: synth,
		repo:   repo,
	}
}

// Register attaches all advisor routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	sessions := rg.Group("/sessions")
	sessions.POST("", h.createSession)
	sessions.GET("/:sid", h.getSession)
	sessions.POST("/:sid/start", h.startNew)
	sessions.POST("/:sid/plan", h.submitPlan)
	sessions.POST("/:sid/save", h.saveProject)
	sessions.POST("/:sid/saved", h.openSaved)
	sessions.POST("/:sid/open/:id", h.openProject)

	projects := rg.Group("/projects")
	projects.GET("", h.listProjects)
	projects.DELETE("/:id", h.deleteProject)

	rg.POST("/chat", h.postChat)
	rg.POST("/speech", h.postSpeech)
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRequestInFlight), errors.Is(err, flow.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrMissingAPIKey):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrUpstream), errors.Is(err, domain.ErrMalformedPlan), errors.Is(err, domain.ErrAudio):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"ok": false, "error": err.Error()})
}
