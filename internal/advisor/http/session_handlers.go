package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ahmed-advisor/advisor-backend/internal/advisor/domain"
)

func (h *Handler) createSession(c *gin.Context) {
	sess := h.flow.CreateSession()
	c.JSON(http.StatusCreated, gin.H{"ok": true, "session": sess})
}

func (h *Handler) getSession(c *gin.Context) {
	sess, err := h.flow.GetSession(c.Param("sid"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "session": sess})
}

func (h *Handler) startNew(c *gin.Context) {
	sess, err := h.flow.StartNew(c.Param("sid"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "session": sess})
}

func (h *Handler) submitPlan(c *gin.Context) {
	var profile domain.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil || strings.TrimSpace(profile.FullName) == "" ||
		strings.TrimSpace(profile.City) == "" || strings.TrimSpace(profile.Budget) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	sess, err := h.flow.SubmitPlan(c.Request.Context(), c.Param("sid"), profile)
	if err != nil {
		// The session already carries the surfaced message and is back
		// on the input screen; the client gets both.
		c.JSON(statusFor(err), gin.H{"ok": false, "error": err.Error(), "session": sess})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "session": sess})
}

func (h *Handler) saveProject(c *gin.Context) {
	sess, project, err := h.flow.SaveCurrent(c.Request.Context(), c.Param("sid"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "session": sess, "project": project})
}

func (h *Handler) openSaved(c *gin.Context) {
	sess, err := h.flow.OpenSaved(c.Param("sid"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "session": sess})
}

func (h *Handler) openProject(c *gin.Context) {
	sess, err := h.flow.OpenProject(c.Request.Context(), c.Param("sid"), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "session": sess})
}
