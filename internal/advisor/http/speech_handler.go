package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type speechReq struct {
	Text string `json:"text"`
}

func (h *Handler) postSpeech(c *gin.Context) {
	var req speechReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	audio, err := h.speech.Synthesize(c.Request.Context(), req.Text)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "audio": audio})
}
