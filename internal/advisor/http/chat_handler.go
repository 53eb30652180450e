package http

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ahmed-advisor/advisor-backend/internal/advisor/domain"
)

type chatReq struct {
	SessionID string               `json:"sessionId"`
	History   []domain.ChatMessage `json:"history"`
	Message   string               `json:"message"`
	WithVoice bool                 `json:"withVoice,omitempty"`
}

// postChat forwards one conversation turn. The history is caller-owned
// and forwarded verbatim; when the flow session holds a generated plan
// it becomes the assistant's context. With withVoice set the reply is
// also synthesized; voice failure degrades to a text-only reply.
func (h *Handler) postChat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	var plan *domain.AdvisorResponse
	if req.SessionID != "" {
		if sess, err := h.flow.GetSession(req.SessionID); err == nil {
			plan = sess.Plan
		}
	}

	sessionKey := req.SessionID
	if sessionKey == "" {
		sessionKey = c.ClientIP()
	}

	reply, err := h.chat.Send(c.Request.Context(), sessionKey, req.History, req.Message, plan)
	if err != nil {
		fail(c, err)
		return
	}

	resp := gin.H{"ok": true, "reply": reply}
	if req.WithVoice {
		audio, err := h.speech.Synthesize(c.Request.Context(), reply)
		if err != nil {
			log.Printf("[warn] operation=chat_voice error=%v", err)
		} else {
			resp["audio"] = audio
		}
	}

	c.JSON(http.StatusOK, resp)
}
