package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmed-advisor/advisor-backend/internal/advisor/chat"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/domain"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/flow"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/planner"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/projects/repository"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/speech"
)

const planPayload = `{
	"businessIdeas": [
		{"title": "Cloud Kitchen", "description": "Delivery-only kitchen", "profitEstimate": "PKR 120,000/month", "riskLevel": "Medium", "monthlyExpenses": "PKR 60,000", "suitability": "High demand"}
	],
	"bestIdeaPlan": {
		"ideaTitle": "Cloud Kitchen",
		"investmentBreakdown": [{"item": "Kitchen equipment", "cost": "PKR 25,000"}],
		"materials": ["Stove"],
		"marketingStrategy": ["Foodpanda listing"],
		"staffing": "1 helper",
		"timeline": "4 weeks",
		"locationRecommendation": "Johar Town, Lahore",
		"imagePrompt": "A modern delivery kitchen"
	},
	"marketAnalysis": {"demand": "High", "competition": "Moderate", "tipsToStandOut": ["Fast delivery"]},
	"legalRequirements": {"licenses": ["Punjab Food Authority"], "registration": "NTN", "guidance": "Register early"},
	"smartTips": {"businessNames": ["LahoreBites"], "logoIdeas": ["Spoon icon"], "socialMedia": "Instagram reels", "actionPlan": ["Week 1: setup"]},
	"motivationalNote": "Start small, grow fast."
}`

type fakeProvider struct {
	planPayload string
	planErr     error
	reply       string
	converseErr error
	pcm         []byte
	speechErr   error
}

func (f *fakeProvider) GeneratePlan(ctx context.Context, system, prompt string) (string, error) {
	if f.planErr != nil {
		return "", f.planErr
	}
	return f.planPayload, nil
}

func (f *fakeProvider) Converse(ctx context.Context, system string, history []domain.ChatMessage, message string) (string, error) {
	if f.converseErr != nil {
		return "", f.converseErr
	}
	return f.reply, nil
}

func (f *fakeProvider) SynthesizeSpeech(ctx context.Context, text string) ([]byte, error) {
	if f.speechErr != nil {
		return nil, f.speechErr
	}
	return f.pcm, nil
}

func (f *fakeProvider) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	return nil, "", domain.ErrUpstream
}

func newTestRouter(t *testing.T, fake *fakeProvider) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := repository.New(client, "advisor:saved_projects")
	flowSvc := flow.NewService(flow.NewStore(), planner.NewService(fake), repo)
	h := New(flowSvc, chat.NewService(fake), speech.NewSynthesizer(fake), repo)

	r := gin.New()
	h.Register(r.Group("/api/v1"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func createSession(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	sess, ok := resp["session"].(map[string]any)
	require.True(t, ok)
	id, ok := sess["id"].(string)
	require.True(t, ok)
	return id
}

func validProfile() map[string]any {
	return map[string]any{
		"fullName":  "Ali Khan",
		"city":      "Lahore",
		"age":       "28",
		"budget":    "50000",
		"skills":    "cooking",
		"interests": "food business",
	}
}

func TestSessionLifecycle(t *testing.T) {
	r := newTestRouter(t, &fakeProvider{planPayload: planPayload})
	sid := createSession(t, r)

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/sessions/"+sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "HOME", resp["session"].(map[string]any)["view"])

	w, resp = doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+sid+"/start", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "INPUT", resp["session"].(map[string]any)["view"])

	w, resp = doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+sid+"/plan", validProfile())
	require.Equal(t, http.StatusOK, w.Code)
	sess := resp["session"].(map[string]any)
	assert.Equal(t, "RESULTS", sess["view"])

	plan := sess["plan"].(map[string]any)
	assert.Equal(t, "Cloud Kitchen", plan["bestIdeaPlan"].(map[string]any)["ideaTitle"])
}

func TestGetSession_UnknownID(t *testing.T) {
	r := newTestRouter(t, &fakeProvider{planPayload: planPayload})

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/sessions/no-such-session", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, resp["ok"])
}

func TestSubmitPlan_InvalidBody(t *testing.T) {
	r := newTestRouter(t, &fakeProvider{planPayload: planPayload})
	sid := createSession(t, r)

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+sid+"/start", nil)
	require.Equal(t, http.StatusOK, w.Code)

	for _, body := range []map[string]any{
		{},
		{"fullName": "Ali Khan", "city": "Lahore"},
		{"fullName": " ", "city": "Lahore", "budget": "50000"},
	} {
		w, resp := doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+sid+"/plan", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, false, resp["ok"])
	}
}

func TestSubmitPlan_UpstreamFailureSurfacesSession(t *testing.T) {
	r := newTestRouter(t, &fakeProvider{planErr: domain.ErrUpstream})
	sid := createSession(t, r)

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+sid+"/start", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+sid+"/plan", validProfile())
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, false, resp["ok"])

	// The session is back on the input screen with the error surfaced.
	sess := resp["session"].(map[string]any)
	assert.Equal(t, "INPUT", sess["view"])
	assert.NotEmpty(t, sess["lastError"])
}

func TestSubmitPlan_WrongView(t *testing.T) {
	r := newTestRouter(t, &fakeProvider{planPayload: planPayload})
	sid := createSession(t, r)

	// Still on HOME, submission is rejected.
	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+sid+"/plan", validProfile())
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, false, resp["ok"])
}

func TestSaveAndOpenProject(t *testing.T) {
	r := newTestRouter(t, &fakeProvider{planPayload: planPayload})
	sid := createSession(t, r)

	doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+sid+"/start", nil)
	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+sid+"/plan", validProfile())
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+sid+"/save", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	project := resp["project"].(map[string]any)
	pid := project["id"].(string)
	require.NotEmpty(t, pid)
	assert.Equal(t, "Ali Khan", project["userName"])

	w, resp = doJSON(t, r, http.MethodGet, "/api/v1/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["projects"], 1)

	w, resp = doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+sid+"/saved", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SAVED", resp["session"].(map[string]any)["view"])

	w, resp = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/sessions/%s/open/%s", sid, pid), nil)
	require.Equal(t, http.StatusOK, w.Code)
	sess := resp["session"].(map[string]any)
	assert.Equal(t, "RESULTS", sess["view"])
	assert.Equal(t, true, sess["saved"])
}

func TestSaveProject_WithoutPlan(t *testing.T) {
	r := newTestRouter(t, &fakeProvider{planPayload: planPayload})
	sid := createSession(t, r)

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+sid+"/save", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, false, resp["ok"])
}

func TestDeleteProject(t *testing.T) {
	r := newTestRouter(t, &fakeProvider{planPayload: planPayload})
	sid := createSession(t, r)

	doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+sid+"/start", nil)
	doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+sid+"/plan", validProfile())
	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+sid+"/save", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	pid := resp["project"].(map[string]any)["id"].(string)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/v1/projects/"+pid, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = doJSON(t, r, http.MethodGet, "/api/v1/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, resp["projects"])

	// Deleting again is a no-op.
	w, _ = doJSON(t, r, http.MethodDelete, "/api/v1/projects/"+pid, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChat_TextReply(t *testing.T) {
	r := newTestRouter(t, &fakeProvider{reply: "Walaikum assalam!"})

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/chat", map[string]any{
		"message": "Assalam o Alaikum",
		"history": []map[string]string{{"role": "model", "text": "Hello!"}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Walaikum assalam!", resp["reply"])
	assert.NotContains(t, resp, "audio")
}

func TestChat_WithVoice(t *testing.T) {
	r := newTestRouter(t, &fakeProvider{reply: "Jee bilkul!", pcm: []byte{0x00, 0x10}})

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/chat", map[string]any{
		"message":   "Tell me more",
		"withVoice": true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Jee bilkul!", resp["reply"])

	audio, ok := resp["audio"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(audio, "data:audio/wav;base64,"))
}

func TestChat_VoiceFailureDegradesToText(t *testing.T) {
	r := newTestRouter(t, &fakeProvider{reply: "Jee bilkul!", speechErr: domain.ErrUpstream})

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/chat", map[string]any{
		"message":   "Tell me more",
		"withVoice": true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Jee bilkul!", resp["reply"])
	assert.NotContains(t, resp, "audio")
}

func TestChat_ProviderFailureReturnsFallback(t *testing.T) {
	r := newTestRouter(t, &fakeProvider{converseErr: domain.ErrUpstream})

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/chat", map[string]any{"message": "hello"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, chat.FallbackReply, resp["reply"])
}

func TestChat_EmptyMessage(t *testing.T) {
	r := newTestRouter(t, &fakeProvider{reply: "ok"})

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/chat", map[string]any{"message": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["ok"])
}

func TestSpeech_ReturnsAudio(t *testing.T) {
	r := newTestRouter(t, &fakeProvider{pcm: []byte{0x00, 0x10, 0x00, 0x20}})

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/speech", map[string]any{"text": "Assalam o Alaikum"})
	require.Equal(t, http.StatusOK, w.Code)

	audio, ok := resp["audio"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(audio, "data:audio/wav;base64,"))
}

func TestSpeech_ErrorMapping(t *testing.T) {
	t.Run("upstream failure", func(t *testing.T) {
		r := newTestRouter(t, &fakeProvider{speechErr: domain.ErrUpstream})

		w, _ := doJSON(t, r, http.MethodPost, "/api/v1/speech", map[string]any{"text": "hello"})
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("missing credential", func(t *testing.T) {
		r := newTestRouter(t, &fakeProvider{speechErr: domain.ErrMissingAPIKey})

		w, _ := doJSON(t, r, http.MethodPost, "/api/v1/speech", map[string]any{"text": "hello"})
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("empty text", func(t *testing.T) {
		r := newTestRouter(t, &fakeProvider{pcm: []byte{0x01}})

		w, _ := doJSON(t, r, http.MethodPost, "/api/v1/speech", map[string]any{"text": ""})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
