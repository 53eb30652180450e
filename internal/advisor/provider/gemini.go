package provider

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/ahmed-advisor/advisor-backend/config"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/domain"
)

// Gemini implements Provider on top of the Google GenAI SDK.
//
// The client is nil when no API key is configured; every call then
// fails with domain.ErrMissingAPIKey before touching the network, so a
// keyless deployment still boots and serves everything else.
type Gemini struct {
	client  *genai.Client
	cfg     config.Gemini
	limiter *rate.Limiter
}

func NewGemini(ctx context.Context, cfg config.Gemini) (*Gemini, error) {
	g := &Gemini{
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), cfg.RequestsPerMinute),
	}

	if cfg.APIKey == "" {
		return g, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	g.client = client
	return g, nil
}

// admit gates one outbound call. Denials surface as upstream failures
// so callers never block behind the quota window.
func (g *Gemini) admit() error {
	if g.client == nil {
		return domain.ErrMissingAPIKey
	}
	if !g.limiter.Allow() {
		return fmt.Errorf("request rate exceeded: %w", domain.ErrUpstream)
	}
	return nil
}

func (g *Gemini) GeneratePlan(ctx context.Context, systemInstruction, prompt string) (string, error) {
	if err := g.admit(); err != nil {
		return "", err
	}

	temp := g.cfg.Temperature
	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.PlanModel, genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
			Temperature:       &temp,
			ResponseMIMEType:  "application/json",
			ResponseSchema:    advisorResponseSchema(),
		})
	if err != nil {
		return "", fmt.Errorf("generate plan: %v: %w", err, domain.ErrUpstream)
	}

	text := collectText(resp)
	if text == "" {
		return "", fmt.Errorf("empty plan payload: %w", domain.ErrUpstream)
	}
	return text, nil
}

func (g *Gemini) Converse(ctx context.Context, systemInstruction string, history []domain.ChatMessage, message string) (string, error) {
	if err := g.admit(); err != nil {
		return "", err
	}

	// Prior turns go over in the exact order the caller produced them.
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		contents = append(contents, genai.NewContentFromText(m.Text, genai.Role(m.Role)))
	}

	chat, err := g.client.Chats.Create(ctx, g.cfg.ChatModel,
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		}, contents)
	if err != nil {
		return "", fmt.Errorf("create chat: %v: %w", err, domain.ErrUpstream)
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", fmt.Errorf("send message: %v: %w", err, domain.ErrUpstream)
	}

	reply := collectText(resp)
	if reply == "" {
		return "", fmt.Errorf("empty chat reply: %w", domain.ErrUpstream)
	}
	return reply, nil
}

func (g *Gemini) SynthesizeSpeech(ctx context.Context, text string) ([]byte, error) {
	if err := g.admit(); err != nil {
		return nil, err
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.TTSModel, genai.Text(text),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &genai.SpeechConfig{
				VoiceConfig: &genai.VoiceConfig{
					PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: g.cfg.Voice},
				},
			},
		})
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %v: %w", err, domain.ErrUpstream)
	}

	if blob := firstInlineData(resp); blob != nil && len(blob.Data) > 0 {
		return blob.Data, nil
	}
	return nil, fmt.Errorf("no audio in response: %w", domain.ErrUpstream)
}

func (g *Gemini) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	if err := g.admit(); err != nil {
		return nil, "", err
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.ImageModel, genai.Text(prompt),
		&genai.GenerateContentConfig{
			ImageConfig: &genai.ImageConfig{AspectRatio: "16:9"},
		})
	if err != nil {
		return nil, "", fmt.Errorf("generate image: %v: %w", err, domain.ErrUpstream)
	}

	if blob := firstInlineData(resp); blob != nil && len(blob.Data) > 0 {
		return blob.Data, blob.MIMEType, nil
	}
	return nil, "", fmt.Errorf("no image in response: %w", domain.ErrUpstream)
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}

func firstInlineData(resp *genai.GenerateContentResponse) *genai.Blob {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return nil
	}
	for _, part := range candidate.Content.Parts {
		if part != nil && part.InlineData != nil {
			return part.InlineData
		}
	}
	return nil
}
