package provider

import (
	"context"

	"github.com/ahmed-advisor/advisor-backend/internal/advisor/domain"
)

// Provider is the narrow surface the advisor needs from a generative-AI
// vendor. Services depend on this interface, never on a concrete SDK,
// so the vendor is swappable and tests can run against a fake.
type Provider interface {
	// GeneratePlan runs a structured-generation request and returns the
	// raw JSON payload text. The declared response schema is owned by
	// the implementation.
	GeneratePlan(ctx context.Context, systemInstruction, prompt string) (string, error)

	// Converse sends the full prior history plus one new message to the
	// conversational endpoint and returns the reply text. History must
	// be forwarded in the exact order given.
	Converse(ctx context.Context, systemInstruction string, history []domain.ChatMessage, message string) (string, error)

	// SynthesizeSpeech returns raw PCM audio (s16le, 24 kHz, mono) for
	// the given text.
	SynthesizeSpeech(ctx context.Context, text string) ([]byte, error)

	// GenerateImage returns encoded image bytes and their MIME type for
	// an illustrative prompt.
	GenerateImage(ctx context.Context, prompt string) ([]byte, string, error)
}
