// Package speech is the server half of the voice assistant: it turns
// reply text into playable audio. Recognition stays in the browser;
// its transcript arrives as an ordinary chat message.
package speech

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/ahmed-advisor/advisor-backend/internal/advisor/domain"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/provider"
)

type Synthesizer struct {
	provider provider.Provider
}

func NewSynthesizer(p provider.Provider) *Synthesizer {
	return &Synthesizer{provider: p}
}

// Synthesize returns a data:audio/wav;base64 URI for text. Any
// network or encoding failure surfaces as domain.ErrAudio; callers
// degrade to text-only output.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("text is required")
	}

	pcm, err := s.provider.SynthesizeSpeech(ctx, text)
	if err != nil {
		if errors.Is(err, domain.ErrMissingAPIKey) {
			return "", err
		}
		return "", fmt.Errorf("synthesize: %v: %w", err, domain.ErrAudio)
	}
	if len(pcm) == 0 {
		return "", fmt.Errorf("empty audio payload: %w", domain.ErrAudio)
	}

	wav := EncodeWAV(pcm, SampleRate, NumChannels, BitsPerSample)
	return "data:audio/wav;base64," + base64.StdEncoding.EncodeToString(wav), nil
}
