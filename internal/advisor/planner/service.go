package planner

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/ahmed-advisor/advisor-backend/internal/advisor/domain"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/inflight"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/provider"
)

// Service builds plan-generation requests, validates the structured
// result and augments it with a best-effort illustrative image.
type Service struct {
	provider provider.Provider
	guard    *inflight.Guard
}

func NewService(p provider.Provider) *Service {
	return &Service{
		provider: p,
		guard:    inflight.New(),
	}
}

// Generate produces a complete advisor response for the given profile.
// sessionKey scopes the overlap guard: a second call for the same key
// while one is running fails with domain.ErrRequestInFlight.
//
// A single upstream failure surfaces immediately; there are no retries.
// The image step never fails the operation.
func (s *Service) Generate(ctx context.Context, sessionKey string, profile domain.UserProfile) (*domain.AdvisorResponse, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	release, ok := s.guard.TryAcquire("plan:" + sessionKey)
	if !ok {
		return nil, domain.ErrRequestInFlight
	}
	defer release()

	payload, err := s.provider.GeneratePlan(ctx, planSystemInstruction, planPrompt(profile))
	if err != nil {
		return nil, fmt.Errorf("generate plan: %w", err)
	}

	var resp domain.AdvisorResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return nil, fmt.Errorf("parse plan payload: %v: %w", err, domain.ErrMalformedPlan)
	}
	if len(resp.BusinessIdeas) == 0 || resp.BestIdeaPlan.IdeaTitle == "" {
		return nil, fmt.Errorf("plan payload missing required sections: %w", domain.ErrMalformedPlan)
	}

	s.attachImage(ctx, &resp)

	return &resp, nil
}

// attachImage fills GeneratedImageURL when the provider can produce an
// illustration. Failures are logged and swallowed; the plan stands
// without an image.
func (s *Service) attachImage(ctx context.Context, resp *domain.AdvisorResponse) {
	data, mime, err := s.provider.GenerateImage(ctx, imagePrompt(resp.BestIdeaPlan))
	if err != nil {
		log.Printf("[warn] operation=generate_image error=%v", err)
		return
	}
	if mime == "" {
		mime = "image/png"
	}
	resp.BestIdeaPlan.GeneratedImageURL = fmt.Sprintf("data:%s;base64,%s",
		mime, base64.StdEncoding.EncodeToString(data))
}

func validateProfile(p domain.UserProfile) error {
	if strings.TrimSpace(p.FullName) == "" {
		return fmt.Errorf("fullName is required")
	}
	if strings.TrimSpace(p.City) == "" {
		return fmt.Errorf("city is required")
	}
	if strings.TrimSpace(p.Budget) == "" {
		return fmt.Errorf("budget is required")
	}
	return nil
}
