package chat

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ahmed-advisor/advisor-backend/internal/advisor/domain"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/inflight"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/provider"
)

const personaInstruction = `You are 'Ahmed', the AI Assistant for the 'Ahmed Pakistan Business Advisor' website.
Your role is to help users navigate the site and answer questions about business in Pakistan.
Be helpful, professional, and friendly.`

// FallbackReply is returned in place of an assistant message when the
// provider call fails, so the conversation keeps flowing.
const FallbackReply = "Maaf kijiye, connection issue. Please try again."

// Service forwards conversation turns to the provider. It holds no
// state between calls beyond the overlap guard; histories are
// caller-owned and append-only.
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

// Send forwards history plus message and returns the assistant reply.
// Provider failures become FallbackReply rather than an error; only a
// concurrent send for the same sessionKey is rejected.
func (s *Service) Send(ctx context.Context, sessionKey string, history []domain.ChatMessage, message string, plan *domain.AdvisorResponse) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("message is required")
	}

	release, ok := s.guard.TryAcquire("chat:" + sessionKey)
	if !ok {
		return "", domain.ErrRequestInFlight
	}
	defer release()

	reply, err := s.provider.Converse(ctx, systemContext(plan), history, message)
	if err != nil {
		log.Printf("[warn] operation=chat_send error=%v", err)
		return FallbackReply, nil
	}
	return reply, nil
}

// systemContext is the persona instruction, extended with a summary of
// the current plan when one exists so the assistant can answer
// questions about it.
func systemContext(plan *domain.AdvisorResponse) string {
	if plan == nil {
		return personaInstruction
	}

	var budget strings.Builder
	for _, item := range plan.BestIdeaPlan.InvestmentBreakdown {
		budget.WriteString(", " + item.Item + ": " + item.Cost)
	}

	return personaInstruction + fmt.Sprintf(`

CURRENT CONTEXT - The user has generated a business plan for: %s.
Details:
- Budget: %s
- Location Rec: %s
- Profit Est: %s

If the user asks about this plan, use the details above to answer.`,
		plan.BestIdeaPlan.IdeaTitle,
		budget.String(),
		plan.BestIdeaPlan.LocationRecommendation,
		profitEstimateFor(plan, plan.BestIdeaPlan.IdeaTitle))
}

// profitEstimateFor looks the selected idea up by title. The join is by
// exact string match, mirroring how the plan model references its best
// idea.
func profitEstimateFor(plan *domain.AdvisorResponse, title string) string {
	for _, idea := range plan.BusinessIdeas {
		if idea.Title == title {
			return idea.ProfitEstimate
		}
	}
	return ""
}
