package planner

import (
	"fmt"

	"github.com/ahmed-advisor/advisor-backend/internal/advisor/domain"
)

const planSystemInstruction = `You are 'Ahmed', Pakistan's leading Business Startup Consultant.
Your goal is to generate HIGHLY PROFESSIONAL, PROFITABLE, and REALISTIC business models.
Avoid generic advice. Provide concrete, actionable steps.

CRITICAL RULES:
1. Monetary values MUST be in PKR (Pakistani Rupee).
2. Location recommendations MUST be specific to the user's city. If they say 'Lahore', mention 'Liberty Market', 'DHA', 'Shah Alam', etc., based on the business type.
3. Profit estimates must be realistic for the budget provided.
4. Focus on modern, scalable, or high-demand businesses in Pakistan (e.g., E-commerce, Solar, Food Tech, Specialized Services) rather than just "opening a small shop" unless the budget is very low.`

func planPrompt(p domain.UserProfile) string {
	return fmt.Sprintf(`Create a professional business startup plan for this client:
- Name: %s
- City: %s
- Budget: %s PKR
- Skills: %s
- Interests: %s

Task:
1. Identify 3 professional business opportunities. One must be a high-growth potential idea.
2. Select the BEST idea and provide a comprehensive execution plan.
3. **Location Strategy**: You MUST suggest a specific type of location or a well-known commercial area in %s that is best for this specific business. Explain WHY this location is best.
4. Financials: Estimate monthly net profit conservatively.
5. Legal: List specific Pakistani licenses (NTN, SECP, Food Authority, etc.).

Return the response in structured JSON format.`,
		p.FullName, p.City, p.Budget, p.Skills, p.Interests, p.City)
}

func imagePrompt(plan domain.StartupPlan) string {
	return fmt.Sprintf(`A high-end, professional photography style image of a business in Pakistan: %s.
Context: %s.
The image should look realistic, modern, and inviting. Suitable for a business presentation.`,
		plan.IdeaTitle, plan.ImagePrompt)
}
