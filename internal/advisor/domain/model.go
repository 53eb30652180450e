package domain

// UserProfile is the startup questionnaire a client submits. All fields
// are free text; only name, city and budget are required.
type UserProfile struct {
	FullName  string `json:"fullName"`
	City      string `json:"city"`
	Age       string `json:"age"`
	Budget    string `json:"budget"`
	Skills    string `json:"skills"`
	Interests string `json:"interests"`
}

// RiskLevel values the model is allowed to return for an idea.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// BusinessIdea is one of the candidate opportunities in a generated plan.
type BusinessIdea struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	ProfitEstimate  string `json:"profitEstimate"`
	RiskLevel       string `json:"riskLevel"`
	MonthlyExpenses string `json:"monthlyExpenses"`
	Suitability     string `json:"suitability"`
}

type InvestmentItem struct {
	Item string `json:"item"`
	Cost string `json:"cost"`
}

// StartupPlan is the elaborated execution plan for the selected idea.
// GeneratedImageURL is filled by a best-effort secondary step and may
// stay empty.
type StartupPlan struct {
	IdeaTitle              string           `json:"ideaTitle"`
	InvestmentBreakdown    []InvestmentItem `json:"investmentBreakdown"`
	Materials              []string         `json:"materials"`
	MarketingStrategy      []string         `json:"marketingStrategy"`
	Staffing               string           `json:"staffing"`
	Timeline               string           `json:"timeline"`
	LocationRecommendation string           `json:"locationRecommendation"`
	ImagePrompt            string           `json:"imagePrompt"`
	GeneratedImageURL      string           `json:"generatedImageUrl,omitempty"`
}

type MarketAnalysis struct {
	Demand         string   `json:"demand"`
	Competition    string   `json:"competition"`
	TipsToStandOut []string `json:"tipsToStandOut"`
}

type LegalRequirements struct {
	Licenses     []string `json:"licenses"`
	Registration string   `json:"registration"`
	Guidance     string   `json:"guidance"`
}

type SmartTips struct {
	BusinessNames []string `json:"businessNames"`
	LogoIdeas     []string `json:"logoIdeas"`
	SocialMedia   string   `json:"socialMedia"`
	ActionPlan    []string `json:"actionPlan"`
}

// AdvisorResponse is the complete structured output of one plan
// generation. BestIdeaPlan.IdeaTitle is expected to match the title of
// one entry in BusinessIdeas; the UI and the chat context rely on that
// join but it is not enforced here.
type AdvisorResponse struct {
	BusinessIdeas     []BusinessIdea    `json:"businessIdeas"`
	BestIdeaPlan      StartupPlan       `json:"bestIdeaPlan"`
	MarketAnalysis    MarketAnalysis    `json:"marketAnalysis"`
	LegalRequirements LegalRequirements `json:"legalRequirements"`
	SmartTips         SmartTips         `json:"smartTips"`
	MotivationalNote  string            `json:"motivationalNote"`
}

// SavedProject is an AdvisorResponse persisted by an explicit save
// action. Only name, city and budget of the profile are kept; skills
// and interests are dropped on purpose to keep the stored payload
// small, so reopening a project reconstructs a partial profile.
type SavedProject struct {
	AdvisorResponse

	ID         string `json:"id"`
	CreatedAt  int64  `json:"createdAt"`
	UserName   string `json:"userName"`
	UserCity   string `json:"userCity"`
	UserBudget string `json:"userBudget"`
}

// Chat roles as the provider expects them.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage is one turn of an assistant conversation. Histories are
// caller-owned, append-only and always sent in chronological order.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
