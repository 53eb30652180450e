package provider

import "google.golang.org/genai"

// advisorResponseSchema declares the exact shape the plan model must
// return. Required-field enforcement is delegated to the model through
// this schema; the planner only re-checks parse success.
func advisorResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"businessIdeas": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":       {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
						"profitEstimate": {
							Type:        genai.TypeString,
							Description: "Monthly profit estimate based on user budget",
						},
						"riskLevel": {
							Type: genai.TypeString,
							Enum: []string{"Low", "Medium", "High"},
						},
						"monthlyExpenses": {Type: genai.TypeString},
						"suitability":     {Type: genai.TypeString},
					},
					Required: []string{"title", "description", "profitEstimate", "riskLevel", "monthlyExpenses", "suitability"},
				},
			},
			"bestIdeaPlan": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"ideaTitle": {Type: genai.TypeString},
					"investmentBreakdown": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"item": {Type: genai.TypeString},
								"cost": {Type: genai.TypeString},
							},
							Required: []string{"item", "cost"},
						},
					},
					"materials":         {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"marketingStrategy": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"staffing":          {Type: genai.TypeString},
					"timeline":          {Type: genai.TypeString},
					"locationRecommendation": {
						Type:        genai.TypeString,
						Description: "Specific market or area recommendation in the city",
					},
					"imagePrompt": {
						Type:        genai.TypeString,
						Description: "Visual description for image generation",
					},
				},
				Required: []string{"ideaTitle", "investmentBreakdown", "materials", "marketingStrategy", "staffing", "timeline", "locationRecommendation", "imagePrompt"},
			},
			"marketAnalysis": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"demand":         {Type: genai.TypeString},
					"competition":    {Type: genai.TypeString},
					"tipsToStandOut": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				},
				Required: []string{"demand", "competition", "tipsToStandOut"},
			},
			"legalRequirements": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"licenses":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"registration": {Type: genai.TypeString},
					"guidance":     {Type: genai.TypeString},
				},
				Required: []string{"licenses", "registration", "guidance"},
			},
			"smartTips": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"businessNames": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"logoIdeas":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"socialMedia":   {Type: genai.TypeString},
					"actionPlan":    {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				},
				Required: []string{"businessNames", "logoIdeas", "socialMedia", "actionPlan"},
			},
			"motivationalNote": {Type: genai.TypeString},
		},
		Required: []string{"businessIdeas", "bestIdeaPlan", "marketAnalysis", "legalRequirements", "smartTips", "motivationalNote"},
		PropertyOrdering: []string{
			"businessIdeas",
			"bestIdeaPlan",
			"marketAnalysis",
			"legalRequirements",
			"smartTips",
			"motivationalNote",
		},
	}
}
