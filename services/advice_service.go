package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MeenakshiPramod/WellHer/models"

	"google.golang.org/genai"
)

const (
	adviceModel   = "gemini-2.5-pro"
	adviceTimeout = 45 * time.Second
)

// BalanceRatings the food-analysis contract allows. Anything else coming
// back from the model is coerced to "Unknown".
var balanceRatings = map[string]bool{
	"Poor": true, "Average": true, "Good": true, "Excellent": true, "Unknown": true,
}

// FoodAnalysis is the structured result of a food-photo analysis.
type FoodAnalysis struct {
	FoodItems     []string `json:"food_items"`
	Calories      float64  `json:"calories"`
	Protein       float64  `json:"protein"`
	Carbs         float64  `json:"carbs"`
	Fat           float64  `json:"fat"`
	BalanceRating string   `json:"balance_rating"`
	Suggestions   []string `json:"suggestions"`
}

// generator is the boundary to the external model: one text call, one
// multimodal call. Implemented by the genai client and by test fakes.
type generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateVision(ctx context.Context, prompt, mimeType string, image []byte) (string, error)
}

type genaiGenerator struct {
	client *genai.Client
	model  string
}

func newGenaiGenerator(apiKey string) (*genaiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &genaiGenerator{client: client, model: adviceModel}, nil
}

func (g *genaiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

func (g *genaiGenerator) GenerateVision(ctx context.Context, prompt, mimeType string, image []byte) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(image, mimeType),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}
	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

// AdviceService builds prompts from session/repository data, forwards them
// to the model, and turns replies into results the handlers can return.
type AdviceService struct {
	gen     generator
	timeout time.Duration
}

func NewAdviceService() (*AdviceService, error) {
	gen, err := newGenaiGenerator(os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		return nil, err
	}
	return &AdviceService{gen: gen, timeout: adviceTimeout}, nil
}

var defaultAdvice *AdviceService

// InitAdviceService wires the default service. Called once from main.
func InitAdviceService() error {
	svc, err := NewAdviceService()
	if err != nil {
		return err
	}
	defaultAdvice = svc
	return nil
}

func Advice() *AdviceService { return defaultAdvice }

func BuildFoodAnalysisPrompt() string {
	return `You are a nutritionist analyzing a food photo. Perform these tasks:
1. Identify the food items
2. Estimate total calories
3. Estimate macronutrients (protein, carbs, fat)
4. Assess nutritional balance
5. Suggest healthier substitutes or additions to make it a balanced meal

Return in this JSON format:
{
    "food_items": [list],
    "calories": number,
    "protein": number,
    "carbs": number,
    "fat": number,
    "balance_rating": "Poor/Average/Good/Excellent",
    "suggestions": [list of suggestions]
}`
}

func BuildPcodAdvicePrompt(profile *models.PcodProfile, intake, burned float64) string {
	var sb strings.Builder
	sb.WriteString("You are a women's health specialist. A user with PCOD has provided this information:\n")
	if profile != nil {
		fmt.Fprintf(&sb, "Diagnosed: %s\n", profile.Diagnosed)
		fmt.Fprintf(&sb, "Weight: %.0f kg, Height: %.0f cm\n", profile.WeightKg, profile.HeightCm)
		fmt.Fprintf(&sb, "Symptoms: %s\n", profile.Symptoms)
		fmt.Fprintf(&sb, "Goals: %s\n", profile.Goals)
	}
	fmt.Fprintf(&sb, "Calorie balance: intake %.0f kcal, burned %.0f kcal, net %.0f kcal\n", intake, burned, intake-burned)
	sb.WriteString(`
Provide comprehensive advice for PCOD reversal including:
- Dietary recommendations tailored to their calorie balance
- Exercise suggestions
- Lifestyle changes
- Supplement ideas (if any)
- Stress management techniques

Format your response with clear headings and bullet points.`)
	return sb.String()
}

func BuildHealthInsightPrompt(logs []models.HealthLog) string {
	var sb strings.Builder
	sb.WriteString("Analyze this health data and provide personalized recommendations:\n")
	for _, l := range logs {
		fmt.Fprintf(&sb, "- %s: blood pressure %.0f mmHg, sugar %.0f mg/dL, cholesterol %.0f mg/dL\n",
			l.LoggedAt.Format("2006-01-02 15:04"), l.BloodPressure, l.SugarLevel, l.Cholesterol)
	}
	sb.WriteString(`
Focus on:
- Blood pressure analysis
- Blood sugar analysis
- Cholesterol analysis
- Overall health assessment
- Specific actionable recommendations

Format as bullet points for readability.`)
	return sb.String()
}

// fallbackFoodAnalysis is what callers get when the model reply cannot be
// decoded: zeroed macros, an Unknown rating and a retry suggestion.
func fallbackFoodAnalysis() FoodAnalysis {
	return FoodAnalysis{
		FoodItems:     []string{"Food analysis failed"},
		BalanceRating: "Unknown",
		Suggestions:   []string{"Please try again or enter manually"},
	}
}

// ParseFoodAnalysis decodes the model reply as strict JSON, tolerating
// surrounding code-fence markers. The text is never evaluated; anything that
// does not decode yields the fallback result plus ErrMalformedAnalysis.
func ParseFoodAnalysis(raw string) (FoodAnalysis, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var out FoodAnalysis
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return fallbackFoodAnalysis(), ErrMalformedAnalysis
	}
	if !balanceRatings[out.BalanceRating] {
		out.BalanceRating = "Unknown"
	}
	return out, nil
}

func (a *AdviceService) invoke(ctx context.Context, call func(context.Context) (string, error)) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	text, err := call(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", &ExternalServiceError{Kind: ExternalTimeout, Err: err}
		}
		return "", &ExternalServiceError{Kind: ExternalTransport, Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &ExternalServiceError{Kind: ExternalEmpty, Err: fmt.Errorf("model returned no text")}
	}
	return text, nil
}

// AnalyzeFoodImage runs the multimodal call and parses the structured reply.
// A parse failure is returned together with the fallback result so the
// caller can still show something useful.
func (a *AdviceService) AnalyzeFoodImage(ctx context.Context, mimeType string, image []byte) (FoodAnalysis, error) {
	prompt := BuildFoodAnalysisPrompt()
	text, err := a.invoke(ctx, func(ctx context.Context) (string, error) {
		return a.gen.GenerateVision(ctx, prompt, mimeType, image)
	})
	if err != nil {
		return fallbackFoodAnalysis(), err
	}
	return ParseFoodAnalysis(text)
}

// PcodAdvice returns free-form narrative text; no parsing is required.
func (a *AdviceService) PcodAdvice(ctx context.Context, profile *models.PcodProfile, intake, burned float64) (string, error) {
	prompt := BuildPcodAdvicePrompt(profile, intake, burned)
	return a.invoke(ctx, func(ctx context.Context) (string, error) {
		return a.gen.GenerateText(ctx, prompt)
	})
}

func (a *AdviceService) HealthInsights(ctx context.Context, logs []models.HealthLog) (string, error) {
	prompt := BuildHealthInsightPrompt(logs)
	return a.invoke(ctx, func(ctx context.Context) (string, error) {
		return a.gen.GenerateText(ctx, prompt)
	})
}
