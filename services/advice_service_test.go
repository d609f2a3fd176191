package services

import (
	"context"
	"testing"
	"time"

	"github.com/MeenakshiPramod/WellHer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	text string
	err  error
	wait time.Duration

	lastPrompt string
	lastMime   string
	lastImage  []byte
}

func (f *fakeGenerator) generate(ctx context.Context) (string, error) {
	if f.wait > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.wait):
		}
	}
	return f.text, f.err
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.generate(ctx)
}

func (f *fakeGenerator) GenerateVision(ctx context.Context, prompt, mimeType string, image []byte) (string, error) {
	f.lastPrompt = prompt
	f.lastMime = mimeType
	f.lastImage = image
	return f.generate(ctx)
}

func newTestAdvice(gen generator) *AdviceService {
	return &AdviceService{gen: gen, timeout: 100 * time.Millisecond}
}

const fencedAnalysis = "```json\n" + `{ "food_items": ["apple"], "calories": 95, "protein": 0, "carbs": 25, "fat": 0, "balance_rating": "Good", "suggestions": ["add protein"] }` + "\n```"

func TestParseFoodAnalysisFencedJSON(t *testing.T) {
	out, err := ParseFoodAnalysis(fencedAnalysis)
	require.NoError(t, err)

	assert.Equal(t, []string{"apple"}, out.FoodItems)
	assert.Equal(t, 95.0, out.Calories)
	assert.Equal(t, 25.0, out.Carbs)
	assert.Equal(t, "Good", out.BalanceRating)
	assert.Equal(t, []string{"add protein"}, out.Suggestions)
}

func TestParseFoodAnalysisBareJSON(t *testing.T) {
	out, err := ParseFoodAnalysis(`{"food_items":["dal","rice"],"calories":420,"protein":18,"carbs":70,"fat":6,"balance_rating":"Average","suggestions":["add a vegetable"]}`)
	require.NoError(t, err)
	assert.Equal(t, 420.0, out.Calories)
	assert.Equal(t, "Average", out.BalanceRating)
}

func TestParseFoodAnalysisGarbageYieldsFallback(t *testing.T) {
	out, err := ParseFoodAnalysis("I could not identify the food, sorry!")
	assert.ErrorIs(t, err, ErrMalformedAnalysis)

	assert.Zero(t, out.Calories)
	assert.Zero(t, out.Protein)
	assert.Equal(t, "Unknown", out.BalanceRating)
	require.Len(t, out.Suggestions, 1)
}

func TestParseFoodAnalysisCoercesUnknownRating(t *testing.T) {
	out, err := ParseFoodAnalysis(`{"food_items":["apple"],"calories":95,"balance_rating":"Spectacular","suggestions":[]}`)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", out.BalanceRating)
}

func TestAnalyzeFoodImageHappyPath(t *testing.T) {
	gen := &fakeGenerator{text: fencedAnalysis}
	svc := newTestAdvice(gen)

	out, err := svc.AnalyzeFoodImage(context.Background(), "image/jpeg", []byte{0xff, 0xd8})
	require.NoError(t, err)
	assert.Equal(t, 95.0, out.Calories)

	assert.Equal(t, "image/jpeg", gen.lastMime)
	assert.Contains(t, gen.lastPrompt, "balance_rating")
	assert.Contains(t, gen.lastPrompt, "nutritionist")
}

func TestAnalyzeFoodImageTimeout(t *testing.T) {
	gen := &fakeGenerator{text: fencedAnalysis, wait: time.Second}
	svc := newTestAdvice(gen)

	out, err := svc.AnalyzeFoodImage(context.Background(), "image/jpeg", nil)

	var ext *ExternalServiceError
	require.ErrorAs(t, err, &ext)
	assert.Equal(t, ExternalTimeout, ext.Kind)
	assert.Equal(t, "Unknown", out.BalanceRating)
}

func TestAdviceEmptyResponse(t *testing.T) {
	svc := newTestAdvice(&fakeGenerator{text: "   \n"})

	_, err := svc.HealthInsights(context.Background(), nil)

	var ext *ExternalServiceError
	require.ErrorAs(t, err, &ext)
	assert.Equal(t, ExternalEmpty, ext.Kind)
}

func TestAdviceTransportError(t *testing.T) {
	svc := newTestAdvice(&fakeGenerator{err: assert.AnError})

	_, err := svc.PcodAdvice(context.Background(), nil, 0, 0)

	var ext *ExternalServiceError
	require.ErrorAs(t, err, &ext)
	assert.Equal(t, ExternalTransport, ext.Kind)
}

func TestPcodAdvicePromptInterpolation(t *testing.T) {
	gen := &fakeGenerator{text: "eat well"}
	svc := newTestAdvice(gen)

	profile := &models.PcodProfile{
		Diagnosed: "Yes",
		WeightKg:  65,
		HeightCm:  160,
		Symptoms:  "Irregular periods, Acne",
		Goals:     "Weight loss",
	}
	out, err := svc.PcodAdvice(context.Background(), profile, 1500, 400)
	require.NoError(t, err)
	assert.Equal(t, "eat well", out)

	assert.Contains(t, gen.lastPrompt, "Irregular periods")
	assert.Contains(t, gen.lastPrompt, "net 1100 kcal")
	assert.Contains(t, gen.lastPrompt, "PCOD reversal")
}

func TestHealthInsightPromptIncludesHistory(t *testing.T) {
	gen := &fakeGenerator{text: "looks fine"}
	svc := newTestAdvice(gen)

	logs := []models.HealthLog{
		{LoggedAt: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC), BloodPressure: 118, SugarLevel: 92, Cholesterol: 185},
		{LoggedAt: time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC), BloodPressure: 126, SugarLevel: 104, Cholesterol: 210},
	}
	_, err := svc.HealthInsights(context.Background(), logs)
	require.NoError(t, err)

	assert.Contains(t, gen.lastPrompt, "2026-08-01")
	assert.Contains(t, gen.lastPrompt, "blood pressure 126")
	assert.Contains(t, gen.lastPrompt, "Cholesterol analysis")
}
