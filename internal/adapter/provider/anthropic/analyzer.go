// Package anthropic adapts the Anthropic API into the food analyzer
// used by the logging flow: free text and/or a meal photo in, a name
// and macro estimate out.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/macrolog/macrolog-backend/internal/config"
	"github.com/macrolog/macrolog-backend/internal/domain"
)

// Analyzer estimates meal macros via Claude.
type Analyzer struct {
	log    *slog.Logger
	client sdk.Client
	model  string
}

// New creates an analyzer from config.
func New(logger *slog.Logger, cfg config.AnalyzerConfig) *Analyzer {
	return &Analyzer{
		log:    logger.With("adapter", "anthropic"),
		client: sdk.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:  cfg.Model,
	}
}

// Analyze sends the meal description and/or photo to the model and
// parses its JSON reply into a FoodEstimate.
func (a *Analyzer) Analyze(ctx context.Context, description, imageBase64 string) (*domain.FoodEstimate, error) {
	blocks := make([]sdk.ContentBlockParamUnion, 0, 2)
	if imageBase64 != "" {
		blocks = append(blocks, sdk.NewImageBlockBase64("image/jpeg", imageBase64))
	}
	blocks = append(blocks, sdk.NewTextBlock(buildPrompt(description, imageBase64 != "")))

	msg, err := a.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(a.model),
		MaxTokens: 1024,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(blocks...),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic api call: %w", err)
	}

	if len(msg.Content) == 0 {
		return nil, fmt.Errorf("empty response from model")
	}

	estimate, err := parseEstimate(msg.Content[0].Text)
	if err != nil {
		return nil, err
	}

	a.log.DebugContext(ctx, "meal analyzed",
		slog.String("name", estimate.Name),
		slog.Float64("calories", estimate.Calories),
	)
	return estimate, nil
}

// buildPrompt creates the estimation prompt for one meal.
func buildPrompt(description string, hasImage bool) string {
	var b strings.Builder
	b.WriteString(`You are a nutritionist estimating the calories and protein of a meal.

`)
	if hasImage {
		b.WriteString("A photo of the meal is attached.\n")
	}
	if description != "" {
		fmt.Fprintf(&b, "The user describes the meal as: %q\n", description)
	}
	b.WriteString(`
Output ONLY a valid JSON object matching this exact schema:
{
  "name": "<short dish name, max 5 words>",
  "calories": <total kcal as a number>,
  "protein": <total grams of protein as a number>
}

Rules:
- Estimate the whole portion shown or described, not per 100g
- Use realistic figures for typical portion sizes
- Output ONLY the JSON, no markdown, no explanations`)
	return b.String()
}

// parseEstimate extracts and validates the model's JSON reply.
func parseEstimate(responseText string) (*domain.FoodEstimate, error) {
	jsonStr, err := extractJSON(responseText)
	if err != nil {
		return nil, fmt.Errorf("extract json from response: %w", err)
	}

	if !json.Valid([]byte(jsonStr)) {
		return nil, fmt.Errorf("response does not contain valid JSON")
	}

	var estimate domain.FoodEstimate
	if err := json.Unmarshal([]byte(jsonStr), &estimate); err != nil {
		return nil, fmt.Errorf("unmarshal estimate: %w", err)
	}

	if estimate.Name == "" {
		return nil, fmt.Errorf("estimate is missing a name")
	}
	if estimate.Calories < 0 || estimate.Protein < 0 {
		return nil, fmt.Errorf("estimate has negative macros")
	}
	return &estimate, nil
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
