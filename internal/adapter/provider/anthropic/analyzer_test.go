package anthropic

import (
	"strings"
	"testing"
)

func TestParseEstimate(t *testing.T) {
	tests := []struct {
		name         string
		response     string
		wantName     string
		wantCalories float64
		wantErr      bool
	}{
		{
			name:         "plain json",
			response:     `{"name": "Chicken burrito", "calories": 720, "protein": 38}`,
			wantName:     "Chicken burrito",
			wantCalories: 720,
		},
		{
			name:         "json wrapped in prose",
			response:     "Here is the estimate:\n{\"name\": \"Greek salad\", \"calories\": 310, \"protein\": 9.5}\nLet me know if you need more.",
			wantName:     "Greek salad",
			wantCalories: 310,
		},
		{
			name:         "markdown fenced json",
			response:     "```json\n{\"name\": \"Oatmeal\", \"calories\": 380, \"protein\": 14}\n```",
			wantName:     "Oatmeal",
			wantCalories: 380,
		},
		{
			name:     "no json at all",
			response: "I cannot identify this meal.",
			wantErr:  true,
		},
		{
			name:     "broken json",
			response: `{"name": "Soup", "calories": }`,
			wantErr:  true,
		},
		{
			name:     "missing name",
			response: `{"calories": 500, "protein": 20}`,
			wantErr:  true,
		},
		{
			name:     "negative calories",
			response: `{"name": "Ghost meal", "calories": -100, "protein": 0}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEstimate(tt.response)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseEstimate(%q) expected error, got %+v", tt.response, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseEstimate(%q) failed: %v", tt.response, err)
			}
			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
			if got.Calories != tt.wantCalories {
				t.Errorf("Calories = %v, want %v", got.Calories, tt.wantCalories)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	withText := buildPrompt("two eggs and toast", false)
	if !strings.Contains(withText, "two eggs and toast") {
		t.Error("prompt should contain the description")
	}
	if strings.Contains(withText, "photo of the meal") {
		t.Error("prompt should not mention a photo when none is attached")
	}

	withImage := buildPrompt("", true)
	if !strings.Contains(withImage, "photo of the meal") {
		t.Error("prompt should mention the attached photo")
	}
}
