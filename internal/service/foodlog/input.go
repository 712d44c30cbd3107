package foodlog

import (
	"strings"

	"github.com/macrolog/macrolog-backend/internal/domain"
)

const (
	maxNameLen        = 255
	maxDescriptionLen = 2000
	// maxImageBytes bounds the base64 payload, not the decoded image.
	maxImageLen = 8 << 20
)

// LogInput holds parameters for creating one food log entry.
type LogInput struct {
	Name        string
	Description string
	Calories    float64
	Protein     float64
}

// Validate validates the log input. Negative macros are rejected here,
// at the ingestion boundary — the aggregation core does not re-check them.
func (i LogInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if i.Calories < 0 {
		errs = append(errs, domain.FieldError{Field: "calories", Message: "must be non-negative"})
	}
	if i.Protein < 0 {
		errs = append(errs, domain.FieldError{Field: "protein", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AnalyzeInput holds parameters for the AI estimation call.
// At least one of Description and ImageBase64 is required.
type AnalyzeInput struct {
	Description string
	ImageBase64 string
}

// Validate validates the analyze input.
func (i AnalyzeInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Description) == "" && i.ImageBase64 == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "description or image required"})
	}
	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if len(i.ImageBase64) > maxImageLen {
		errs = append(errs, domain.FieldError{Field: "image", Message: "too large"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
