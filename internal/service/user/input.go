package user

import (
	"net/mail"
	"time"

	"github.com/macrolog/macrolog-backend/internal/domain"
)

// RegisterInput holds parameters for the register operation.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
	} else if len(i.Email) > 255 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if len(i.Username) > 64 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	} else if len(i.Password) > 72 {
		// bcrypt truncates input beyond 72 bytes.
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at most 72 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSettingsInput holds parameters for the goal-settings update operation.
// All fields are optional (nil = don't change).
type UpdateSettingsInput struct {
	TargetCalories      *float64
	MaintenanceCalories *float64
	TargetProtein       *float64
	Timezone            *string
}

// Validate validates the update settings input.
func (i UpdateSettingsInput) Validate() error {
	var errs []domain.FieldError

	if i.TargetCalories != nil {
		if *i.TargetCalories < 0 {
			errs = append(errs, domain.FieldError{Field: "target_calories", Message: "must not be negative"})
		} else if *i.TargetCalories > 20000 {
			errs = append(errs, domain.FieldError{Field: "target_calories", Message: "must be at most 20000"})
		}
	}

	if i.MaintenanceCalories != nil {
		if *i.MaintenanceCalories < 0 {
			errs = append(errs, domain.FieldError{Field: "maintenance_calories", Message: "must not be negative"})
		} else if *i.MaintenanceCalories > 20000 {
			errs = append(errs, domain.FieldError{Field: "maintenance_calories", Message: "must be at most 20000"})
		}
	}

	if i.TargetProtein != nil {
		if *i.TargetProtein < 0 {
			errs = append(errs, domain.FieldError{Field: "target_protein", Message: "must not be negative"})
		} else if *i.TargetProtein > 2000 {
			errs = append(errs, domain.FieldError{Field: "target_protein", Message: "must be at most 2000"})
		}
	}

	if i.Timezone != nil {
		if *i.Timezone == "" {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "cannot be empty"})
		} else if len(*i.Timezone) > 64 {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "too long"})
		} else if _, err := time.LoadLocation(*i.Timezone); err != nil {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "invalid IANA timezone"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
