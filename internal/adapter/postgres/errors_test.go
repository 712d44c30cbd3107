package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/macrolog/macrolog-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	got := MapError(nil, "food_log_entry", uuid.New())
	if got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	got := MapError(pgx.ErrNoRows, "food_log_entry", id)

	if got == nil {
		t.Fatal("MapError(ErrNoRows) = nil, want error")
	}
	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
	if want := fmt.Sprintf("food_log_entry %s: not found", id); got.Error() != want {
		t.Errorf("MapError(ErrNoRows).Error() = %q, want %q", got.Error(), want)
	}
}

func TestMapError_WrappedNoRows(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("scan row: %w", pgx.ErrNoRows)
	got := MapError(wrapped, "user", uuid.New())

	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(wrapped ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
}

func TestMapError_PgErrorCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want error
	}{
		{"23505", domain.ErrAlreadyExists},
		{"23503", domain.ErrNotFound},
		{"23514", domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := &pgconn.PgError{Code: tt.code}
			got := MapError(err, "user", uuid.New())
			if !errors.Is(got, tt.want) {
				t.Errorf("MapError(code %s) = %v, want wrap of %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestMapError_ContextErrorsPassThrough(t *testing.T) {
	t.Parallel()

	for _, ctxErr := range []error{context.Canceled, context.DeadlineExceeded} {
		got := MapError(ctxErr, "goal_settings", uuid.New())
		if !errors.Is(got, ctxErr) {
			t.Errorf("MapError(%v) should pass the context error through, got %v", ctxErr, got)
		}
		if errors.Is(got, domain.ErrNotFound) {
			t.Errorf("MapError(%v) must not map to a domain error", ctxErr)
		}
	}
}

func TestMapError_UnknownErrorWrapped(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	got := MapError(cause, "user", uuid.New())
	if !errors.Is(got, cause) {
		t.Errorf("MapError should keep the cause in the chain, got %v", got)
	}
}
