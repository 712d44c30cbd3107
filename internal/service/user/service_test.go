package user

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macrolog/macrolog-backend/internal/auth"
	"github.com/macrolog/macrolog-backend/internal/config"
	"github.com/macrolog/macrolog-backend/internal/domain"
	"github.com/macrolog/macrolog-backend/pkg/ctxutil"
)

type userRepoFake struct {
	createFn     func(ctx context.Context, u domain.User) (*domain.User, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

func (f *userRepoFake) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	return f.createFn(ctx, u)
}

func (f *userRepoFake) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return f.getByIDFn(ctx, id)
}

func (f *userRepoFake) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.getByEmailFn(ctx, email)
}

type settingsRepoFake struct {
	getFn    func(ctx context.Context, userID uuid.UUID) (*domain.GoalSettings, error)
	upsertFn func(ctx context.Context, s domain.GoalSettings) (*domain.GoalSettings, error)
}

func (f *settingsRepoFake) Get(ctx context.Context, userID uuid.UUID) (*domain.GoalSettings, error) {
	return f.getFn(ctx, userID)
}

func (f *settingsRepoFake) Upsert(ctx context.Context, s domain.GoalSettings) (*domain.GoalSettings, error) {
	return f.upsertFn(ctx, s)
}

type txManagerFake struct{}

func (txManagerFake) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type jwtFake struct {
	lastRole string
}

func (f *jwtFake) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	f.lastRole = role
	return "token-" + userID.String(), nil
}

func newTestService(users *userRepoFake, settings *settingsRepoFake, jwt *jwtFake) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if jwt == nil {
		jwt = &jwtFake{}
	}
	cfg := config.AuthConfig{PasswordHashCost: 4} // minimum cost for fast tests
	return NewService(logger, users, settings, txManagerFake{}, jwt, cfg)
}

func TestService_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var createdUser domain.User
		var seeded domain.GoalSettings
		users := &userRepoFake{
			createFn: func(ctx context.Context, u domain.User) (*domain.User, error) {
				createdUser = u
				return &u, nil
			},
		}
		settings := &settingsRepoFake{
			upsertFn: func(ctx context.Context, s domain.GoalSettings) (*domain.GoalSettings, error) {
				seeded = s
				return &s, nil
			},
		}
		jwt := &jwtFake{}
		svc := newTestService(users, settings, jwt)

		result, err := svc.Register(context.Background(), RegisterInput{
			Email:    "  Alex@Example.COM ",
			Username: "alex",
			Password: "hunter22!",
		})
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, "alex@example.com", createdUser.Email, "email should be normalized")
		assert.Equal(t, domain.UserRoleUser, createdUser.Role)
		assert.NotEmpty(t, createdUser.PasswordHash)
		assert.True(t, auth.CheckPassword(createdUser.PasswordHash, "hunter22!"))

		assert.Equal(t, createdUser.ID, seeded.UserID, "default goal settings should be seeded")
		assert.InDelta(t, 2000, seeded.TargetCalories, 0.001)

		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, "user", jwt.lastRole)
	})

	t.Run("duplicate email", func(t *testing.T) {
		users := &userRepoFake{
			createFn: func(ctx context.Context, u domain.User) (*domain.User, error) {
				return nil, domain.ErrAlreadyExists
			},
		}
		svc := newTestService(users, &settingsRepoFake{}, nil)

		_, err := svc.Register(context.Background(), RegisterInput{
			Email:    "taken@example.com",
			Username: "taken",
			Password: "password123",
		})
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("invalid input", func(t *testing.T) {
		svc := newTestService(&userRepoFake{}, &settingsRepoFake{}, nil)

		tests := []struct {
			name  string
			input RegisterInput
		}{
			{"missing email", RegisterInput{Username: "x", Password: "password123"}},
			{"bad email", RegisterInput{Email: "not-an-email", Username: "x", Password: "password123"}},
			{"missing username", RegisterInput{Email: "a@b.com", Password: "password123"}},
			{"short password", RegisterInput{Email: "a@b.com", Username: "x", Password: "short"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Register(context.Background(), tt.input)
				assert.ErrorIs(t, err, domain.ErrValidation)
			})
		}
	})
}

func TestService_Login(t *testing.T) {
	hash, err := auth.HashPassword("correct-password", 4)
	require.NoError(t, err)

	account := domain.User{
		ID:           uuid.New(),
		Email:        "alex@example.com",
		Username:     "alex",
		PasswordHash: hash,
		Role:         domain.UserRoleAdmin,
	}

	users := &userRepoFake{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			if email != account.Email {
				return nil, domain.ErrNotFound
			}
			u := account
			return &u, nil
		},
	}

	t.Run("success", func(t *testing.T) {
		jwt := &jwtFake{}
		svc := newTestService(users, &settingsRepoFake{}, jwt)

		result, err := svc.Login(context.Background(), LoginInput{
			Email:    "ALEX@example.com",
			Password: "correct-password",
		})
		require.NoError(t, err)
		assert.Equal(t, account.ID, result.User.ID)
		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, "admin", jwt.lastRole)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := newTestService(users, &settingsRepoFake{}, nil)

		_, err := svc.Login(context.Background(), LoginInput{
			Email:    "alex@example.com",
			Password: "wrong-password",
		})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unknown email maps to unauthorized", func(t *testing.T) {
		svc := newTestService(users, &settingsRepoFake{}, nil)

		_, err := svc.Login(context.Background(), LoginInput{
			Email:    "nobody@example.com",
			Password: "whatever1",
		})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestService_Settings(t *testing.T) {
	userID := uuid.New()
	ctx := ctxutil.WithUserID(context.Background(), userID)

	t.Run("returns stored settings", func(t *testing.T) {
		settings := &settingsRepoFake{
			getFn: func(ctx context.Context, id uuid.UUID) (*domain.GoalSettings, error) {
				s := domain.DefaultGoalSettings(id)
				s.TargetCalories = 1800
				return &s, nil
			},
		}
		svc := newTestService(&userRepoFake{}, settings, nil)

		got, err := svc.Settings(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 1800, got.TargetCalories, 0.001)
	})

	t.Run("defaults when no row exists", func(t *testing.T) {
		settings := &settingsRepoFake{
			getFn: func(ctx context.Context, id uuid.UUID) (*domain.GoalSettings, error) {
				return nil, domain.ErrNotFound
			},
		}
		svc := newTestService(&userRepoFake{}, settings, nil)

		got, err := svc.Settings(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 2000, got.TargetCalories, 0.001)
		assert.Equal(t, "UTC", got.Timezone)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		svc := newTestService(&userRepoFake{}, &settingsRepoFake{}, nil)

		_, err := svc.Settings(context.Background())
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestService_UpdateSettings(t *testing.T) {
	userID := uuid.New()
	ctx := ctxutil.WithUserID(context.Background(), userID)

	ptr := func(v float64) *float64 { return &v }
	strPtr := func(v string) *string { return &v }

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		var upserted domain.GoalSettings
		settings := &settingsRepoFake{
			getFn: func(ctx context.Context, id uuid.UUID) (*domain.GoalSettings, error) {
				s := domain.DefaultGoalSettings(id)
				s.TargetCalories = 1700
				s.Timezone = "Europe/Berlin"
				return &s, nil
			},
			upsertFn: func(ctx context.Context, s domain.GoalSettings) (*domain.GoalSettings, error) {
				upserted = s
				return &s, nil
			},
		}
		svc := newTestService(&userRepoFake{}, settings, nil)

		got, err := svc.UpdateSettings(ctx, UpdateSettingsInput{TargetProtein: ptr(180)})
		require.NoError(t, err)

		assert.InDelta(t, 180, upserted.TargetProtein, 0.001)
		assert.InDelta(t, 1700, upserted.TargetCalories, 0.001, "unset field must keep its value")
		assert.Equal(t, "Europe/Berlin", upserted.Timezone)
		assert.InDelta(t, 180, got.TargetProtein, 0.001)
	})

	t.Run("starts from defaults when no row exists", func(t *testing.T) {
		var upserted domain.GoalSettings
		settings := &settingsRepoFake{
			getFn: func(ctx context.Context, id uuid.UUID) (*domain.GoalSettings, error) {
				return nil, domain.ErrNotFound
			},
			upsertFn: func(ctx context.Context, s domain.GoalSettings) (*domain.GoalSettings, error) {
				upserted = s
				return &s, nil
			},
		}
		svc := newTestService(&userRepoFake{}, settings, nil)

		_, err := svc.UpdateSettings(ctx, UpdateSettingsInput{TargetCalories: ptr(2400)})
		require.NoError(t, err)
		assert.InDelta(t, 2400, upserted.TargetCalories, 0.001)
		assert.InDelta(t, 2000, upserted.MaintenanceCalories, 0.001)
		assert.Equal(t, userID, upserted.UserID)
	})

	t.Run("rejects invalid timezone", func(t *testing.T) {
		svc := newTestService(&userRepoFake{}, &settingsRepoFake{}, nil)

		_, err := svc.UpdateSettings(ctx, UpdateSettingsInput{Timezone: strPtr("Mars/Olympus")})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rejects negative target", func(t *testing.T) {
		svc := newTestService(&userRepoFake{}, &settingsRepoFake{}, nil)

		_, err := svc.UpdateSettings(ctx, UpdateSettingsInput{TargetCalories: ptr(-100)})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestService_Profile(t *testing.T) {
	userID := uuid.New()

	users := &userRepoFake{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{ID: id, Username: "alex"}, nil
		},
	}
	svc := newTestService(users, &settingsRepoFake{}, nil)

	got, err := svc.Profile(ctxutil.WithUserID(context.Background(), userID))
	require.NoError(t, err)
	assert.Equal(t, userID, got.ID)

	_, err = svc.Profile(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
