// Package seed creates the default admin account at startup.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/emre/campusvoice/internal/app/models"
	"github.com/emre/campusvoice/internal/app/repositories"
	"github.com/emre/campusvoice/internal/config"
	"github.com/emre/campusvoice/internal/pkg/auth"
)

// CreateDefaultAdmin creates the bootstrap admin account when no admin exists
// yet. Admins cannot be created through the API, so this is the only way the
// first one comes into existence.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	exists, err := userRepo.RoleExists(ctx, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if exists {
		lgr.Debug().Msg("Admin account already exists, skipping seed")
		return nil
	}

	hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.NewAdminUser("Administrator", cfg.Admin.Email, hashedPassword, "", "")
	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	lgr.Info().Int64("adminID", admin.ID).Str("email", admin.Email).Msg("Default admin account created")
	return nil
}
