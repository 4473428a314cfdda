package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"phorum/internal/logger"
	"phorum/internal/model"
	"phorum/internal/repository"
)

const (
	// AdminUsername is the seeded administrator account.
	AdminUsername = "admin"
	// adminDefaultPassword is only applied when the account is first created.
	adminDefaultPassword = "admin"
	// botPasswordHash is deliberately not a valid bcrypt digest, so no
	// password ever matches and the bot cannot log in.
	botPasswordHash = "!"
)

// EnsureSystemAccounts makes the seeded admin and antiphish bot accounts
// exist. It runs on every startup, looks each account up by username first,
// and never duplicates or overwrites an existing record.
func EnsureSystemAccounts(ctx context.Context, users repository.UserRepository) error {
	adminHash, err := bcrypt.GenerateFromPassword([]byte(adminDefaultPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	if err := ensureAccount(ctx, users, &model.User{
		Username:     AdminUsername,
		PasswordHash: string(adminHash),
		Role:         model.RoleAdmin,
	}); err != nil {
		return err
	}

	return ensureAccount(ctx, users, &model.User{
		Username:     BotUsername,
		PasswordHash: botPasswordHash,
		Role:         model.RoleBot,
	})
}

func ensureAccount(ctx context.Context, users repository.UserRepository, account *model.User) error {
	existing, err := users.FindByUsername(ctx, account.Username)
	if err != nil && err != gorm.ErrRecordNotFound {
		return fmt.Errorf("check account %s: %w", account.Username, err)
	}
	if existing != nil {
		return nil
	}

	if err := users.Create(ctx, account); err != nil {
		return fmt.Errorf("create account %s: %w", account.Username, err)
	}
	log := logger.Get()
	log.Info().Str("username", account.Username).Str("role", string(account.Role)).
		Msg("seeded system account")
	return nil
}
