package service

import (
	"context"
	"strings"

	"github.com/akhmetshin/warranty-keeper/internal/adapter"
	"github.com/akhmetshin/warranty-keeper/internal/logger"
	"github.com/akhmetshin/warranty-keeper/internal/store"
	"github.com/akhmetshin/warranty-keeper/models"
)

type clientAuthService struct {
	repo    store.WarrantyRepository
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewClientAuthService constructs the client-side authentication service.
func NewClientAuthService(repo store.WarrantyRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{repo: repo, adapter: serverAdapter, logger: logger}
}

// Register implements [ClientAuthService].
func (s *clientAuthService) Register(ctx context.Context, user models.User) error {
	if err := validateCredentials(user); err != nil {
		return err
	}

	if err := s.adapter.Register(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("func", "Register").Str("login", user.Login).Msg("account registered")
	return nil
}

// Login implements [ClientAuthService]. The local store is left untouched;
// switching accounts goes through Logout, which wipes it. Re-login of the
// same account (an expired token) keeps local records and the cursor.
func (s *clientAuthService) Login(ctx context.Context, user models.User) error {
	if err := validateCredentials(user); err != nil {
		return err
	}

	if err := s.adapter.Login(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("func", "Login").Str("login", user.Login).Msg("logged in")
	return nil
}

// Logout implements [ClientAuthService].
func (s *clientAuthService) Logout(ctx context.Context) error {
	s.adapter.SetToken("")

	if err := s.repo.ResetAll(ctx); err != nil {
		return err
	}

	s.logger.Info().Str("func", "Logout").Msg("logged out")
	return nil
}

// Authenticated implements [ClientAuthService].
func (s *clientAuthService) Authenticated() bool {
	return s.adapter.Token() != ""
}

func validateCredentials(user models.User) error {
	if strings.TrimSpace(user.Login) == "" {
		return ErrEmptyLogin
	}
	if user.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}
