package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/freightops/freight_broker_app/internal/apperrors"
	"github.com/freightops/freight_broker_app/internal/core/domain"
	portsrepo "github.com/freightops/freight_broker_app/internal/core/ports/repositories"
	portssvc "github.com/freightops/freight_broker_app/internal/core/ports/services"
	"github.com/freightops/freight_broker_app/internal/dto"
	"github.com/freightops/freight_broker_app/internal/utils"
	"github.com/freightops/freight_broker_app/internal/utils/rules"
)

var userRules = rules.RuleSet{
	"name":  "required",
	"email": "required,email",
	"role":  "required,oneof=admin dispatcher accounting",
}

type userService struct {
	*RecordService[domain.User]
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService builds the user service on top of the generic engine.
// Password material only ever enters through the typed creation path.
func NewUserService(repos portsrepo.RepositoryProvider, opts ...RecordOption[domain.User]) portssvc.UserSvcFacade {
	engine := NewRecordService(RecordConfig[domain.User]{
		EntityType:   domain.EntityUser,
		EntityName:   "user",
		Repo:         repos.UserRepo,
		History:      repos.HistoryRepo,
		CreateRules:  userRules,
		UpdateRules:  userRules,
		SearchFields: []string{"name", "email"},
		UniqueFields: []string{"email"},
		SoftDelete:   true,
	}, opts...)

	return &userService{RecordService: engine, userRepo: repos.UserRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, actorID string) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	fields := map[string]any{
		"name":          req.Name,
		"email":         req.Email,
		"passwordHash":  hash,
		"role":          req.Role,
		"authProvider":  string(domain.ProviderLocal),
		"emailVerified": false,
	}
	return s.CreateRecord(ctx, fields, actorID)
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

// FindOrCreateUserFromGoogle links a Google identity to an existing account
// by provider ID first, then by verified email, and provisions a dispatcher
// account when neither matches.
func (s *userService) FindOrCreateUserFromGoogle(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderDetails(ctx, domain.ProviderGoogle, info.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by provider: %w", err)
	}

	user, err = s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		linked, _, linkErr := s.UpdateRecord(ctx, user.UserID, map[string]any{
			"authProvider":   string(domain.ProviderGoogle),
			"providerUserId": info.ID,
			"emailVerified":  info.VerifiedEmail,
		}, user.UserID)
		if linkErr != nil {
			return nil, fmt.Errorf("failed to link google identity: %w", linkErr)
		}
		s.LogInfo(ctx, "linked google identity to existing user", slog.String("user_id", user.UserID))
		return linked, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	fields := map[string]any{
		"name":           info.Name,
		"email":          info.Email,
		"role":           string(domain.RoleDispatcher),
		"authProvider":   string(domain.ProviderGoogle),
		"providerUserId": info.ID,
		"emailVerified":  info.VerifiedEmail,
	}
	created, err := s.CreateRecord(ctx, fields, "")
	if err != nil {
		return nil, fmt.Errorf("failed to provision user from google: %w", err)
	}
	s.LogInfo(ctx, "provisioned user from google profile", slog.String("user_id", created.UserID))
	return created, nil
}
