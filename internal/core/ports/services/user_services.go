package services

import (
	"context"

	"github.com/freightops/freight_broker_app/internal/core/domain"
	"github.com/freightops/freight_broker_app/internal/dto"
)

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with email and password.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// GetUserByEmail retrieves a live user by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindOrCreateUserFromGoogle links or provisions a user from a verified
	// Google profile.
	FindOrCreateUserFromGoogle(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)
}

// UserProvisioningSvc defines the typed creation path; password hashing
// happens here, never in the generic record path.
type UserProvisioningSvc interface {
	// CreateUser creates a new local user.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, actorID string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	RecordSvcFacade[domain.User]
	UserAuthSvc
	UserProvisioningSvc
}
