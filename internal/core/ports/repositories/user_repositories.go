package repositories

import (
	"context"

	"github.com/freightops/freight_broker_app/internal/core/domain"
)

// UserLookup defines the credential-path lookups that fall outside the
// generic record contract.
type UserLookup interface {
	// FindUserByEmail retrieves a live user by email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProviderDetails retrieves a live user by OAuth provider and
	// the provider's own user identifier.
	FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
}

// UserRepositoryFacade combines the generic record contract with the
// auth-specific lookups.
type UserRepositoryFacade interface {
	EntityRepositoryFacade[domain.User]
	UserLookup
}
