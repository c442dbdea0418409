package domain

// UserRole controls what back-office surfaces a user may reach.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleDispatcher UserRole = "dispatcher"
	RoleAccounting UserRole = "accounting"
)

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// GoogleUserInfo is the profile returned by Google's userinfo endpoint
// during the OAuth exchange.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// User is a back-office operator. Email is unique. PasswordHash is empty
// for users provisioned through an external identity provider.
type User struct {
	UserID         string       `json:"id"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	PasswordHash   string       `json:"-"`
	Role           UserRole     `json:"role"`
	AuthProvider   AuthProvider `json:"authProvider,omitempty"`
	ProviderUserID string       `json:"-"`
	EmailVerified  bool         `json:"emailVerified,omitempty"`
	AuditFields
	SoftDeleteFields
}
