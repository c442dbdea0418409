package models

// User is the database shape of a back-office operator.
type User struct {
	UserID         string `db:"user_id"`
	Seq            int64  `db:"seq"`
	Name           string `db:"name"`
	Email          string `db:"email"`
	PasswordHash   string `db:"password_hash"`
	Role           string `db:"role"`
	AuthProvider   string `db:"auth_provider"`
	ProviderUserID string `db:"provider_user_id"`
	EmailVerified  bool   `db:"email_verified"`
	AuditFields
	SoftDeleteFields
}
