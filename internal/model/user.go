package model

import "time"

// Roles carried in the JWT "role" claim.
const (
	RoleAdmin  = "ADMIN"
	RoleClient = "CLIENT"
)

// SignupBalance is the wallet balance credited to every new account.
const SignupBalance = 2000

// User mirrors the `users` table.  The wallet balance lives here; bookings
// debit it at the quoted price.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username, unique
	PasswordHash string    // users.password_hash (bcrypt)
	Role         string    // users.role (ADMIN or CLIENT)
	Balance      int64     // users.balance in whole currency units
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// RefreshToken models a row in `refresh_tokens`.  Only the SHA-256 hash of
// the raw token is stored.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at, nil while active
	CreatedAt time.Time  // refresh_tokens.created_at
}
