// Package identity manages user accounts: registration with hashed
// credentials, login with token issuance, and account lookup.
package identity

import (
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// User is a registered account. The password hash never leaves the server:
// it is excluded from JSON and only compared through the credential hasher.
type User struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Address      string    `gorm:"size:512" json:"address,omitempty"`
	PhoneNumber  string    `gorm:"size:32" json:"phone_number,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AccessClaims is the JWT payload for an authenticated session.
type AccessClaims struct {
	gojwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// SetDefaults stamps the standard time claims. The token service calls this
// when issuing access tokens.
func (c *AccessClaims) SetDefaults(now time.Time, ttl time.Duration, issuer string) {
	c.IssuedAt = gojwt.NewNumericDate(now)
	c.ExpiresAt = gojwt.NewNumericDate(now.Add(ttl))
	if issuer != "" {
		c.Issuer = issuer
	}
}
