package auth

import "github.com/golang-jwt/jwt/v5"

// AccessClaims are the claims carried by every access token issued at login.
type AccessClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
