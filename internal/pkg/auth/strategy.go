package auth

import "time"

// Claims carries the identity encoded in an auth token.
type Claims struct {
	UserID int64
	Admin  bool
}

// Strategy defines token issuing and verification.
type Strategy interface {
	IssueToken(claims Claims) (string, error)
	ParseToken(token string) (Claims, error)
	Name() string
}

// Options tunes token strategy behaviour.
type Options struct {
	TTL time.Duration
}
