package auth

import "time"

// Strategy issues and validates bearer tokens carrying an email identity claim.
type Strategy interface {
	IssueToken(email string) (string, error)
	ParseToken(token string) (string, error)
	Validate(token string) error
	Name() string
}

type Options struct {
	TTL time.Duration
}
