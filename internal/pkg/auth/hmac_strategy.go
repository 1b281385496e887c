package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrTokenMalformed marks tokens that cannot be decoded structurally.
	ErrTokenMalformed = errors.New("malformed auth token")
	// ErrTokenInvalid marks tokens whose signature does not verify.
	ErrTokenInvalid = errors.New("invalid auth token")
	// ErrTokenExpired marks tokens whose expiry is in the past.
	ErrTokenExpired = errors.New("expired auth token")
)

const defaultTokenTTL = 30 * time.Minute

// HMACStrategy implements auth token creation/verification using HMAC-SHA256
// signatures. The token is base64(payload:sig) where payload encodes the
// email claim and an absolute expiry instant. The payload is signed, not
// encrypted: it must never carry secrets.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken generates a signed token binding the email claim to an expiry.
func (s *HMACStrategy) IssueToken(email string) (string, error) {
	expires := time.Now().Add(s.ttl).Unix()
	payload := fmt.Sprintf("%s:%d", base64.RawURLEncoding.EncodeToString([]byte(email)), expires)
	sig := s.sign(payload)
	token := fmt.Sprintf("%s:%s", payload, sig)
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken validates the token and returns the encoded email claim.
// The signature is verified before any field is trusted.
func (s *HMACStrategy) ParseToken(token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", ErrTokenMalformed
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 {
		return "", ErrTokenMalformed
	}

	payload := strings.Join(parts[:2], ":")
	expectedSig := s.sign(payload)
	if !hmac.Equal([]byte(expectedSig), []byte(parts[2])) {
		return "", ErrTokenInvalid
	}

	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", ErrTokenMalformed
	}

	if time.Unix(expires, 0).Before(time.Now()) {
		return "", ErrTokenExpired
	}

	claim, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil || len(claim) == 0 {
		return "", ErrTokenMalformed
	}

	return string(claim), nil
}

// Validate runs the same checks as ParseToken without returning the claim.
func (s *HMACStrategy) Validate(token string) error {
	_, err := s.ParseToken(token)
	return err
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
