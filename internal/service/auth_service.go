package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"home_service_booking/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles the one-time admin registration and sign-in.
type AuthService struct {
	store           documentStore
	signingKey      []byte
	tokenTTL        time.Duration
	registrationKey string
	now             func() time.Time
}

func newAuthService(store documentStore, opts Options) *AuthService {
	return &AuthService{
		store:           store,
		signingKey:      []byte(opts.SigningKey),
		tokenTTL:        opts.TokenTTL,
		registrationKey: opts.RegistrationKey,
		now:             opts.Now,
	}
}

// IsRegistered reports whether admin credentials exist.
func (s *AuthService) IsRegistered(ctx context.Context) (bool, error) {
	doc, err := s.store.read(ctx)
	if err != nil {
		return false, err
	}
	return doc.AdminCreds != nil, nil
}

// Register stores the admin credentials once, gated by the deployment registration key,
// and returns a token for the new admin. It is irreversible.
func (s *AuthService) Register(ctx context.Context, email, password, registrationKey string) (string, error) {
	if s.registrationKey == "" {
		return "", ErrRegistrationDisabled
	}
	email = normalizeEmail(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return "", ErrMissingCredentials
	}
	if subtle.ConstantTimeCompare([]byte(registrationKey), []byte(s.registrationKey)) != 1 {
		return "", ErrWrongRegistrationKey
	}

	hash, err := hashPassword(password)
	if err != nil {
		return "", err
	}
	err = s.store.update(ctx, func(doc *models.Document) error {
		if doc.AdminCreds != nil {
			return ErrAlreadyRegistered
		}
		doc.AdminCreds = &models.AdminCredentials{Email: email, Hash: hash}
		return nil
	})
	if err != nil {
		return "", err
	}
	return s.issueToken(email)
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// GenerateToken validates credentials and returns JWT
func (s *AuthService) GenerateToken(ctx context.Context, email, password string) (string, error) {
	doc, err := s.store.read(ctx)
	if err != nil {
		return "", err
	}
	if doc.AdminCreds == nil {
		return "", ErrNotRegistered
	}
	if normalizeEmail(email) != normalizeEmail(doc.AdminCreds.Email) {
		return "", ErrInvalidCredentials
	}
	if err := verifyPassword(doc.AdminCreds.Hash, password); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.issueToken(doc.AdminCreds.Email)
}

// ParseToken parses JWT and returns the admin email
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return "", ErrInvalidToken
	}

	return claims.Email, nil
}

// helper: issue a signed JWT for the admin
func (s *AuthService) issueToken(email string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: email,
	})
	return token.SignedString(s.signingKey)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// legacyDigestLen is the length of a hex SHA-256 digest.
const legacyDigestLen = sha256.Size * 2

var errUnknownHashFormat = errors.New("unknown password hash format")

// helper: verify password against a bcrypt hash or a legacy hex SHA-256 digest
func verifyPassword(hash, password string) error {
	if strings.HasPrefix(hash, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	}
	if len(hash) != legacyDigestLen {
		return errUnknownHashFormat
	}
	sum := sha256.Sum256([]byte(password))
	if subtle.ConstantTimeCompare([]byte(strings.ToLower(hash)), []byte(hex.EncodeToString(sum[:]))) != 1 {
		return bcrypt.ErrMismatchedHashAndPassword
	}
	return nil
}
