package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	"home_service_booking/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

func newTestAuth(repo *memoryDocumentRepo, opts Options) *AuthService {
	return newAuthService(newDocumentStore(repo), opts.withDefaults())
}

// --- Register tests ---

func TestAuthService_Register_SuccessHashesPasswordAndIssuesToken(t *testing.T) {
	repo := &memoryDocumentRepo{}
	svc := newTestAuth(repo, testOptions(thursday))

	token, err := svc.Register(context.Background(), "  Admin@Example.com ", "s3cr3t", "let-me-in")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	creds := repo.doc.AdminCreds
	if creds == nil {
		t.Fatalf("expected credentials to be persisted")
	}
	if creds.Email != "admin@example.com" {
		t.Errorf("expected normalized email, got %q", creds.Email)
	}
	if creds.Hash == "s3cr3t" || !strings.HasPrefix(creds.Hash, "$2") {
		t.Errorf("expected bcrypt hash, got %q", creds.Hash)
	}
	if err := verifyPassword(creds.Hash, "s3cr3t"); err != nil {
		t.Errorf("stored hash does not verify with original password: %v", err)
	}

	email, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if email != "admin@example.com" {
		t.Fatalf("expected email from token, got %q", email)
	}

	ok, err := svc.IsRegistered(context.Background())
	if err != nil || !ok {
		t.Fatalf("IsRegistered = %v, %v; want true", ok, err)
	}
}

func TestAuthService_Register_Rejections(t *testing.T) {
	registered := models.NewDefaultDocument()
	registered.AdminCreds = &models.AdminCredentials{Email: "first@example.com", Hash: "$2a$10$x"}

	cases := []struct {
		name    string
		doc     *models.Document
		regKey  string
		email   string
		pass    string
		key     string
		wantErr error
	}{
		{name: "disabled", regKey: "", email: "a@b.c", pass: "p", key: "", wantErr: ErrRegistrationDisabled},
		{name: "wrong key", regKey: "let-me-in", email: "a@b.c", pass: "p", key: "guess", wantErr: ErrWrongRegistrationKey},
		{name: "empty password", regKey: "let-me-in", email: "a@b.c", pass: "  ", key: "let-me-in", wantErr: ErrMissingCredentials},
		{name: "empty email", regKey: "let-me-in", email: "", pass: "p", key: "let-me-in", wantErr: ErrMissingCredentials},
		{name: "already registered", doc: &registered, regKey: "let-me-in", email: "a@b.c", pass: "p", key: "let-me-in", wantErr: ErrAlreadyRegistered},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &memoryDocumentRepo{}
			if tc.doc != nil {
				cp := tc.doc.Clone()
				repo.doc = &cp
			}
			opts := testOptions(thursday)
			opts.RegistrationKey = tc.regKey
			svc := newTestAuth(repo, opts)

			_, err := svc.Register(context.Background(), tc.email, tc.pass, tc.key)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if repo.saves != 0 {
				t.Fatalf("expected no save, got %d", repo.saves)
			}
		})
	}
}

func TestAuthService_Register_SaveFailureIsNotCommitted(t *testing.T) {
	repo := &memoryDocumentRepo{saveErr: errDiskFull}
	svc := newTestAuth(repo, testOptions(thursday))

	_, err := svc.Register(context.Background(), "a@b.c", "p", "let-me-in")
	if !errors.Is(err, ErrStorage) || !errors.Is(err, errDiskFull) {
		t.Fatalf("expected storage error wrapping cause, got %v", err)
	}
	if repo.doc != nil && repo.doc.AdminCreds != nil {
		t.Fatalf("credentials must not be committed on save failure")
	}
}

// --- GenerateToken tests ---

func registeredRepo(t *testing.T, hash string) *memoryDocumentRepo {
	t.Helper()
	doc := models.NewDefaultDocument()
	doc.AdminCreds = &models.AdminCredentials{Email: "admin@example.com", Hash: hash}
	return &memoryDocumentRepo{doc: &doc}
}

func TestAuthService_GenerateToken_Success(t *testing.T) {
	hash, err := hashPassword("letmein")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	svc := newTestAuth(registeredRepo(t, hash), testOptions(thursday))

	token, err := svc.GenerateToken(context.Background(), "ADMIN@example.com", "letmein")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	email, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if email != "admin@example.com" {
		t.Fatalf("unexpected email %q", email)
	}
}

func TestAuthService_GenerateToken_LegacyDigest(t *testing.T) {
	sum := sha256.Sum256([]byte("old-password"))
	svc := newTestAuth(registeredRepo(t, hex.EncodeToString(sum[:])), testOptions(thursday))

	if _, err := svc.GenerateToken(context.Background(), "admin@example.com", "old-password"); err != nil {
		t.Fatalf("legacy digest should verify: %v", err)
	}
	if _, err := svc.GenerateToken(context.Background(), "admin@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_GenerateToken_Failures(t *testing.T) {
	hash, err := hashPassword("correct")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}

	cases := []struct {
		name    string
		repo    *memoryDocumentRepo
		email   string
		pass    string
		wantErr error
	}{
		{name: "not registered", repo: &memoryDocumentRepo{}, email: "a@b.c", pass: "x", wantErr: ErrNotRegistered},
		{name: "wrong password", repo: registeredRepo(t, hash), email: "admin@example.com", pass: "wrong", wantErr: ErrInvalidCredentials},
		{name: "wrong email", repo: registeredRepo(t, hash), email: "other@example.com", pass: "correct", wantErr: ErrInvalidCredentials},
		{name: "unknown hash format", repo: registeredRepo(t, "plain"), email: "admin@example.com", pass: "plain", wantErr: ErrInvalidCredentials},
		{name: "repo error", repo: &memoryDocumentRepo{loadErr: errors.New("query failed")}, email: "a@b.c", pass: "x", wantErr: ErrStorage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestAuth(tc.repo, testOptions(thursday))
			_, err := svc.GenerateToken(context.Background(), tc.email, tc.pass)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

// --- ParseToken tests ---

func TestAuthService_ParseToken_Malformed(t *testing.T) {
	svc := newTestAuth(&memoryDocumentRepo{}, testOptions(thursday))
	if _, err := svc.ParseToken("not-a-jwt"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestAuthService_ParseToken_InvalidSignature(t *testing.T) {
	svc := newTestAuth(&memoryDocumentRepo{}, testOptions(time.Now()))

	now := time.Now()
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: "admin@example.com",
	})
	badToken, err := tk.SignedString([]byte("different-key"))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}
	if _, err := svc.ParseToken(badToken); err == nil {
		t.Fatalf("expected signature verification error")
	}
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	issuer := newTestAuth(&memoryDocumentRepo{}, testOptions(thursday))
	token, err := issuer.issueToken("admin@example.com")
	if err != nil {
		t.Fatalf("issueToken failed: %v", err)
	}

	later := newTestAuth(&memoryDocumentRepo{}, testOptions(thursday.Add(2*time.Hour)))
	if _, err := later.ParseToken(token); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestAuthService_ParseToken_MissingEmailClaim(t *testing.T) {
	svc := newTestAuth(&memoryDocumentRepo{}, testOptions(time.Now()))
	now := time.Now()
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	tokenStr, err := tk.SignedString([]byte(testSigningKey))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}
	if _, err := svc.ParseToken(tokenStr); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_ParseToken_UnexpectedAlg(t *testing.T) {
	svc := newTestAuth(&memoryDocumentRepo{}, testOptions(time.Now()))

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey failed: %v", err)
	}
	now := time.Now()
	tk := jwt.NewWithClaims(jwt.SigningMethodRS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: "admin@example.com",
	})
	tokenStr, err := tk.SignedString(privateKey)
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}
	if _, err := svc.ParseToken(tokenStr); err == nil {
		t.Fatalf("expected error due to unexpected signing method")
	}
}
