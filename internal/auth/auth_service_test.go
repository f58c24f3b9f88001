package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"
)

func newTestService(t *testing.T) *AuthService {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}

	privatePEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshal public key: %v", err)
	}
	publicPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: publicDER,
	})

	svc, err := NewAuthService(privatePEM, publicPEM, 15*time.Minute, 24*time.Hour)
	if err != nil {
		t.Fatalf("new auth service: %v", err)
	}
	return svc
}

func TestGenerateTokenPair_RoundTrip(t *testing.T) {
	svc := newTestService(t)

	pair, err := svc.GenerateTokenPair(42, true)
	if err != nil {
		t.Fatalf("generate token pair: %v", err)
	}

	access, err := svc.ValidateToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("validate access token: %v", err)
	}
	if access.UserID != 42 || access.TokenType != "access" || !access.MustChangePassword {
		t.Fatalf("unexpected access claims: %+v", access)
	}

	refresh, err := svc.ValidateToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("validate refresh token: %v", err)
	}
	if refresh.TokenType != "refresh" {
		t.Fatalf("expected refresh token type, got %q", refresh.TokenType)
	}
	if refresh.ID == "" {
		t.Fatal("refresh token must carry a jti for revocation")
	}
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.ValidateToken("not-a-jwt"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestValidateToken_RejectsForeignSignature(t *testing.T) {
	issuer := newTestService(t)
	verifier := newTestService(t)

	pair, err := issuer.GenerateTokenPair(1, false)
	if err != nil {
		t.Fatalf("generate token pair: %v", err)
	}
	if _, err := verifier.ValidateToken(pair.AccessToken); err == nil {
		t.Fatal("expected error for token signed by a different key")
	}
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if !CheckPasswordHash("correct horse battery staple", hash) {
		t.Fatal("expected matching password to verify")
	}
	if CheckPasswordHash("wrong password", hash) {
		t.Fatal("expected mismatched password to fail")
	}
}

func TestHashPassword_RejectsOverlongInput(t *testing.T) {
	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := HashPassword(string(long)); err == nil {
		t.Fatal("expected error for input past the bcrypt limit")
	}
}
