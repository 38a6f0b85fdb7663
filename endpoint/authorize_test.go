package endpoint

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testKey = []byte("test-signing-key")

func signedToken(t *testing.T, claims jwt.MapClaims, key []byte) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func requestWithToken(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestPermitAll(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if !PermitAll().Authorized(req) {
		t.Error("PermitAll should authorize every request")
	}
}

func TestDenyAll(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if DenyAll().Authorized(req) {
		t.Error("DenyAll should authorize no request")
	}
}

func TestJWTAuthorizer_ValidToken(t *testing.T) {
	auth := NewJWTAuthorizer(JWTAuthorizerConfig{}, testKey)

	token := signedToken(t, jwt.MapClaims{
		"sub": "operator",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testKey)

	if !auth.Authorized(requestWithToken(token)) {
		t.Error("valid token should authorize")
	}
}

func TestJWTAuthorizer_NoHeader(t *testing.T) {
	auth := NewJWTAuthorizer(JWTAuthorizerConfig{}, testKey)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if auth.Authorized(req) {
		t.Error("missing header should not authorize")
	}
}

func TestJWTAuthorizer_WrongPrefix(t *testing.T) {
	auth := NewJWTAuthorizer(JWTAuthorizerConfig{}, testKey)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Authorization", "Basic abc123")
	if auth.Authorized(req) {
		t.Error("wrong prefix should not authorize")
	}
}

func TestJWTAuthorizer_WrongKey(t *testing.T) {
	auth := NewJWTAuthorizer(JWTAuthorizerConfig{}, testKey)

	token := signedToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}, []byte("other-key"))

	if auth.Authorized(requestWithToken(token)) {
		t.Error("token signed with another key should not authorize")
	}
}

func TestJWTAuthorizer_ExpiredToken(t *testing.T) {
	auth := NewJWTAuthorizer(JWTAuthorizerConfig{}, testKey)

	token := signedToken(t, jwt.MapClaims{
		"exp": time.Now().Add(-time.Hour).Unix(),
	}, testKey)

	if auth.Authorized(requestWithToken(token)) {
		t.Error("expired token should not authorize")
	}
}

func TestJWTAuthorizer_RequiredRole(t *testing.T) {
	auth := NewJWTAuthorizer(JWTAuthorizerConfig{RequiredRole: "ops"}, testKey)

	tests := []struct {
		name   string
		claims jwt.MapClaims
		want   bool
	}{
		{
			"role present in list",
			jwt.MapClaims{"roles": []any{"dev", "ops"}, "exp": time.Now().Add(time.Hour).Unix()},
			true,
		},
		{
			"role present as string",
			jwt.MapClaims{"roles": "ops", "exp": time.Now().Add(time.Hour).Unix()},
			true,
		},
		{
			"role missing",
			jwt.MapClaims{"roles": []any{"dev"}, "exp": time.Now().Add(time.Hour).Unix()},
			false,
		},
		{
			"no roles claim",
			jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signedToken(t, tt.claims, testKey)
			if got := auth.Authorized(requestWithToken(token)); got != tt.want {
				t.Errorf("Authorized() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJWTAuthorizer_IssuerCheck(t *testing.T) {
	auth := NewJWTAuthorizer(JWTAuthorizerConfig{Issuer: "healthops"}, testKey)

	good := signedToken(t, jwt.MapClaims{
		"iss": "healthops",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testKey)
	bad := signedToken(t, jwt.MapClaims{
		"iss": "someone-else",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testKey)

	if !auth.Authorized(requestWithToken(good)) {
		t.Error("matching issuer should authorize")
	}
	if auth.Authorized(requestWithToken(bad)) {
		t.Error("wrong issuer should not authorize")
	}
}

func TestJWTAuthorizer_CustomHeader(t *testing.T) {
	auth := NewJWTAuthorizer(JWTAuthorizerConfig{
		HeaderName:  "X-Health-Token",
		TokenPrefix: "Token ",
	}, testKey)

	token := signedToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testKey)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Health-Token", "Token "+token)
	if !auth.Authorized(req) {
		t.Error("custom header should authorize")
	}
}
