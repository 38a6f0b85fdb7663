package endpoint

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Authorizer decides whether a request may see restricted parts of a
// health response. It backs the when-authorized visibility setting.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic; on any doubt they should
//   return false.
type Authorizer interface {
	// Authorized reports whether the request is authorized.
	Authorized(r *http.Request) bool
}

// AuthorizerFunc is an adapter to allow ordinary functions to be used as
// Authorizers.
type AuthorizerFunc func(r *http.Request) bool

// Authorized reports whether the request is authorized.
func (f AuthorizerFunc) Authorized(r *http.Request) bool {
	return f(r)
}

// PermitAll authorizes every request.
func PermitAll() Authorizer {
	return AuthorizerFunc(func(*http.Request) bool { return true })
}

// DenyAll authorizes no request. This is the default so an unconfigured
// handler never shows restricted content.
func DenyAll() Authorizer {
	return AuthorizerFunc(func(*http.Request) bool { return false })
}

// JWTAuthorizerConfig configures the JWT authorizer.
type JWTAuthorizerConfig struct {
	// HeaderName is the header containing the token.
	// Default: "Authorization"
	HeaderName string

	// TokenPrefix is the prefix before the token in the header.
	// Default: "Bearer "
	TokenPrefix string

	// Issuer is the expected token issuer (iss claim). Empty skips the
	// check.
	Issuer string

	// Audience is the expected token audience (aud claim). Empty skips
	// the check.
	Audience string

	// RolesClaim is the claim containing the caller's roles.
	// Default: "roles"
	RolesClaim string

	// RequiredRole is the role needed to view restricted content. Empty
	// means any valid token is enough.
	RequiredRole string
}

// JWTAuthorizer authorizes requests carrying a valid HMAC-signed JWT,
// optionally requiring a role from the roles claim.
type JWTAuthorizer struct {
	config JWTAuthorizerConfig
	key    []byte
}

// NewJWTAuthorizer creates a JWT authorizer validating tokens with the
// given signing key.
func NewJWTAuthorizer(config JWTAuthorizerConfig, key []byte) *JWTAuthorizer {
	if config.HeaderName == "" {
		config.HeaderName = "Authorization"
	}
	if config.TokenPrefix == "" {
		config.TokenPrefix = "Bearer "
	}
	if config.RolesClaim == "" {
		config.RolesClaim = "roles"
	}

	return &JWTAuthorizer{config: config, key: key}
}

// Authorized reports whether the request carries a valid token with the
// required role.
func (a *JWTAuthorizer) Authorized(r *http.Request) bool {
	header := r.Header.Get(a.config.HeaderName)
	if header == "" || !strings.HasPrefix(header, a.config.TokenPrefix) {
		return false
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(header, a.config.TokenPrefix))
	if tokenString == "" {
		return false
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
	}
	if a.config.Issuer != "" {
		options = append(options, jwt.WithIssuer(a.config.Issuer))
	}
	if a.config.Audience != "" {
		options = append(options, jwt.WithAudience(a.config.Audience))
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return a.key, nil
	}, options...)
	if err != nil || !token.Valid {
		return false
	}

	if a.config.RequiredRole == "" {
		return true
	}
	return hasRole(claims, a.config.RolesClaim, a.config.RequiredRole)
}

// hasRole checks the roles claim, accepting either a list of strings or a
// single string value.
func hasRole(claims jwt.MapClaims, claim, role string) bool {
	switch roles := claims[claim].(type) {
	case []any:
		for _, r := range roles {
			if s, ok := r.(string); ok && s == role {
				return true
			}
		}
	case string:
		return roles == role
	}
	return false
}
