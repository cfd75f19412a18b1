package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-registry-validator/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RegistryClaims are the claims of a registry access token.
//
// The subject (sub) identifies the user; "role" carries the registry role
// and "orgs" the organizations the user works for.
type RegistryClaims struct {
	Role          string   `json:"role"`
	Organizations []string `json:"orgs,omitempty"`

	jwt.RegisteredClaims
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for a registry user.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user identifier
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - role, orgs: the scope of the user
//
// issuer, subject, tokenDuration and signKey are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("registry", "user-1", models.RolePete, orgs, time.Hour, "secret")
func GenerateJWTToken(issuer, subject string, role models.UserRole, orgs []uuid.UUID, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || subject == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	organizations := make([]string, 0, len(orgs))
	for _, org := range orgs {
		organizations = append(organizations, org.String())
	}

	now := time.Now()
	claims := &RegistryClaims{
		Role:          string(role),
		Organizations: organizations,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseJWTToken validates tokenString and returns the user scope
// it carries. The scope version is left zero; it is taken from the request.
//
// Validation includes:
//   - Signature verification using the provided sign key (HMAC only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) presence
//   - a known role and well-formed organization ids
//
// Errors wrapping [jwt.ErrTokenExpired] can be matched with [errors.Is].
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Scope, error) {
	claims := &RegistryClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Scope{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Scope{}, errors.New("empty subject error")
	}

	role, err := models.ParseUserRole(claims.Role)
	if err != nil {
		return models.Scope{}, fmt.Errorf("error occurred during reading role claim: %w", err)
	}

	orgs := make([]uuid.UUID, 0, len(claims.Organizations))
	for _, raw := range claims.Organizations {
		id, err := uuid.Parse(raw)
		if err != nil {
			return models.Scope{}, fmt.Errorf("error occurred during reading orgs claim: %w", err)
		}
		orgs = append(orgs, id)
	}

	return models.Scope{Role: role, OrganizationIDs: orgs}, nil
}

// ParseBearerToken extracts the token of an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
