package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"marketplace/internal/domain/user"
)

const (
	GoogleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"
	AppleJWKSURL  = "https://appleid.apple.com/auth/keys"
)

var (
	ErrInvalidIDToken   = errors.New("invalid identity token")
	ErrIssuerMismatch   = errors.New("identity token issuer not allowed")
	ErrAudienceMismatch = errors.New("identity token audience not allowed")
	ErrEmailMissing     = errors.New("identity token has no email")
)

type Identity = user.ExternalIdentity

// looseBool accepts true, "true" and their false forms. Apple sends strings.
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case bool:
		*b = looseBool(t)
	case string:
		*b = looseBool(strings.EqualFold(t, "true"))
	}
	return nil
}

type idTokenClaims struct {
	Email         string    `json:"email"`
	EmailVerified looseBool `json:"email_verified"`
	GivenName     string    `json:"given_name"`
	FamilyName    string    `json:"family_name"`
	Picture       string    `json:"picture"`
	jwt.RegisteredClaims
}

// IDTokenVerifier checks RS256 identity tokens against a provider's JWKS.
type IDTokenVerifier struct {
	keys      *JWKSClient
	issuers   []string
	audiences []string
	now       func() time.Time
}

func NewIDTokenVerifier(keys *JWKSClient, issuers, audiences []string) *IDTokenVerifier {
	return &IDTokenVerifier{
		keys:      keys,
		issuers:   issuers,
		audiences: audiences,
		now:       time.Now,
	}
}

func NewGoogleIDTokenVerifier(clientIDs []string, cache KeySetCache) *IDTokenVerifier {
	return NewIDTokenVerifier(
		NewJWKSClient(GoogleJWKSURL, cache),
		[]string{"accounts.google.com", "https://accounts.google.com"},
		clientIDs,
	)
}

func NewAppleIDTokenVerifier(clientIDs []string, cache KeySetCache) *IDTokenVerifier {
	return NewIDTokenVerifier(
		NewJWKSClient(AppleJWKSURL, cache),
		[]string{"https://appleid.apple.com"},
		clientIDs,
	)
}

func (v *IDTokenVerifier) Verify(ctx context.Context, raw string) (*Identity, error) {
	claims := &idTokenClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("missing kid header")
		}
		return v.keys.Key(ctx, kid)
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIDToken, err)
	}

	if !slices.Contains(v.issuers, claims.Issuer) {
		return nil, ErrIssuerMismatch
	}
	if !v.audienceAllowed(claims.Audience) {
		return nil, ErrAudienceMismatch
	}
	if claims.Email == "" {
		return nil, ErrEmailMissing
	}

	return &Identity{
		Subject:       claims.Subject,
		Email:         claims.Email,
		EmailVerified: bool(claims.EmailVerified),
		GivenName:     claims.GivenName,
		FamilyName:    claims.FamilyName,
		Picture:       claims.Picture,
	}, nil
}

func (v *IDTokenVerifier) audienceAllowed(aud jwt.ClaimStrings) bool {
	for _, a := range aud {
		if slices.Contains(v.audiences, a) {
			return true
		}
	}
	return false
}
