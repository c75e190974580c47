package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"marketplace/internal/domain/user"
	"marketplace/internal/shared/authorization"
	"marketplace/internal/shared/biztime"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
	TokenTypeLink    TokenType = "link"
)

// Link token purposes.
const (
	PurposeVerifyEmail   = user.LinkPurposeVerifyEmail
	PurposeResetPassword = user.LinkPurposeResetPassword
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrWrongTokenType = errors.New("unexpected token type")
)

// Claims carries the identity the API trusts on every request.
type Claims struct {
	UserID     uint                   `json:"id"`
	Email      string                 `json:"email"`
	Role       authorization.UserRole `json:"role"`
	IsVerified bool                   `json:"isVerified"`
	TokenType  TokenType              `json:"tokenType"`
	Purpose    string                 `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

// JWTService signs access and link tokens with secret and refresh tokens with refreshSecret.
type JWTService struct {
	secret        []byte
	refreshSecret []byte
	accessExp     time.Duration
	refreshExp    time.Duration
	linkExp       time.Duration
}

func NewJWTService(secret, refreshSecret string, accessExpMinutes, refreshExpDays, linkExpMinutes int) *JWTService {
	if refreshSecret == "" {
		refreshSecret = secret
	}
	return &JWTService{
		secret:        []byte(secret),
		refreshSecret: []byte(refreshSecret),
		accessExp:     time.Duration(accessExpMinutes) * time.Minute,
		refreshExp:    time.Duration(refreshExpDays) * 24 * time.Hour,
		linkExp:       time.Duration(linkExpMinutes) * time.Minute,
	}
}

func (s *JWTService) sign(claims *Claims, key []byte, ttl time.Duration) (string, error) {
	now := biztime.NowUTC()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", claims.UserID),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", claims.TokenType, err)
	}
	return signed, nil
}

// Generate issues an access and a refresh token for the user.
func (s *JWTService) Generate(userID uint, email string, role authorization.UserRole, isVerified bool) (string, string, error) {
	access, err := s.GenerateAccess(userID, email, role, isVerified)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.sign(&Claims{
		UserID:     userID,
		Email:      email,
		Role:       role,
		IsVerified: isVerified,
		TokenType:  TokenTypeRefresh,
	}, s.refreshSecret, s.refreshExp)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *JWTService) GenerateAccess(userID uint, email string, role authorization.UserRole, isVerified bool) (string, error) {
	return s.sign(&Claims{
		UserID:     userID,
		Email:      email,
		Role:       role,
		IsVerified: isVerified,
		TokenType:  TokenTypeAccess,
	}, s.secret, s.accessExp)
}

// GenerateLinkToken signs a short-lived token embedded in emailed links.
func (s *JWTService) GenerateLinkToken(userID uint, email, purpose string) (string, error) {
	return s.sign(&Claims{
		UserID:    userID,
		Email:     email,
		TokenType: TokenTypeLink,
		Purpose:   purpose,
	}, s.secret, s.linkExp)
}

func (s *JWTService) parse(tokenString string, key []byte, want TokenType) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != want {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

// VerifyAccess validates a bearer token from the Authorization header.
func (s *JWTService) VerifyAccess(tokenString string) (*Claims, error) {
	return s.parse(tokenString, s.secret, TokenTypeAccess)
}

// VerifyRefresh returns the user id and the issue time of a refresh token.
func (s *JWTService) VerifyRefresh(tokenString string) (uint, time.Time, error) {
	claims, err := s.parse(tokenString, s.refreshSecret, TokenTypeRefresh)
	if err != nil {
		return 0, time.Time{}, err
	}
	var issuedAt time.Time
	if claims.IssuedAt != nil {
		issuedAt = claims.IssuedAt.Time
	}
	return claims.UserID, issuedAt, nil
}

// VerifyLinkToken returns the user id of a link token minted for purpose.
func (s *JWTService) VerifyLinkToken(tokenString, purpose string) (uint, error) {
	claims, err := s.parse(tokenString, s.secret, TokenTypeLink)
	if err != nil {
		return 0, err
	}
	if claims.Purpose != purpose {
		return 0, ErrWrongTokenType
	}
	return claims.UserID, nil
}
