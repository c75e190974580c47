package usecases

import (
	"fmt"
	"net/url"
	"regexp"
	"time"

	"marketplace/internal/application/user/dto"
	"marketplace/internal/domain/user"
)

// DefaultOTPTTL is how long registration and reset codes stay valid.
const DefaultOTPTTL = 10 * time.Minute

var otpPattern = regexp.MustCompile(`^\d{6}$`)

func ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return DefaultOTPTTL
	}
	return ttl
}

func issueTokens(tokens TokenService, u *user.User) (*dto.TokenPairDTO, error) {
	access, refresh, err := tokens.Generate(u.ID(), u.Email(), u.Role(), u.IsVerified())
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

// linkWithToken appends token as a query parameter to base.
func linkWithToken(base, token string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid link base url: %w", err)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func displayName(u *user.User) string {
	if name := u.FullName(); name != "" {
		return name
	}
	return u.Email()
}
