package dto

import (
	"time"

	subscriptionDTO "marketplace/internal/application/subscription/dto"
	"marketplace/internal/domain/user"
	"marketplace/internal/shared/mapper"
)

// UserDTO is the public view of an account. The password hash and reset state are never exposed.
type UserDTO struct {
	ID             uint       `json:"id"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	FullName       string     `json:"fullName"`
	Email          string     `json:"email"`
	Role           string     `json:"role"`
	ProfilePic     string     `json:"profilePic"`
	Provider       string     `json:"provider"`
	IsVerified     bool       `json:"isVerified"`
	IsSubscribed   bool       `json:"isSubscribed"`
	PlanExpiration *time.Time `json:"planExpiration"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type TokenPairDTO struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// MeDTO is the signed-in user's profile with the current subscription, if any.
type MeDTO struct {
	*UserDTO
	Subscription *subscriptionDTO.SubscriptionDTO `json:"subscription"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:             u.ID(),
		FirstName:      u.FirstName(),
		LastName:       u.LastName(),
		FullName:       u.FullName(),
		Email:          u.Email(),
		Role:           u.Role().String(),
		ProfilePic:     u.ProfilePic(),
		Provider:       string(u.Provider()),
		IsVerified:     u.IsVerified(),
		IsSubscribed:   u.IsSubscribed(),
		PlanExpiration: u.PlanExpiration(),
		CreatedAt:      u.CreatedAt(),
		UpdatedAt:      u.UpdatedAt(),
	}
}

func ToUserDTOs(users []*user.User) []*UserDTO {
	return mapper.MapSlice(users, ToUserDTO)
}
