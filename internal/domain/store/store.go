package store

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrStoreNotFound      = errors.New("store not found")
	ErrNameRequired       = errors.New("store name is required")
	ErrCategoryRequired   = errors.New("at least one category is required")
	ErrInvalidPhone       = errors.New("invalid Bangladeshi phone number")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrStoreExists        = errors.New("user already has a store")
	ErrCategoriesNotFound = errors.New("one or more categories not found")
	ErrNotOwner           = errors.New("store not found or you don't have permission")
	ErrNotApproved        = errors.New("store must be approved before going online")
)

// ShopStatus is the moderation state set by admins.
type ShopStatus string

const (
	ShopStatusPending  ShopStatus = "PENDING"
	ShopStatusApproved ShopStatus = "APPROVED"
	ShopStatusRejected ShopStatus = "REJECTED"
)

func (s ShopStatus) IsValid() bool {
	return s == ShopStatusPending || s == ShopStatusApproved || s == ShopStatusRejected
}

// Status is the owner-controlled visibility of an approved store.
type Status string

const (
	StatusOnline  Status = "ONLINE"
	StatusOffline Status = "OFFLINE"
)

func (s Status) IsValid() bool {
	return s == StatusOnline || s == StatusOffline
}

var (
	phoneRegex = regexp.MustCompile(`^(\+8801|01)[3-9]\d{8}$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// CategoryRef is the category summary carried by a loaded store.
type CategoryRef struct {
	ID   uint
	Name string
	Type string
}

// Profile holds the descriptive, owner-editable fields of a store.
type Profile struct {
	Location     string
	Tags         []string
	Description  string
	Logo         string
	Banner       string
	Phone        string
	Email        string
	FacebookURL  string
	InstagramURL string
	YoutubeURL   string
}

type Store struct {
	id          uint
	userID      uint
	name        string
	profile     Profile
	shopStatus  ShopStatus
	status      Status
	categoryIDs []uint
	categories  []CategoryRef
	createdAt   time.Time
	updatedAt   time.Time
}

// NewStore validates and creates a PENDING, OFFLINE store.
func NewStore(userID uint, name string, profile Profile, categoryIDs []uint) (*Store, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	ids := uniqueIDs(categoryIDs)
	if len(ids) == 0 {
		return nil, ErrCategoryRequired
	}
	if profile.Phone != "" && !phoneRegex.MatchString(profile.Phone) {
		return nil, ErrInvalidPhone
	}
	if profile.Email != "" && !emailRegex.MatchString(profile.Email) {
		return nil, ErrInvalidEmail
	}
	if profile.Tags == nil {
		profile.Tags = []string{}
	}

	now := time.Now().UTC()
	return &Store{
		userID:      userID,
		name:        name,
		profile:     profile,
		shopStatus:  ShopStatusPending,
		status:      StatusOffline,
		categoryIDs: ids,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(id, userID uint, name string, profile Profile, shopStatus ShopStatus, status Status,
	categories []CategoryRef, createdAt, updatedAt time.Time) *Store {
	ids := make([]uint, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}
	return &Store{
		id:          id,
		userID:      userID,
		name:        name,
		profile:     profile,
		shopStatus:  shopStatus,
		status:      status,
		categoryIDs: ids,
		categories:  categories,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Store) ID() uint {
	return s.id
}

func (s *Store) SetID(id uint) {
	s.id = id
}

func (s *Store) UserID() uint {
	return s.userID
}

func (s *Store) Name() string {
	return s.name
}

func (s *Store) Profile() Profile {
	return s.profile
}

func (s *Store) ShopStatus() ShopStatus {
	return s.shopStatus
}

func (s *Store) Status() Status {
	return s.status
}

func (s *Store) CategoryIDs() []uint {
	return s.categoryIDs
}

func (s *Store) Categories() []CategoryRef {
	return s.categories
}

func (s *Store) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Store) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Store) IsOwnedBy(userID uint) bool {
	return s.userID == userID
}

func (s *Store) Approve() {
	s.shopStatus = ShopStatusApproved
	s.updatedAt = time.Now().UTC()
}

// Reject also takes the store offline.
func (s *Store) Reject() {
	s.shopStatus = ShopStatusRejected
	s.status = StatusOffline
	s.updatedAt = time.Now().UTC()
}

// GoOnline requires ownership and an APPROVED shop status.
func (s *Store) GoOnline(userID uint) error {
	if !s.IsOwnedBy(userID) {
		return ErrNotOwner
	}
	if s.shopStatus != ShopStatusApproved {
		return ErrNotApproved
	}
	s.status = StatusOnline
	s.updatedAt = time.Now().UTC()
	return nil
}

func (s *Store) GoOffline(userID uint) error {
	if !s.IsOwnedBy(userID) {
		return ErrNotOwner
	}
	s.status = StatusOffline
	s.updatedAt = time.Now().UTC()
	return nil
}

// ReplaceCategories swaps the whole category set.
func (s *Store) ReplaceCategories(categoryIDs []uint) error {
	ids := uniqueIDs(categoryIDs)
	if len(ids) == 0 {
		return ErrCategoryRequired
	}
	s.categoryIDs = ids
	s.categories = nil
	s.updatedAt = time.Now().UTC()
	return nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
