package usecases

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"marketplace/internal/domain/subscription"
	"marketplace/internal/domain/user"
	"marketplace/internal/shared/authorization"
	appErrors "marketplace/internal/shared/errors"
)

func ptr[T any](v T) *T {
	return &v
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	users  map[uint]*user.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*user.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.users {
		if existing.Email() == u.Email() {
			return user.ErrEmailExists
		}
	}
	r.nextID++
	u.SetID(r.nextID)
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*user.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.users[id]; !ok {
		return appErrors.NewNotFoundError("user not found")
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, _ user.ListFilter) ([]*user.User, int64, error) {
	out := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) add(email string, verified bool, passwordHash string) *user.User {
	u, err := user.NewUser(user.NewUserParams{
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    "jane",
		LastName:     "doe",
		Role:         authorization.RoleUser,
		Verified:     verified,
	})
	if err != nil {
		panic(err)
	}
	if err := r.Create(context.Background(), u); err != nil {
		panic(err)
	}
	return u
}

type fakeOTPRepo struct {
	records  map[uint]*user.OTPRecord
	nextID   uint
	deleted  []uint
	verified []uint
}

func newFakeOTPRepo() *fakeOTPRepo {
	return &fakeOTPRepo{records: map[uint]*user.OTPRecord{}}
}

func (r *fakeOTPRepo) Create(_ context.Context, otp *user.OTPRecord) error {
	r.nextID++
	otp.SetID(r.nextID)
	r.records[otp.ID()] = otp
	return nil
}

func (r *fakeOTPRepo) FindLatestUnverified(_ context.Context, email string) (*user.OTPRecord, error) {
	var latest *user.OTPRecord
	for _, rec := range r.records {
		if rec.Email() != email || rec.IsVerified() {
			continue
		}
		if latest == nil || rec.ID() > latest.ID() {
			latest = rec
		}
	}
	return latest, nil
}

func (r *fakeOTPRepo) MarkVerified(_ context.Context, id uint) error {
	if rec, ok := r.records[id]; ok {
		rec.MarkVerified()
	}
	r.verified = append(r.verified, id)
	return nil
}

func (r *fakeOTPRepo) Delete(_ context.Context, id uint) error {
	delete(r.records, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeOTPRepo) DeleteUnverifiedByEmail(_ context.Context, email string) error {
	for id, rec := range r.records {
		if rec.Email() == email && !rec.IsVerified() {
			delete(r.records, id)
		}
	}
	return nil
}

// fakeHasher stores "hashed:<password>".
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (fakeHasher) HashRandom() (string, error) {
	return "hashed:random", nil
}

type refreshClaims struct {
	userID   uint
	issuedAt time.Time
}

type fakeTokens struct {
	links   map[string]uint
	refresh map[string]refreshClaims
}

func newFakeTokens() *fakeTokens {
	return &fakeTokens{links: map[string]uint{}, refresh: map[string]refreshClaims{}}
}

func (f *fakeTokens) Generate(userID uint, _ string, role authorization.UserRole, _ bool) (string, string, error) {
	return fmt.Sprintf("access-%d-%s", userID, role), fmt.Sprintf("refresh-%d", userID), nil
}

func (f *fakeTokens) GenerateAccess(userID uint, _ string, role authorization.UserRole, _ bool) (string, error) {
	return fmt.Sprintf("access-%d-%s", userID, role), nil
}

func (f *fakeTokens) GenerateLinkToken(userID uint, _ string, purpose string) (string, error) {
	tok := fmt.Sprintf("%s-%d", purpose, userID)
	f.links[tok] = userID
	return tok, nil
}

func (f *fakeTokens) VerifyRefresh(token string) (uint, time.Time, error) {
	c, ok := f.refresh[token]
	if !ok {
		return 0, time.Time{}, errors.New("invalid refresh token")
	}
	return c.userID, c.issuedAt, nil
}

func (f *fakeTokens) VerifyLinkToken(token, purpose string) (uint, error) {
	id, ok := f.links[token]
	if !ok || token != fmt.Sprintf("%s-%d", purpose, id) {
		return 0, errors.New("invalid link token")
	}
	return id, nil
}

type sentEmail struct {
	kind string
	to   string
	body string
}

type fakeEmail struct {
	mu   sync.Mutex
	sent []sentEmail
	done chan struct{}
}

func newFakeEmail() *fakeEmail {
	return &fakeEmail{done: make(chan struct{}, 8)}
}

func (f *fakeEmail) record(kind, to, body string) error {
	f.mu.Lock()
	f.sent = append(f.sent, sentEmail{kind: kind, to: to, body: body})
	f.mu.Unlock()
	select {
	case f.done <- struct{}{}:
	default:
	}
	return nil
}

func (f *fakeEmail) SendRegistrationOTP(_ context.Context, to, otp string) error {
	return f.record("registration-otp", to, otp)
}

func (f *fakeEmail) SendVerificationLink(_ context.Context, to, _ string, link string) error {
	return f.record("verification-link", to, link)
}

func (f *fakeEmail) SendResetOTP(_ context.Context, to, _ string, otp string) error {
	return f.record("reset-otp", to, otp)
}

func (f *fakeEmail) SendPasswordChanged(_ context.Context, to, _ string) error {
	return f.record("password-changed", to, "")
}

func (f *fakeEmail) last() sentEmail {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent[len(f.sent)-1]
}

type fixedOTP string

func (o fixedOTP) Generate() (string, error) {
	return string(o), nil
}

type fakeVerifier struct {
	identities map[string]*user.ExternalIdentity
}

func (v fakeVerifier) Verify(_ context.Context, raw string) (*user.ExternalIdentity, error) {
	id, ok := v.identities[raw]
	if !ok {
		return nil, errors.New("signature invalid")
	}
	return id, nil
}

type fakeExchanger map[string]string

func (e fakeExchanger) ExchangeForIDToken(_ context.Context, code string) (string, error) {
	tok, ok := e[code]
	if !ok {
		return "", errors.New("bad code")
	}
	return tok, nil
}

type fakeSubscriptionReader map[uint]*subscription.Subscription

func (r fakeSubscriptionReader) GetByUserID(_ context.Context, userID uint) (*subscription.Subscription, error) {
	return r[userID], nil
}

type fakePlanReader map[uint]*subscription.Plan

func (r fakePlanReader) GetByID(_ context.Context, id uint) (*subscription.Plan, error) {
	return r[id], nil
}
