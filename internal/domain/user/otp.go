package user

import (
	"time"
)

// OTPRecord is a registration code mailed to an address that has no account yet.
type OTPRecord struct {
	id         uint
	email      string
	code       string
	expiresAt  time.Time
	isVerified bool
	createdAt  time.Time
}

func NewOTPRecord(email, code string, ttl time.Duration, now time.Time) *OTPRecord {
	now = now.UTC()
	return &OTPRecord{
		email:     NormalizeEmail(email),
		code:      code,
		expiresAt: now.Add(ttl),
		createdAt: now,
	}
}

func ReconstructOTPRecord(id uint, email, code string, expiresAt time.Time, isVerified bool, createdAt time.Time) *OTPRecord {
	return &OTPRecord{
		id:         id,
		email:      email,
		code:       code,
		expiresAt:  expiresAt,
		isVerified: isVerified,
		createdAt:  createdAt,
	}
}

func (o *OTPRecord) ID() uint {
	return o.id
}

func (o *OTPRecord) SetID(id uint) {
	o.id = id
}

func (o *OTPRecord) Email() string {
	return o.email
}

func (o *OTPRecord) Code() string {
	return o.code
}

func (o *OTPRecord) ExpiresAt() time.Time {
	return o.expiresAt
}

func (o *OTPRecord) IsVerified() bool {
	return o.isVerified
}

func (o *OTPRecord) CreatedAt() time.Time {
	return o.createdAt
}

func (o *OTPRecord) IsExpired(now time.Time) bool {
	return now.After(o.expiresAt)
}

// Check validates code against the record. Expiry is checked first so the
// caller can discard an expired record regardless of the submitted code.
func (o *OTPRecord) Check(code string, now time.Time) error {
	if o.IsExpired(now) {
		return ErrOTPExpired
	}
	if o.code != code {
		return ErrInvalidOTP
	}
	return nil
}

func (o *OTPRecord) MarkVerified() {
	o.isVerified = true
}
