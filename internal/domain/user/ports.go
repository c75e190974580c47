package user

// Purposes carried by emailed link tokens.
const (
	LinkPurposeVerifyEmail   = "verify-email"
	LinkPurposeResetPassword = "reset-password"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify returns an error when password does not match hash.
	Verify(password, hash string) error
	// HashRandom hashes a secret nobody knows, for accounts created by social login.
	HashRandom() (string, error)
}
