package utils

import (
	"strings"
	"unicode/utf8"
)

// MaskEmail keeps the first character of the local part and the domain,
// e.g. "user@example.com" becomes "u***@example.com".
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return "***"
	}
	if local != "" {
		_, size := utf8.DecodeRuneInString(local)
		local = local[:size]
	}
	return local + "***@" + domain
}
