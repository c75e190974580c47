// Package contact holds messages submitted through the public contact form.
package contact

import (
	"errors"
	"strings"
)

var ErrFieldsRequired = errors.New("fullName, email, subject and description are required")

// Message is a contact form entry. Fields are plain text.
type Message struct {
	FullName    string
	Email       string
	Subject     string
	Description string
}

// Validate trims every field and requires all of them.
func (m *Message) Validate() error {
	m.FullName = strings.TrimSpace(m.FullName)
	m.Email = strings.TrimSpace(m.Email)
	m.Subject = strings.TrimSpace(m.Subject)
	m.Description = strings.TrimSpace(m.Description)
	if m.FullName == "" || m.Email == "" || m.Subject == "" || m.Description == "" {
		return ErrFieldsRequired
	}
	return nil
}
