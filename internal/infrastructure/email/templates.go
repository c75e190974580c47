package email

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

type template struct {
	subject string
	html    *htmltemplate.Template
	text    *texttemplate.Template
}

func newTemplate(name, subject, html, text string) *template {
	return &template{
		subject: subject,
		html:    htmltemplate.Must(htmltemplate.New(name).Parse(html)),
		text:    texttemplate.Must(texttemplate.New(name).Parse(text)),
	}
}

func (t *template) render(to string, data any) (*Message, error) {
	var htmlBuf, textBuf bytes.Buffer
	if err := t.html.Execute(&htmlBuf, data); err != nil {
		return nil, fmt.Errorf("failed to render %s html: %w", t.html.Name(), err)
	}
	if err := t.text.Execute(&textBuf, data); err != nil {
		return nil, fmt.Errorf("failed to render %s text: %w", t.text.Name(), err)
	}
	return &Message{
		To:      to,
		Subject: t.subject,
		HTML:    htmlBuf.String(),
		Text:    textBuf.String(),
	}, nil
}

var (
	registrationOTPTemplate = newTemplate("registration_otp", "Your verification code",
		`<html><body>
<h2>Welcome!</h2>
<p>Use the code below to finish creating your account:</p>
<h1 style="letter-spacing:4px">{{.OTP}}</h1>
<p>The code expires in {{.Minutes}} minutes.</p>
<p>If you didn't request this, please ignore this email.</p>
</body></html>`,
		`Welcome!

Use this code to finish creating your account: {{.OTP}}

The code expires in {{.Minutes}} minutes.
If you didn't request this, please ignore this email.
`)

	verificationLinkTemplate = newTemplate("verification_link", "Verify Your Email Address",
		`<html><body>
<h2>Hello {{.Name}},</h2>
<p>Please verify your email address by clicking the link below:</p>
<p><a href="{{.Link}}">Verify Email Address</a></p>
<p>Or copy and paste this URL into your browser:</p>
<p>{{.Link}}</p>
<p>If you didn't create an account, please ignore this email.</p>
</body></html>`,
		`Hello {{.Name}},

Please verify your email address by visiting:
{{.Link}}

If you didn't create an account, please ignore this email.
`)

	resetOTPTemplate = newTemplate("reset_otp", "Reset Your Password",
		`<html><body>
<h2>Hello {{.Name}},</h2>
<p>We received a request to reset your password. Your code is:</p>
<h1 style="letter-spacing:4px">{{.OTP}}</h1>
<p>The code expires in {{.Minutes}} minutes.</p>
<p>If you didn't request a password reset, your password will remain unchanged.</p>
</body></html>`,
		`Hello {{.Name}},

We received a request to reset your password. Your code is: {{.OTP}}

The code expires in {{.Minutes}} minutes.
If you didn't request a password reset, your password will remain unchanged.
`)

	passwordChangedTemplate = newTemplate("password_changed", "Password Changed Successfully",
		`<html><body>
<h2>Hello {{.Name}},</h2>
<p>Your password has been successfully changed.</p>
<p>If you didn't make this change, please contact support immediately.</p>
</body></html>`,
		`Hello {{.Name}},

Your password has been successfully changed.

If you didn't make this change, please contact support immediately.
`)

	contactTemplate = newTemplate("contact", "",
		`<html><body>
<h2>New contact message</h2>
<p><strong>Name:</strong> {{.FullName}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p style="white-space:pre-wrap">{{.Description}}</p>
</body></html>`,
		`New contact message

Name: {{.FullName}}
Email: {{.Email}}
Subject: {{.Subject}}

{{.Description}}
`)
)
