package auth

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrFieldsRequired   = errors.New("all fields are required")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrEmailRequired    = errors.New("email is required")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Email{}, ErrFieldsRequired
	}
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Credentials struct {
	email    Email
	password string
}

func NewCredentials(emailStr, password string) (Credentials, error) {
	email, err := NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}
	if password == "" {
		return Credentials{}, ErrFieldsRequired
	}
	return Credentials{email: email, password: password}, nil
}

func (c Credentials) Email() Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}

// Registration is a validated sign-up form. Password strength is left to the gateway.
type Registration struct {
	name        string
	credentials Credentials
}

func NewRegistration(name, email, password, confirmPassword string) (Registration, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(email) == "" || password == "" || confirmPassword == "" {
		return Registration{}, ErrFieldsRequired
	}
	if password != confirmPassword {
		return Registration{}, ErrPasswordMismatch
	}
	creds, err := NewCredentials(email, password)
	if err != nil {
		return Registration{}, err
	}
	return Registration{name: name, credentials: creds}, nil
}

func (r Registration) Name() string {
	return r.name
}

func (r Registration) Credentials() Credentials {
	return r.credentials
}
