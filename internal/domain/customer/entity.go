package customer

import (
	"errors"
	"strings"
	"time"
)

var ErrNameRequired = errors.New("name cannot be empty")

type Profile struct {
	uid       string
	name      string
	email     string
	createdAt *time.Time
}

func NewName(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", ErrNameRequired
	}
	return t, nil
}

func Reconstruct(uid, name, email string, createdAt *time.Time) *Profile {
	return &Profile{uid: uid, name: name, email: email, createdAt: createdAt}
}

func (p *Profile) UID() string           { return p.uid }
func (p *Profile) Name() string          { return p.name }
func (p *Profile) Email() string         { return p.email }
func (p *Profile) CreatedAt() *time.Time { return p.createdAt }
