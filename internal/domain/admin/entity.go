package admin

import (
	"errors"
	"strings"
)

var ErrDisplayNameRequired = errors.New("display name cannot be empty")

// Profile is the admins/{uid} record. Its existence alone grants the admin role.
type Profile struct {
	uid         string
	displayName string
}

func NewDisplayName(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", ErrDisplayNameRequired
	}
	return t, nil
}

func Reconstruct(uid, displayName string) *Profile {
	return &Profile{uid: uid, displayName: displayName}
}

func (p *Profile) UID() string         { return p.uid }
func (p *Profile) DisplayName() string { return p.displayName }
