package response

import (
	"gin-booking/internal/domain/identity"
	"gin-booking/internal/usecase/access"
	"gin-booking/internal/usecase/shared"
)

type SessionResponse struct {
	State   string   `json:"state"`
	Role    string   `json:"role,omitempty"`
	Screens []string `json:"screens"`
	Stack   []string `json:"stack"`
}

func FromSnapshot(s access.Snapshot) *SessionResponse {
	return &SessionResponse{
		State:   string(s.State),
		Role:    s.Role.String(),
		Screens: screenNames(s.Screens),
		Stack:   screenNames(s.Stack),
	}
}

func screenNames(screens []access.Screen) []string {
	out := make([]string, len(screens))
	for i, s := range screens {
		out[i] = string(s)
	}
	return out
}

type UserResponse struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
}

func FromIdentity(id identity.Identity) UserResponse {
	return UserResponse{UID: id.UID, Email: id.Email, DisplayName: id.DisplayName}
}

type LoginResponse struct {
	IDToken   string           `json:"id_token"`
	ExpiresIn int64            `json:"expires_in"`
	User      UserResponse     `json:"user"`
	Session   *SessionResponse `json:"session"`
}

func FromSignIn(session *shared.AuthSession, gate access.Snapshot) *LoginResponse {
	return &LoginResponse{
		IDToken:   session.IDToken,
		ExpiresIn: int64(session.ExpiresIn.Seconds()),
		User:      FromIdentity(session.Identity),
		Session:   FromSnapshot(gate),
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
