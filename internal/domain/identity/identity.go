package identity

// Identity is the signed-in principal issued by the credential gateway.
// It is passed explicitly; nothing holds a process-wide current user.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
}

func (i *Identity) IsZero() bool {
	return i == nil || i.UID == ""
}
