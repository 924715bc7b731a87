package transaction

import "errors"

var ErrInvalidStatus = errors.New("status must be accepted or rejected")

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// NewDecision parses an admin decision. Pending is never a valid write target.
func NewDecision(s string) (Status, error) {
	st := Status(s)
	if st != StatusAccepted && st != StatusRejected {
		return "", ErrInvalidStatus
	}
	return st, nil
}
