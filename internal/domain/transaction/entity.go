package transaction

import (
	"errors"
	"time"

	"gin-booking/internal/domain/identity"
	"gin-booking/internal/pkg/patch"
)

const (
	FallbackUserName  = "No name"
	FallbackUserEmail = "No email"
)

var (
	ErrCustomerRequired = errors.New("customer identity is required")
	ErrServiceRequired  = errors.New("service is required")
)

type Transaction struct {
	id          string
	userID      string
	userName    string
	userEmail   string
	serviceID   string
	serviceName string
	price       float64
	status      Status
	createdAt   *time.Time
}

// Order is the input of a new pending transaction.
type Order struct {
	Customer     *identity.Identity
	ProfileName  string
	ProfileEmail string
	ServiceID    string
	ServiceName  string
	Price        float64
}

// NewPending builds the transaction a customer creates. createdAt is assigned by the store.
func NewPending(o Order) (*Transaction, error) {
	if o.Customer.IsZero() {
		return nil, ErrCustomerRequired
	}
	if o.ServiceID == "" {
		return nil, ErrServiceRequired
	}

	name := patch.FirstNonBlank(o.ProfileName)
	if name == "" {
		name = FallbackUserName
	}
	email := patch.FirstNonBlank(o.ProfileEmail, o.Customer.Email)
	if email == "" {
		email = FallbackUserEmail
	}

	return &Transaction{
		userID:      o.Customer.UID,
		userName:    name,
		userEmail:   email,
		serviceID:   o.ServiceID,
		serviceName: o.ServiceName,
		price:       o.Price,
		status:      StatusPending,
	}, nil
}

func Reconstruct(id, userID, userName, userEmail, serviceID, serviceName string, price float64, status Status, createdAt *time.Time) *Transaction {
	return &Transaction{
		id:          id,
		userID:      userID,
		userName:    userName,
		userEmail:   userEmail,
		serviceID:   serviceID,
		serviceName: serviceName,
		price:       price,
		status:      status,
		createdAt:   createdAt,
	}
}

func (t *Transaction) ID() string            { return t.id }
func (t *Transaction) UserID() string        { return t.userID }
func (t *Transaction) UserName() string      { return t.userName }
func (t *Transaction) UserEmail() string     { return t.userEmail }
func (t *Transaction) ServiceID() string     { return t.serviceID }
func (t *Transaction) ServiceName() string   { return t.serviceName }
func (t *Transaction) Price() float64        { return t.price }
func (t *Transaction) Status() Status        { return t.status }
func (t *Transaction) CreatedAt() *time.Time { return t.createdAt }
